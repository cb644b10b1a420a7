// Package cli wires the cobra command tree over the storage, report, and
// analyze layers.
package cli

import (
	"github.com/alexanderramin/tasktimer/internal/config"
	"github.com/alexanderramin/tasktimer/internal/storage"
	"github.com/spf13/cobra"
)

// App holds the stores and configuration shared by all commands.
type App struct {
	Store      *storage.SessionStore
	State      *storage.StateStore
	Categories *config.Categories
	Config     *config.Config

	// IsInteractive reports whether stdin is attached to a terminal;
	// interactive prompts are skipped when it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "tasktimer" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tasktimer",
		Short:         "Track your coding time with ease",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
		newListCmd(app),
		newReportCmd(app),
		newInsightsCmd(app),
		newCategoryCmd(app),
	)

	return root
}
