package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/tasktimer/internal/cli/formatter"
	"github.com/alexanderramin/tasktimer/internal/storage"
	"github.com/spf13/cobra"
)

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running timer and save the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			timer, err := app.State.Load()
			if errors.Is(err, storage.ErrNoActiveTimer) {
				return errors.New("no timer is currently running")
			}
			if err != nil {
				return err
			}

			session, err := timer.Stop()
			if err != nil {
				return err
			}

			if err := app.Store.Append(context.Background(), session); err != nil {
				return err
			}
			if err := app.State.Clear(); err != nil {
				return err
			}

			fmt.Printf("%s for task: %s\n", formatter.Success("Stopped timer"), formatter.Bold(session.Task))
			fmt.Printf("Category: %s\n", formatter.CategoryBadge(session.Category))
			fmt.Printf("Duration: %s\n", formatter.StyleGreen.Render(formatter.Elapsed(session.Duration())))
			return nil
		},
	}
}
