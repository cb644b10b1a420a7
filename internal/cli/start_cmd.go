package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/tasktimer/internal/cli/formatter"
	"github.com/alexanderramin/tasktimer/internal/domain"
	"github.com/alexanderramin/tasktimer/internal/storage"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var task, category string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start timing a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.State.Load(); err == nil {
				return errors.New("a timer is already running; stop it before starting a new one")
			} else if !errors.Is(err, storage.ErrNoActiveTimer) {
				return err
			}

			if category == "" && app.interactive() {
				if err := categoryForm(app.Categories.All(), &category).Run(); err != nil {
					return err
				}
			}

			timer := &domain.Timer{}
			if err := timer.Start(task, category, app.Categories); err != nil {
				return err
			}

			if err := app.State.Save(timer); err != nil {
				return err
			}

			fmt.Printf("%s for task: %s\n", formatter.Success("Started timer"), formatter.Bold(timer.Task))
			fmt.Printf("Category: %s\n", formatter.CategoryBadge(timer.Category))
			fmt.Printf("Started at: %s\n", timer.StartTime.Format("15:04:05"))
			return nil
		},
	}

	cmd.Flags().StringVar(&task, "task", "", "Description of the task")
	cmd.Flags().StringVar(&category, "category", "", "Task category")
	_ = cmd.MarkFlagRequired("task")

	return cmd
}

// categoryForm is a single-select form for choosing a category when the
// flag is omitted on an interactive terminal.
func categoryForm(categories []string, value *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(categories))
	for _, c := range categories {
		options = append(options, huh.NewOption(c, c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(value),
		),
	).WithShowHelp(false)
}
