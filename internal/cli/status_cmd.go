package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/tasktimer/internal/cli/formatter"
	"github.com/alexanderramin/tasktimer/internal/storage"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the status of the current timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			timer, err := app.State.Load()
			if errors.Is(err, storage.ErrNoActiveTimer) {
				fmt.Println(formatter.StyleYellow.Render("No timer is currently running"))
				fmt.Println()
				fmt.Println("Start a new timer with:")
				fmt.Println(`  tasktimer start --task "Your task" --category <category>`)
				return nil
			}
			if err != nil {
				return err
			}

			if watch && app.interactive() {
				return runWatch(timer)
			}

			fmt.Println(formatter.StyleGreen.Bold(true).Render("Timer is running"))
			fmt.Println()
			fmt.Printf("Task: %s\n", formatter.Bold(timer.Task))
			fmt.Printf("Category: %s\n", formatter.CategoryBadge(timer.Category))
			fmt.Printf("Started at: %s\n", timer.StartTime.Format("2006-01-02 15:04:05"))
			fmt.Printf("Elapsed time: %s\n", formatter.StyleGreen.Render(formatter.Elapsed(timer.Elapsed())))
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Keep the status on screen with a live-updating clock")

	return cmd
}
