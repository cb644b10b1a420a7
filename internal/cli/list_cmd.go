package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tasktimer/internal/cli/formatter"
	"github.com/alexanderramin/tasktimer/internal/storage"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var categories []string
	var today, week bool
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions with optional filtering",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			start, end := rangeForFlags(today, week, time.Now())

			var err error
			sessions, err := app.Store.Load(ctx, start, end)
			if err != nil {
				return err
			}
			if len(categories) > 0 {
				sessions = storage.ByCategory(sessions, categories...)
			}

			if len(sessions) == 0 {
				fmt.Println(formatter.StyleYellow.Render("No sessions found"))
				return nil
			}

			total := storage.Count(sessions)
			if limit > 0 && limit < len(sessions) {
				// Most recent sessions are at the end of the append-ordered list.
				sessions = sessions[len(sessions)-limit:]
			}

			headers := []string{"TASK", "CATEGORY", "STARTED", "DURATION"}
			rows := make([][]string, 0, len(sessions))
			var totalDuration time.Duration
			for _, s := range sessions {
				totalDuration += s.Duration()
				rows = append(rows, []string{
					formatter.Bold(s.Task),
					formatter.CategoryBadge(s.Category),
					s.StartTime.Format("2006-01-02 15:04"),
					formatter.StyleGreen.Render(formatter.Elapsed(s.Duration())),
				})
			}

			fmt.Print(formatter.RenderTable(headers, rows))
			fmt.Println()
			if limit > 0 && limit < total {
				fmt.Printf("Showing %d of %d sessions (most recent)\n", len(sessions), total)
			} else {
				fmt.Printf("Total sessions: %d\n", len(sessions))
			}
			fmt.Printf("Total time: %s\n", formatter.StyleGreen.Render(formatter.Elapsed(totalDuration)))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&categories, "category", nil, "Filter by category (repeatable)")
	cmd.Flags().BoolVar(&today, "today", false, "Show only today's sessions")
	cmd.Flags().BoolVar(&week, "week", false, "Show only this week's sessions")
	cmd.Flags().IntVar(&limit, "limit", 0, "Limit number of sessions displayed")

	return cmd
}

// rangeForFlags resolves --today/--week into start-time bounds. The week
// starts on Monday.
func rangeForFlags(today, week bool, now time.Time) (*time.Time, *time.Time) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case today:
		end := midnight.AddDate(0, 0, 1)
		return &midnight, &end
	case week:
		daysSinceMonday := (int(now.Weekday()) + 6) % 7
		start := midnight.AddDate(0, 0, -daysSinceMonday)
		end := start.AddDate(0, 0, 7)
		return &start, &end
	default:
		return nil, nil
	}
}
