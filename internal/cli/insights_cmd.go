package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/tasktimer/internal/analyze"
	"github.com/alexanderramin/tasktimer/internal/cli/formatter"
	"github.com/alexanderramin/tasktimer/internal/domain"
	"github.com/spf13/cobra"
)

func newInsightsCmd(app *App) *cobra.Command {
	var days int
	var all bool

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Analyze work patterns and suggest improvements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var start *time.Time
			if !all {
				s := time.Now().AddDate(0, 0, -days)
				start = &s
			}

			sessions, err := app.Store.Load(ctx, start, nil)
			if err != nil {
				return err
			}

			summary := analyze.Patterns(sessions)
			score := analyze.Score(sessions)

			fmt.Println(formatter.Header("Patterns"))
			fmt.Printf("Sessions: %d\n", summary.TotalSessions)
			fmt.Printf("Total time: %s\n", formatter.HoursMinutes(summary.TotalDuration))
			if summary.MostCommonCategory != "" {
				fmt.Printf("Most common category: %s\n", formatter.CategoryBadge(summary.MostCommonCategory))
			}
			fmt.Println()

			fmt.Println(formatter.Header("Productivity"))
			fmt.Printf("Score: %s %s\n", formatter.Bold(fmt.Sprintf("%d/100", score.Score)), formatter.RatingPill(score.Rating))
			fmt.Println(formatter.Dim(score.Explanation))
			fmt.Println()

			fmt.Println(formatter.Header("Suggestions"))
			for _, s := range analyze.Suggest(sessions) {
				fmt.Printf("• %s\n", s)
			}
			fmt.Println()

			blocks := analyze.WorkBlocks(sessions)
			if len(blocks) > 0 {
				fmt.Println(formatter.Header("Work Blocks"))
				headers := []string{"START", "END", "SESSIONS", "FOCUSED TIME"}
				rows := make([][]string, 0, len(blocks))
				for _, b := range blocks {
					rows = append(rows, []string{
						b.StartTime.Format("2006-01-02 15:04"),
						b.EndTime.Format("15:04"),
						fmt.Sprintf("%d", b.SessionCount),
						formatter.StyleGreen.Render(formatter.HoursMinutes(b.TotalDuration)),
					})
				}
				fmt.Print(formatter.RenderTable(headers, rows))
				fmt.Println()
			}

			peaks := analyze.PeakHours(sessions)
			if peaks.PeakHour != nil {
				fmt.Println(formatter.Header("Peak Hours"))
				printHourDistribution(peaks.HourDistribution)
				fmt.Printf("\nPeak hour: %s\n", formatter.Bold(fmt.Sprintf("%02d:00", *peaks.PeakHour)))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of recent days to analyze")
	cmd.Flags().BoolVar(&all, "all", false, "Analyze the full session history")

	return cmd
}

// printHourDistribution renders one bar per active hour, scaled to the
// busiest hour's session count.
func printHourDistribution(dist map[int]domain.Bucket) {
	hours := make([]int, 0, len(dist))
	maxCount := 0
	for h, b := range dist {
		hours = append(hours, h)
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	sort.Ints(hours)

	for _, h := range hours {
		b := dist[h]
		bar := formatter.RenderBar(float64(b.Count), float64(maxCount), 20)
		fmt.Printf("%02d:00  %s  %d sessions, %s\n", h, bar, b.Count, formatter.HoursMinutes(b.Duration))
	}
}
