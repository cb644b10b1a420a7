package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/tasktimer/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate daily and weekly reports",
	}

	cmd.AddCommand(
		newReportDailyCmd(app),
		newReportWeeklyCmd(app),
	)

	return cmd
}

func newReportDailyCmd(app *App) *cobra.Command {
	var date, format, output string

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Generate a report for one day",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format(report.DateLayout)
			}

			r, err := report.BuildDaily(context.Background(), app.Store, date)
			if err != nil {
				return err
			}
			return writeReport(app, r, format, output)
		},
	}

	cmd.Flags().Var(newDateValue(&date), "date", "Report date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&format, "format", "", "Output format: text, json, markdown, csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Save report to file instead of stdout")

	return cmd
}

func newReportWeeklyCmd(app *App) *cobra.Command {
	var start, end, format, output string

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Generate a report for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if start == "" || end == "" {
				daysSinceMonday := (int(now.Weekday()) + 6) % 7
				weekStart := now.AddDate(0, 0, -daysSinceMonday)
				if start == "" {
					start = weekStart.Format(report.DateLayout)
				}
				if end == "" {
					end = weekStart.AddDate(0, 0, 6).Format(report.DateLayout)
				}
			}

			r, err := report.BuildWeekly(context.Background(), app.Store, start, end)
			if err != nil {
				return err
			}
			return writeReport(app, r, format, output)
		},
	}

	cmd.Flags().Var(newDateValue(&start), "start", "Start date (YYYY-MM-DD), defaults to week start")
	cmd.Flags().Var(newDateValue(&end), "end", "End date (YYYY-MM-DD), defaults to week end")
	cmd.Flags().StringVar(&format, "format", "", "Output format: text, json, markdown, csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Save report to file instead of stdout")

	return cmd
}

// writeReport renders the report in the chosen format and writes it to the
// output file or stdout. Text display falls back to Markdown.
func writeReport(app *App, r report.Report, format, output string) error {
	if format == "" {
		format = app.Config.DefaultFormat
	}

	exporter := report.NewExporter(r)

	var content string
	var err error
	switch format {
	case "json":
		content, err = exporter.ToJSON()
		if err != nil {
			return err
		}
	case "markdown", "text", "":
		content = exporter.ToMarkdown()
	case "csv":
		content = exporter.ToCSV()
	default:
		return fmt.Errorf("unknown format %q: use text, json, markdown, or csv", format)
	}

	if output != "" {
		if err := os.WriteFile(output, []byte(content+"\n"), 0o644); err != nil {
			return fmt.Errorf("saving report: %w", err)
		}
		fmt.Printf("Report saved to %s\n", output)
		return nil
	}

	fmt.Println(content)
	return nil
}
