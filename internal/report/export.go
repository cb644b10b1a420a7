package report

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/tasktimer/internal/domain"
)

// barWidth is the length of the longest category bar in Markdown output.
const barWidth = 30

// Exporter serializes one report to the supported output formats.
type Exporter struct {
	report Report
}

// NewExporter wraps a report for export.
func NewExporter(r Report) *Exporter {
	return &Exporter{report: r}
}

// exportSession is the serialized session shape shared by JSON exports,
// identical to the on-disk record.
type exportSession struct {
	ID              string `json:"id"`
	Task            string `json:"task"`
	Category        string `json:"category"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationSeconds int    `json:"duration_seconds"`
}

type dailyExport struct {
	Date          string          `json:"date"`
	TotalDuration int             `json:"total_duration"`
	Sessions      []exportSession `json:"sessions"`
}

type weeklyExport struct {
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	TotalDuration int             `json:"total_duration"`
	Sessions      []exportSession `json:"sessions"`
}

// ToJSON renders the report as indented JSON. Daily reports carry a "date"
// key, weekly reports "start_date"/"end_date"; the other variant's keys are
// absent entirely.
func (e *Exporter) ToJSON() (string, error) {
	sessions := make([]exportSession, 0, len(e.report.Sessions()))
	for _, s := range e.report.Sessions() {
		sessions = append(sessions, exportSession{
			ID:              s.ID,
			Task:            s.Task,
			Category:        s.Category,
			StartTime:       domain.FormatTime(s.StartTime),
			EndTime:         domain.FormatTime(s.EndTime),
			DurationSeconds: int(s.Duration().Seconds()),
		})
	}

	var payload any
	switch r := e.report.(type) {
	case *DailyReport:
		payload = dailyExport{
			Date:          r.Date,
			TotalDuration: int(r.TotalDuration().Seconds()),
			Sessions:      sessions,
		}
	case *WeeklyReport:
		payload = weeklyExport{
			StartDate:     r.StartDate,
			EndDate:       r.EndDate,
			TotalDuration: int(r.TotalDuration().Seconds()),
			Sessions:      sessions,
		}
	default:
		return "", fmt.Errorf("unknown report type %T", e.report)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	return string(data), nil
}

// ToMarkdown renders the report with a category bar chart and the flat
// session list.
func (e *Exporter) ToMarkdown() string {
	var lines []string

	switch r := e.report.(type) {
	case *DailyReport:
		lines = append(lines, fmt.Sprintf("# Daily Report - %s", r.Date))
	case *WeeklyReport:
		lines = append(lines, fmt.Sprintf("# Weekly Report - %s to %s", r.StartDate, r.EndDate))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("**Total Duration:** %s", formatDuration(e.report.TotalDuration())),
		fmt.Sprintf("**Sessions:** %d", len(e.report.Sessions())),
		"",
	)

	breakdown := e.report.CategoryBreakdown()
	if len(breakdown) > 0 {
		lines = append(lines, "## Category Breakdown", "")

		categories := make([]string, 0, len(breakdown))
		var maxDuration float64
		for cat, b := range breakdown {
			categories = append(categories, cat)
			if d := b.Duration.Seconds(); d > maxDuration {
				maxDuration = d
			}
		}
		sort.Strings(categories)
		if maxDuration == 0 {
			maxDuration = 1
		}

		for _, cat := range categories {
			b := breakdown[cat]
			barLen := int(math.Round(barWidth * b.Duration.Seconds() / maxDuration))
			bar := strings.Repeat("█", barLen)

			lines = append(lines,
				fmt.Sprintf("**%s** (%d sessions)", cat, b.Count),
				fmt.Sprintf("%s %s", bar, formatDuration(b.Duration)),
				"",
			)
		}
	}

	lines = append(lines, "## Sessions", "")
	for _, s := range e.report.Sessions() {
		lines = append(lines, fmt.Sprintf("- **%s** (%s) - %s", s.Task, s.Category, formatDuration(s.Duration())))
	}

	return strings.Join(lines, "\n")
}

// ToCSV renders one row per session under a fixed header. Commas inside the
// task text become semicolons; there is no quoting scheme beyond that.
func (e *Exporter) ToCSV() string {
	lines := []string{"task,category,start_time,end_time,duration"}

	for _, s := range e.report.Sessions() {
		task := strings.ReplaceAll(s.Task, ",", ";")
		lines = append(lines, fmt.Sprintf("%s,%s,%s,%s,%d",
			task,
			s.Category,
			domain.FormatTime(s.StartTime),
			domain.FormatTime(s.EndTime),
			int(s.Duration().Seconds()),
		))
	}

	return strings.Join(lines, "\n")
}

// formatDuration renders a duration as "{h}h {m}m", dropping the minutes
// clause when zero, or "{m}m" under an hour.
func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60

	if hours > 0 {
		if minutes > 0 {
			return fmt.Sprintf("%dh %dm", hours, minutes)
		}
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", minutes)
}
