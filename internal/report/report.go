// Package report builds daily and weekly report views over the session
// store and exports them as JSON, Markdown, or CSV. Reports are derived
// fresh on every request and never persisted.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tasktimer/internal/domain"
)

// DateLayout is the calendar-day format used for report labels and flags.
const DateLayout = "2006-01-02"

// SessionLoader is the slice of the session store the builders need.
type SessionLoader interface {
	Load(ctx context.Context, start, end *time.Time) ([]*domain.Session, error)
}

// Report is the common surface of the two report variants. The exporter
// switches on the concrete type rather than probing fields.
type Report interface {
	Sessions() []*domain.Session
	TotalDuration() time.Duration
	CategoryBreakdown() map[string]domain.Bucket
}

// DailyReport summarizes the sessions of one calendar day.
type DailyReport struct {
	Date string

	sessions []*domain.Session
	total    time.Duration
}

// WeeklyReport summarizes the sessions of an inclusive day range. The range
// is caller-supplied; nothing requires it to be seven days or Monday-aligned.
type WeeklyReport struct {
	StartDate string
	EndDate   string

	sessions []*domain.Session
	total    time.Duration
}

// BuildDaily loads the sessions whose start time falls on the given day
// (00:00:00 through 23:59:59 inclusive) and wraps them in a DailyReport.
func BuildDaily(ctx context.Context, loader SessionLoader, date string) (*DailyReport, error) {
	day, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	sessions, err := loadDayRange(ctx, loader, day, day)
	if err != nil {
		return nil, err
	}

	return &DailyReport{
		Date:     date,
		sessions: sessions,
		total:    sumDurations(sessions),
	}, nil
}

// BuildWeekly loads the sessions of an inclusive day range and wraps them
// in a WeeklyReport.
func BuildWeekly(ctx context.Context, loader SessionLoader, startDate, endDate string) (*WeeklyReport, error) {
	first, err := time.ParseInLocation(DateLayout, startDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	last, err := time.ParseInLocation(DateLayout, endDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	sessions, err := loadDayRange(ctx, loader, first, last)
	if err != nil {
		return nil, err
	}

	return &WeeklyReport{
		StartDate: startDate,
		EndDate:   endDate,
		sessions:  sessions,
		total:     sumDurations(sessions),
	}, nil
}

// loadDayRange filters on session start time from 00:00:00 of the first day
// through 23:59:59 of the last, inclusive on both ends.
func loadDayRange(ctx context.Context, loader SessionLoader, first, last time.Time) ([]*domain.Session, error) {
	start := first
	// Load's upper bound is exclusive; 23:59:59 must still match.
	end := last.Add(23*time.Hour + 59*time.Minute + 59*time.Second + time.Second)
	return loader.Load(ctx, &start, &end)
}

func sumDurations(sessions []*domain.Session) time.Duration {
	var total time.Duration
	for _, s := range sessions {
		total += s.Duration()
	}
	return total
}

func (r *DailyReport) Sessions() []*domain.Session   { return r.sessions }
func (r *DailyReport) TotalDuration() time.Duration  { return r.total }
func (r *WeeklyReport) Sessions() []*domain.Session  { return r.sessions }
func (r *WeeklyReport) TotalDuration() time.Duration { return r.total }

// CategoryBreakdown groups the day's sessions by category.
func (r *DailyReport) CategoryBreakdown() map[string]domain.Bucket {
	return categoryBreakdown(r.sessions)
}

// CategoryBreakdown groups the range's sessions by category.
func (r *WeeklyReport) CategoryBreakdown() map[string]domain.Bucket {
	return categoryBreakdown(r.sessions)
}

// DailyBreakdown groups the range's sessions by the calendar date of their
// start time.
func (r *WeeklyReport) DailyBreakdown() map[string]domain.Bucket {
	breakdown := make(map[string]domain.Bucket)
	for _, s := range r.sessions {
		date := s.StartTime.Format(DateLayout)
		b := breakdown[date]
		b.Count++
		b.Duration += s.Duration()
		breakdown[date] = b
	}
	return breakdown
}

// Summary returns a one-line digest: date, session count, total duration.
func (r *DailyReport) Summary() string {
	word := "sessions"
	if len(r.sessions) == 1 {
		word = "session"
	}
	return fmt.Sprintf("Date: %s | %d %s | Total: %s", r.Date, len(r.sessions), word, formatDuration(r.total))
}
