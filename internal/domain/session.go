package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimeLayout is the on-disk timestamp format. Timestamps are timezone-naive
// local times, matching the sessions file consumed by earlier versions.
const TimeLayout = "2006-01-02T15:04:05"

// naiveLayouts are zone-less layouts, interpreted in local time.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	TimeLayout,
}

var (
	ErrEmptyTask      = errors.New("task name cannot be empty")
	ErrEndBeforeStart = errors.New("end time precedes start time")
)

// Session is an immutable record of one completed unit of timed work.
// Duration is derived from the two timestamps and never stored separately
// in memory.
type Session struct {
	ID        string
	Task      string
	Category  string
	StartTime time.Time
	EndTime   time.Time
}

// NewSession creates a session with a fresh ID. The end time must not
// precede the start time; task must be non-empty.
func NewSession(task, category string, start, end time.Time) (*Session, error) {
	if strings.TrimSpace(task) == "" {
		return nil, ErrEmptyTask
	}
	if end.Before(start) {
		return nil, ErrEndBeforeStart
	}
	return &Session{
		ID:        uuid.New().String(),
		Task:      task,
		Category:  category,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// Duration returns the elapsed time between start and end.
func (s *Session) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// FormatTime renders a timestamp in the on-disk layout.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime parses a stored timestamp. Naive layouts are interpreted in
// local time, matching the write side; RFC 3339 is accepted as a fallback
// for hand-edited files.
func ParseTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range naiveLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Time{}, lastErr
}
