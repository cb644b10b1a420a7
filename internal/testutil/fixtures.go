// Package testutil provides fixture builders shared by the test suites.
package testutil

import (
	"time"

	"github.com/alexanderramin/tasktimer/internal/domain"
	"github.com/google/uuid"
)

// SessionOption mutates a fixture session before it is returned.
type SessionOption func(*domain.Session)

func WithCategory(c string) SessionOption {
	return func(s *domain.Session) {
		s.Category = c
	}
}

func WithStart(t time.Time) SessionOption {
	return func(s *domain.Session) {
		s.StartTime = t
	}
}

func WithEnd(t time.Time) SessionOption {
	return func(s *domain.Session) {
		s.EndTime = t
	}
}

func WithID(id string) SessionOption {
	return func(s *domain.Session) {
		s.ID = id
	}
}

// NewTestSession builds a one-hour "feature" session starting at a fixed
// local timestamp, overridable via options.
func NewTestSession(task string, opts ...SessionOption) *domain.Session {
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	s := &domain.Session{
		ID:        uuid.New().String(),
		Task:      task,
		Category:  "feature",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// At is shorthand for a local timestamp on 2024-01-15.
func At(hour, min int) time.Time {
	return time.Date(2024, 1, 15, hour, min, 0, 0, time.Local)
}

// Span builds a session covering [start, end) on 2024-01-15.
func Span(task, category string, startHour, startMin, endHour, endMin int) *domain.Session {
	return NewTestSession(task,
		WithCategory(category),
		WithStart(At(startHour, startMin)),
		WithEnd(At(endHour, endMin)),
	)
}
