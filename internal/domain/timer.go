package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrTimerRunning    = errors.New("timer is already running")
	ErrTimerNotRunning = errors.New("timer is not running")
)

// CategoryValidator reports whether a category label is acceptable.
// The concrete set is owned by the configuration layer and passed in
// explicitly; the timer holds no category state of its own.
type CategoryValidator interface {
	Valid(name string) bool
	All() []string
}

// Timer tracks at most one in-progress work session. The zero value is a
// stopped timer.
type Timer struct {
	Task      string
	Category  string
	StartTime time.Time
}

// IsRunning reports whether the timer has been started and not yet stopped.
func (t *Timer) IsRunning() bool {
	return !t.StartTime.IsZero()
}

// Start begins timing a task. The category must be accepted by the given
// validator.
func (t *Timer) Start(task, category string, cats CategoryValidator) error {
	if t.IsRunning() {
		return ErrTimerRunning
	}
	if strings.TrimSpace(task) == "" {
		return ErrEmptyTask
	}
	if !cats.Valid(category) {
		return fmt.Errorf("invalid category %q: must be one of %s", category, strings.Join(cats.All(), ", "))
	}

	t.Task = task
	t.Category = category
	t.StartTime = time.Now()
	return nil
}

// Stop ends the running timer, returning the completed session and
// resetting the timer to its stopped state.
func (t *Timer) Stop() (*Session, error) {
	if !t.IsRunning() {
		return nil, ErrTimerNotRunning
	}

	s, err := NewSession(t.Task, t.Category, t.StartTime, time.Now())
	if err != nil {
		return nil, err
	}

	t.Task = ""
	t.Category = ""
	t.StartTime = time.Time{}
	return s, nil
}

// Elapsed returns the running duration, or zero if the timer is stopped.
func (t *Timer) Elapsed() time.Duration {
	if !t.IsRunning() {
		return 0
	}
	return time.Since(t.StartTime)
}
