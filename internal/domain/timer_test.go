package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCategories []string

func (f fixedCategories) Valid(name string) bool {
	for _, c := range f {
		if c == name {
			return true
		}
	}
	return false
}

func (f fixedCategories) All() []string { return f }

var testCategories = fixedCategories{"feature", "bug"}

func TestTimerStartStop(t *testing.T) {
	timer := &Timer{}
	assert.False(t, timer.IsRunning())

	require.NoError(t, timer.Start("Write docs", "feature", testCategories))
	assert.True(t, timer.IsRunning())
	assert.Equal(t, "Write docs", timer.Task)

	s, err := timer.Stop()
	require.NoError(t, err)
	assert.Equal(t, "Write docs", s.Task)
	assert.Equal(t, "feature", s.Category)
	assert.False(t, s.EndTime.Before(s.StartTime))

	// Timer resets after stop.
	assert.False(t, timer.IsRunning())
	assert.Empty(t, timer.Task)
}

func TestTimerStartErrors(t *testing.T) {
	t.Run("already running", func(t *testing.T) {
		timer := &Timer{}
		require.NoError(t, timer.Start("a", "bug", testCategories))
		assert.ErrorIs(t, timer.Start("b", "bug", testCategories), ErrTimerRunning)
	})

	t.Run("empty task", func(t *testing.T) {
		timer := &Timer{}
		assert.ErrorIs(t, timer.Start("  ", "bug", testCategories), ErrEmptyTask)
	})

	t.Run("invalid category", func(t *testing.T) {
		timer := &Timer{}
		err := timer.Start("a", "gardening", testCategories)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gardening")
		assert.False(t, timer.IsRunning())
	})
}

func TestTimerStopNotRunning(t *testing.T) {
	timer := &Timer{}
	_, err := timer.Stop()
	assert.ErrorIs(t, err, ErrTimerNotRunning)
}

func TestTimerElapsed(t *testing.T) {
	timer := &Timer{}
	assert.Equal(t, time.Duration(0), timer.Elapsed())

	timer.Task = "a"
	timer.Category = "bug"
	timer.StartTime = time.Now().Add(-2 * time.Minute)
	assert.GreaterOrEqual(t, timer.Elapsed(), 2*time.Minute)
}
