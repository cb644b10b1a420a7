package storage

import (
	"testing"
	"time"

	"github.com/alexanderramin/tasktimer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateSaveLoadClear(t *testing.T) {
	store := NewStateStore(t.TempDir())

	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	timer := &domain.Timer{Task: "Fix login bug", Category: "bug", StartTime: start}

	require.NoError(t, store.Save(timer))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Fix login bug", loaded.Task)
	assert.Equal(t, "bug", loaded.Category)
	assert.True(t, loaded.IsRunning())

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoActiveTimer)
}

func TestStateSaveRequiresRunningTimer(t *testing.T) {
	store := NewStateStore(t.TempDir())
	err := store.Save(&domain.Timer{})
	assert.ErrorIs(t, err, domain.ErrTimerNotRunning)
}

func TestStateLoadWhenAbsent(t *testing.T) {
	store := NewStateStore(t.TempDir())
	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoActiveTimer)
}

func TestStateClearIsIdempotent(t *testing.T) {
	store := NewStateStore(t.TempDir())
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}
