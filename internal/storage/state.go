package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/tasktimer/internal/domain"
)

const stateFile = ".timer_state.json"

// ErrNoActiveTimer is returned by Load when no timer state file exists.
var ErrNoActiveTimer = errors.New("no active timer")

// StateStore persists the single active-timer marker so a running timer
// survives process exit. The marker holds only task, category, and start.
type StateStore struct {
	path string
}

// NewStateStore creates a store backed by dir/.timer_state.json.
func NewStateStore(dir string) *StateStore {
	return &StateStore{path: filepath.Join(dir, stateFile)}
}

type timerState struct {
	Task      string `json:"task"`
	Category  string `json:"category"`
	StartTime string `json:"start_time"`
}

// Save writes the running timer's state. The timer must be running.
func (st *StateStore) Save(t *domain.Timer) error {
	if !t.IsRunning() {
		return domain.ErrTimerNotRunning
	}

	state := timerState{
		Task:      t.Task,
		Category:  t.Category,
		StartTime: domain.FormatTime(t.StartTime),
	}
	return writeJSONAtomic(st.path, state)
}

// Load restores the active timer, or ErrNoActiveTimer if none is recorded.
func (st *StateStore) Load() (*domain.Timer, error) {
	data, err := os.ReadFile(st.path)
	if os.IsNotExist(err) {
		return nil, ErrNoActiveTimer
	}
	if err != nil {
		return nil, fmt.Errorf("reading timer state: %w", err)
	}

	var state timerState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parsing timer state: %w", err)
	}

	start, err := domain.ParseTime(state.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parsing timer start_time: %w", err)
	}

	return &domain.Timer{
		Task:      state.Task,
		Category:  state.Category,
		StartTime: start,
	}, nil
}

// Clear removes the marker file. Safe to call when no timer is recorded.
func (st *StateStore) Clear() error {
	err := os.Remove(st.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing timer state: %w", err)
	}
	return nil
}
