package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/tasktimer/internal/config"
	"github.com/alexanderramin/tasktimer/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	dir := t.TempDir()
	return &App{
		Store:         storage.NewSessionStore(dir),
		State:         storage.NewStateStore(dir),
		Categories:    config.LoadCategories(dir),
		Config:        &config.Config{DataDir: dir, DefaultFormat: "text"},
		IsInteractive: func() bool { return false },
	}, dir
}

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetArgs(args)
	return root.Execute()
}

func TestStartStopLifecycle(t *testing.T) {
	app, dir := newTestApp(t)

	require.NoError(t, execute(t, app, "start", "--task", "Fix login bug", "--category", "bug"))

	// State file exists while the timer runs.
	timer, err := app.State.Load()
	require.NoError(t, err)
	assert.Equal(t, "Fix login bug", timer.Task)
	assert.Equal(t, "bug", timer.Category)

	require.NoError(t, execute(t, app, "stop"))

	// Session persisted, state cleared.
	sessions, err := app.Store.Load(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Fix login bug", sessions[0].Task)

	_, err = app.State.Load()
	assert.ErrorIs(t, err, storage.ErrNoActiveTimer)

	_, statErr := os.Stat(filepath.Join(dir, "sessions.json"))
	assert.NoError(t, statErr)
}

func TestStartRejectsSecondTimer(t *testing.T) {
	app, _ := newTestApp(t)

	require.NoError(t, execute(t, app, "start", "--task", "first", "--category", "feature"))
	err := execute(t, app, "start", "--task", "second", "--category", "feature")
	assert.ErrorContains(t, err, "already running")
}

func TestStartRejectsUnknownCategory(t *testing.T) {
	app, _ := newTestApp(t)

	err := execute(t, app, "start", "--task", "t", "--category", "nonsense")
	assert.Error(t, err)
}

func TestStartRequiresTask(t *testing.T) {
	app, _ := newTestApp(t)

	err := execute(t, app, "start", "--category", "feature")
	assert.Error(t, err)
}

func TestStopWithoutTimer(t *testing.T) {
	app, _ := newTestApp(t)

	err := execute(t, app, "stop")
	assert.ErrorContains(t, err, "no timer")
}

func TestReportWritesFile(t *testing.T) {
	app, dir := newTestApp(t)

	require.NoError(t, execute(t, app, "start", "--task", "work", "--category", "feature"))
	require.NoError(t, execute(t, app, "stop"))

	out := filepath.Join(dir, "report.json")
	require.NoError(t, execute(t, app, "report", "daily", "--format", "json", "-o", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sessions"`)
	assert.Contains(t, string(data), "work")
}

func TestReportRejectsUnknownFormat(t *testing.T) {
	app, _ := newTestApp(t)

	err := execute(t, app, "report", "daily", "--format", "yaml")
	assert.Error(t, err)
}

func TestReportRejectsBadDate(t *testing.T) {
	app, _ := newTestApp(t)

	err := execute(t, app, "report", "daily", "--date", "15/01/2024")
	assert.Error(t, err)
}

func TestCategoryAddRemove(t *testing.T) {
	app, dir := newTestApp(t)

	require.NoError(t, execute(t, app, "category", "add", "urgent"))
	assert.True(t, config.LoadCategories(dir).Valid("urgent"))

	require.NoError(t, execute(t, app, "category", "remove", "urgent"))
	assert.False(t, config.LoadCategories(dir).Valid("urgent"))
}

func TestInsightsRunsOnEmptyStore(t *testing.T) {
	app, _ := newTestApp(t)

	assert.NoError(t, execute(t, app, "insights", "--all"))
}

func TestListRunsWithFilters(t *testing.T) {
	app, _ := newTestApp(t)

	require.NoError(t, execute(t, app, "start", "--task", "work", "--category", "feature"))
	require.NoError(t, execute(t, app, "stop"))

	assert.NoError(t, execute(t, app, "list"))
	assert.NoError(t, execute(t, app, "list", "--today"))
	assert.NoError(t, execute(t, app, "list", "--category", "feature", "--limit", "1"))
}
