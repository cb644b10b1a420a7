package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tasktimer/internal/cli/formatter"
	"github.com/alexanderramin/tasktimer/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// watchModel is the bubbletea Model behind "status --watch": a static timer
// card whose elapsed clock advances on one-second ticks.
type watchModel struct {
	timer    *domain.Timer
	now      time.Time
	quitting bool
	keys     watchKeyMap
}

type watchKeyMap struct {
	Quit key.Binding
}

type tickMsg time.Time

func newWatchModel(t *domain.Timer) watchModel {
	return watchModel{
		timer: t,
		now:   time.Now(),
		keys: watchKeyMap{
			Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
		},
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	elapsed := m.now.Sub(m.timer.StartTime)
	content := fmt.Sprintf(
		"%s\n\nTask: %s\nCategory: %s\nStarted at: %s\nElapsed: %s\n\n%s",
		formatter.StyleGreen.Bold(true).Render("Timer is running"),
		formatter.Bold(m.timer.Task),
		formatter.CategoryBadge(m.timer.Category),
		m.timer.StartTime.Format("15:04:05"),
		formatter.StyleGreen.Render(formatter.Elapsed(elapsed)),
		formatter.Dim("q to quit"),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorDim).
		Padding(1, 2)
	return box.Render(content) + "\n"
}

// runWatch blocks until the user quits the live view.
func runWatch(t *domain.Timer) error {
	_, err := tea.NewProgram(newWatchModel(t)).Run()
	return err
}
