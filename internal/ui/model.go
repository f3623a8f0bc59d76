package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calens/casewatch/internal/prefs"
	"github.com/calens/casewatch/internal/state"
)

// redrawInterval drives the display tick: countdown updates and store
// re-reads happen this often, independent of the fetch cadence.
const redrawInterval = 500 * time.Millisecond

// tickMsg carries the wall-clock time of a display tick.
type tickMsg time.Time

// Model is the bubbletea model for the dashboard.
type Model struct {
	options Options
	keys    KeyMap
	theme   Theme
	styles  Styles
	spinner spinner.Model

	snapshot state.Snapshot
	now      time.Time
	width    int
	height   int
}

// NewModel builds the dashboard model. The store must already be
// seeded with accounts; the first frame renders whatever the initial
// synchronous pass produced.
func NewModel(opts Options) Model {
	theme := GetTheme(opts.ThemeName)
	styles := theme.Styles()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.AccentText),
	)

	m := Model{
		options: opts,
		keys:    DefaultKeyMap,
		theme:   theme,
		styles:  styles,
		spinner: sp,
		now:     time.Now(),
	}
	if opts.Store != nil {
		m.snapshot = opts.Store.Snapshot()
	}
	return m
}

// Init schedules the display tick and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.spinner.Tick)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(redrawInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		if m.options.Store != nil {
			m.snapshot = m.options.Store.Snapshot()
		}
		return m, m.tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			if m.options.Refresher != nil {
				m.options.Refresher.Kick()
			}
			return m, nil
		case key.Matches(msg, m.keys.Theme):
			return m.cycleTheme(), nil
		}
	}
	return m, nil
}

// cycleTheme switches to the next theme and persists the choice.
func (m Model) cycleTheme() Model {
	next := NextTheme(m.theme.Name)
	m.theme = GetTheme(next)
	m.styles = m.theme.Styles()
	m.spinner.Style = m.styles.AccentText

	// Persistence is cosmetic; a failed save just means the old theme
	// comes back next run.
	_ = prefs.Save(m.options.PrefsPath, prefs.Prefs{Theme: next})
	return m
}

// View renders the full frame.
func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderSummary(),
	}
	for _, acc := range m.snapshot.Accounts {
		sections = append(sections, m.renderAccountTable(acc))
	}
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
