package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"studytracker/internal/adapters/tui/styles"
	"studytracker/internal/domain"
	"studytracker/internal/ports"
)

// SessionsKeyMap defines key bindings for the sessions view
type SessionsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Filter key.Binding
	Copy   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var SessionsKeys = SessionsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Filter: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "topic filter"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy total"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// SessionsModel is the model for the session list view
type SessionsModel struct {
	ViewState

	repo     ports.SessionRepository
	sessions []domain.Session
	topics   []string
	filter   int // index into topics; -1 means no filter
	cursor   int
	loaded   bool
}

// NewSessionsModel creates a new sessions view
func NewSessionsModel(repo ports.SessionRepository) *SessionsModel {
	return &SessionsModel{
		repo:   repo,
		filter: -1,
	}
}

// Init initializes the sessions view
func (m *SessionsModel) Init() tea.Cmd {
	return m.loadSessions
}

func (m *SessionsModel) loadSessions() tea.Msg {
	sessions, err := m.repo.Load()
	if err != nil {
		return errMsg{err}
	}
	return sessionsLoadedMsg{sessions}
}

type sessionsLoadedMsg struct {
	sessions []domain.Session
}

// Update handles messages for the sessions view
func (m *SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case sessionsLoadedMsg:
		m.sessions = msg.sessions
		m.topics = domain.Topics(msg.sessions)
		m.loaded = true
		m.filter = -1
		m.clampCursor()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case SessionAddedMsg:
		m.SetMessage(msg.Message, false)
		return m, m.loadSessions

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, SessionsKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, SessionsKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SessionsKeys.Down):
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SessionsKeys.Add):
			return m, func() tea.Msg {
				return SwitchToAddMsg{}
			}

		case key.Matches(msg, SessionsKeys.Filter):
			m.cycleFilter()
			return m, nil

		case key.Matches(msg, SessionsKeys.Copy):
			line := m.totalLine()
			if err := clipboard.WriteAll(line); err != nil {
				m.SetMessage(fmt.Sprintf("clipboard: %v", err), true)
			} else {
				m.SetMessage("Copied: "+line, false)
			}
			return m, nil

		case key.Matches(msg, SessionsKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, SessionsKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

// cycleFilter advances the topic filter: all topics in first-seen order,
// then back to unfiltered.
func (m *SessionsModel) cycleFilter() {
	if len(m.topics) == 0 {
		return
	}
	m.filter++
	if m.filter >= len(m.topics) {
		m.filter = -1
	}
	m.cursor = 0
}

// visible returns the sessions under the current filter
func (m *SessionsModel) visible() []domain.Session {
	if m.filter < 0 || m.filter >= len(m.topics) {
		return m.sessions
	}
	return domain.FilterByTopic(m.sessions, m.topics[m.filter])
}

// totalLine formats the report line for the current filter
func (m *SessionsModel) totalLine() string {
	visible := m.visible()
	if m.filter >= 0 && m.filter < len(m.topics) {
		return fmt.Sprintf("Total for '%s': %d min", m.topics[m.filter], domain.TotalMinutes(visible))
	}
	return fmt.Sprintf("Total minutes: %d", domain.TotalMinutes(visible))
}

func (m *SessionsModel) clampCursor() {
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the sessions view
func (m *SessionsModel) View() string {
	if !m.loaded {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Study Tracker"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Sessions logged at " + m.repo.Path()))
	b.WriteString("\n\n")

	if m.filter >= 0 && m.filter < len(m.topics) {
		b.WriteString(styles.FilterBadge.Render("topic: " + m.topics[m.filter]))
		b.WriteString("\n\n")
	}

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(styles.Subtitle.Render("No sessions yet."))
		b.WriteString("\n")
	}
	for i, s := range visible {
		b.WriteString(m.renderRow(i, s, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Totals.Render(m.totalLine()))
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *SessionsModel) renderRow(i int, s domain.Session, selected bool) string {
	text := fmt.Sprintf("%d. %s — %s: %d min", i+1, s.Date, s.Topic, s.Minutes)
	if selected {
		return styles.RowSelected.Render(text)
	}
	return fmt.Sprintf("%s %s %s",
		styles.RowIndex.Render(fmt.Sprintf("%d.", i+1)),
		styles.RowDate.Render(s.Date),
		styles.RowTopic.Render(fmt.Sprintf("%s: %d min", s.Topic, s.Minutes)),
	)
}

func (m *SessionsModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"a", "add"},
		{"t", "topic filter"},
		{"y", "copy total"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// Reload refetches the collection from storage
func (m *SessionsModel) Reload() tea.Cmd {
	m.loaded = false
	m.cursor = 0
	return m.loadSessions
}
