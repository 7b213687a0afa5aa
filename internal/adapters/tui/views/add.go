package views

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"studytracker/internal/adapters/tui/styles"
	"studytracker/internal/application/commands"
	"studytracker/internal/ports"
)

const (
	fieldTopic = iota
	fieldMinutes
	fieldDate
)

// AddModel is the model for the add-session form
type AddModel struct {
	ViewState

	repo ports.SessionRepository
	form *InputForm
}

// NewAddModel creates a new add view
func NewAddModel(repo ports.SessionRepository) *AddModel {
	return &AddModel{
		repo: repo,
		form: NewInputForm(
			NewInputField("Topic", "What did you study?", 80),
			NewInputField("Minutes", "e.g. 30", 5),
			NewInputField("Date", "YYYY-MM-DD (empty for today)", 10),
		),
	}
}

// Init initializes the add view
func (m *AddModel) Init() tea.Cmd {
	m.form.Reset()
	m.ClearMessage()
	return m.form.Init()
}

// Update handles messages for the add view
func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg {
				return SwitchToSessionsMsg{}
			}

		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.submit()
		}
	}

	handled, cmd := m.form.Update(msg)
	if handled {
		return m, nil
	}
	return m, cmd
}

// submit validates the form and records the session. Validation failures
// stay inline in the form; only a successful add leaves the view.
func (m *AddModel) submit() tea.Cmd {
	topic := m.form.Value(fieldTopic)
	date := m.form.Value(fieldDate)

	minutes, err := strconv.Atoi(m.form.Value(fieldMinutes))
	if err != nil {
		m.SetMessage("minutes must be a positive integer", true)
		return nil
	}

	cmd := commands.NewAddCommand(m.repo, topic, minutes, date)
	if err := cmd.Validate(); err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}

	return func() tea.Msg {
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return SessionAddedMsg{Message: result.Message}
	}
}

// View renders the add view
func (m *AddModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Log a study session"))
	b.WriteString("\n\n")

	for i := range m.form.Fields {
		b.WriteString(m.form.RenderField(i))
		b.WriteString("\n\n")
	}

	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(m.form.RenderHelp("save"))

	return styles.App.Render(b.String())
}
