package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"studytracker/internal/adapters/tui/styles"
)

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SessionsKeys.Quit):
			return m, tea.Quit
		default:
			return m, func() tea.Msg {
				return SwitchToSessionsMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Help"))
	b.WriteString("\n\n")

	sections := []struct {
		title string
		keys  [][2]string
	}{
		{
			title: "Sessions",
			keys: [][2]string{
				{"j/↓, k/↑", "move the cursor"},
				{"a", "log a new session"},
				{"t", "cycle the topic filter"},
				{"y", "copy the current total to the clipboard"},
				{"r", "reload from disk"},
			},
		},
		{
			title: "Add form",
			keys: [][2]string{
				{"tab", "next field"},
				{"enter", "save the session"},
				{"esc", "back without saving"},
			},
		},
		{
			title: "General",
			keys: [][2]string{
				{"?", "this help"},
				{"q, ctrl+c", "quit"},
			},
		},
	}

	for _, section := range sections {
		b.WriteString(styles.InputLabel.Render(section.title))
		b.WriteString("\n")
		for _, k := range section.keys {
			fmt.Fprintf(&b, "  %s  %s\n",
				styles.HelpKey.Render(fmt.Sprintf("%-10s", k[0])),
				styles.HelpDesc.Render(k[1]),
			)
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpDesc.Render("Press any key to go back."))

	return styles.App.Render(b.String())
}
