package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"studytracker/internal/adapters/tui/views"
	"studytracker/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewSessions ViewState = iota
	ViewAdd
	ViewHelp
)

// App is the main TUI application model
type App struct {
	repo ports.SessionRepository

	state    ViewState
	sessions *views.SessionsModel
	add      *views.AddModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(repo ports.SessionRepository) *App {
	return &App{
		repo:     repo,
		state:    ViewSessions,
		sessions: views.NewSessionsModel(repo),
		add:      views.NewAddModel(repo),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.sessions.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.sessions.SetSize(msg.Width, msg.Height)
		a.add.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToAddMsg:
		a.state = ViewAdd
		return a, a.add.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToSessionsMsg:
		a.state = ViewSessions
		return a, nil

	case views.SessionAddedMsg:
		a.state = ViewSessions
		_, cmd := a.sessions.Update(msg)
		return a, cmd
	}

	// Delegate to the active view
	switch a.state {
	case ViewSessions:
		_, cmd := a.sessions.Update(msg)
		return a, cmd
	case ViewAdd:
		_, cmd := a.add.Update(msg)
		return a, cmd
	case ViewHelp:
		_, cmd := a.help.Update(msg)
		return a, cmd
	}

	return a, nil
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewAdd:
		return a.add.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.sessions.View()
	}
}
