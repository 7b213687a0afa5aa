package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"studytracker/internal/adapters/jsonfile"
	"studytracker/internal/adapters/tui"
	"studytracker/internal/config"
)

func main() {
	store, err := jsonfile.NewStore(config.BaseDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(store)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
