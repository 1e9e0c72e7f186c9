package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the countdown dashboard and blocks until the user quits.
func Run(state *AppState) error {
	// Console log lines would tear the alt screen; the log file still receives them.
	log := state.logger()
	log.SetConsole(false)
	defer log.SetConsole(true)

	model := NewModel(state)
	program := tea.NewProgram(model, tea.WithAltScreen())

	_, err := program.Run()
	if model.editor.IsOpen() {
		model.editor.Close()
	}
	return err
}
