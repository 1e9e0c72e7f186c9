package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardCopyMsg is sent after a clipboard copy operation.
type clipboardCopyMsg struct {
	success bool
	err     error
}

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// copyToClipboard copies text to the system clipboard.
// Returns a tea.Cmd that will send a clipboardCopyMsg when complete.
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return clipboardCopyMsg{success: false, err: err}
		}
		return clipboardCopyMsg{success: true}
	}
}
