package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"sentence-browser/internal/corpus"
)

// ---------- Messages / Cmds ----------
type loadedMsg struct {
	table corpus.Table
	err   error
}

// loadCorpusCmd performs the one-time corpus load off the update loop. The
// store memoizes the result, so re-entering this cmd never re-reads the file.
func (m Model) loadCorpusCmd() tea.Cmd {
	return func() tea.Msg {
		table, err := m.store.Table()
		return loadedMsg{table: table, err: err}
	}
}
