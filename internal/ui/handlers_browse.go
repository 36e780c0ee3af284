package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"sentence-browser/internal/core/browse"
)

// ---------- Browse Handlers ----------

func (m Model) handleBrowseKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()

	// While a picker's narrow input is open, keys belong to the input.
	if p := m.activePicker(); p != nil && p.narrowing {
		switch key {
		case "esc":
			p.narrowing = false
			p.query = ""
			p.narrowInput.SetValue("")
			p.applyNarrow(m.filterCfg)
			return m, nil
		case "enter":
			p.narrowing = false
			return m, nil
		default:
			var cmd tea.Cmd
			p.narrowInput, cmd = p.narrowInput.Update(msg)
			p.query = p.narrowInput.Value()
			p.applyNarrow(m.filterCfg)
			return m, cmd
		}
	}

	switch key {
	case "ctrl+c", "q":
		m.state = stateQuit
		return m, tea.Quit

	case "tab":
		m.focus = (m.focus + 1) % 3
		return m, nil
	case "shift+tab":
		m.focus = (m.focus + 2) % 3
		return m, nil

	// results pane scrolling works regardless of focus
	case "pgdown":
		m.results.ViewDown()
		return m, nil
	case "pgup":
		m.results.ViewUp()
		return m, nil
	case "home":
		m.results.GotoTop()
		return m, nil
	case "end":
		m.results.GotoBottom()
		return m, nil
	}

	switch m.focus {
	case focusChapter:
		return m.handleChapterKey(key)
	case focusTypes, focusLabels:
		return m.handlePickerKey(key)
	}
	return m, nil
}

func (m Model) handleChapterKey(key string) (Model, tea.Cmd) {
	switch key {
	case "h", "left":
		m.chapter = browse.ClampChapter(m.chapter - 1)
		m.refreshResults()
	case "l", "right":
		m.chapter = browse.ClampChapter(m.chapter + 1)
		m.refreshResults()
	case "g":
		m.chapter = browse.MinChapter
		m.refreshResults()
	case "G":
		m.chapter = browse.MaxChapter
		m.refreshResults()
	}
	return m, nil
}

func (m Model) handlePickerKey(key string) (Model, tea.Cmd) {
	p := m.activePicker()
	if p == nil {
		return m, nil
	}

	switch key {
	case "j", "down":
		p.moveCursor(1)
	case "k", "up":
		p.moveCursor(-1)
	case " ":
		p.toggleCurrent()
		m.refreshResults()
	case "a":
		p.selectAll()
		m.refreshResults()
	case "n":
		p.selectNone()
		m.refreshResults()
	case "/":
		p.narrowing = true
		p.narrowInput.Focus()
	}
	return m, nil
}
