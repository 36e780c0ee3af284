package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"sentence-browser/internal/core/browse"
	"sentence-browser/internal/infra/logx"
)

// sidebarWidth is the fixed column reserved for the filter controls.
const sidebarWidth = 34

// ---------- Update ----------
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		key := msg.String()
		if m.state == stateBrowse {
			return m.handleBrowseKey(msg)
		}

		// global shortcuts outside the browse view
		if key == "ctrl+c" || key == "q" {
			m.state = stateQuit
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// rough reserve for title, divider and footer chrome
		const chrome = 7
		h := m.height - chrome
		if h < 3 {
			h = 3
		}
		w := m.width - sidebarWidth - 2
		if w < 20 {
			w = 20
		}
		m.results.Width = w
		m.results.Height = h
		if m.state == stateBrowse {
			m.refreshResults()
		}

	case loadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			m.state = stateLoadFailed
			m.statusMsg = "corpus load failed"
			logx.Errorf("load: %v", msg.err)
			return m, nil
		}
		m.table = msg.table
		m.types = newPicker("Types", m.table.Types())
		m.labels = newPicker("Included labels", m.table.Labels())
		m.state = stateBrowse
		m.statusMsg = ""
		logx.Infof("load: %d rows, %d types, %d labels",
			len(m.table), len(m.types.options), len(m.labels.options))
		m.refreshResults()
		return m, nil

	case spinner.TickMsg:
		if m.state == stateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// refreshResults recomputes the full filtered, grouped view from the current
// control state and hands it to the viewport. This runs on every interaction;
// there is no incremental state to invalidate.
func (m *Model) refreshResults() {
	rows := browse.Filter(m.table, m.selection())
	m.shownRows = len(rows)
	m.results.SetContent(styleGroups(browse.GroupByType(rows)))
	m.results.GotoTop()
}
