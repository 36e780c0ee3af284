package ui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	if m.state == stateQuit {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sentence Browser"))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", maxInt(10, m.width-2))))
	b.WriteString("\n")

	switch m.state {

	case stateLoading:
		b.WriteString("\n" + m.spinner.View() + " Loading corpus…\n\n")
		b.WriteString(subtleStyle.Render(fmt.Sprintf("Source: %s", m.store.Path())) + "\n\n")
		b.WriteString(helpStyle.Render("q quit"))

	case stateLoadFailed:
		b.WriteString("\n" + errorStyle.Render("Could not load the corpus.") + "\n\n")
		if m.loadErr != nil {
			b.WriteString(warnStyle.Render(m.loadErr.Error()) + "\n\n")
		}
		b.WriteString(subtleStyle.Render(fmt.Sprintf("Expected at: %s", m.store.Path())) + "\n\n")
		b.WriteString(helpStyle.Render("q quit"))

	case stateBrowse:
		b.WriteString(m.viewBrowse())
	}

	b.WriteString("\n")
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
