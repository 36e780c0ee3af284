package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sentence-browser/internal/core/browse"
)

func (m Model) viewBrowse() string {
	sidebar := sidebarStyle.Width(sidebarWidth).Render(m.viewSidebar())
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, m.results.View())

	status := fmt.Sprintf("%d of %d sentences  |  types %d/%d  |  labels %d/%d",
		m.shownRows, len(m.table),
		m.types.countSelected(), len(m.types.options),
		m.labels.countSelected(), len(m.labels.options))

	help := []string{
		"tab focus  |  h/l chapter  |  j/k move  |  space toggle  |  a all  |  n none",
		"/ narrow  |  pgup/pgdn scroll  |  q quit",
	}
	return body + "\n" + renderFooter(status, help...)
}

func (m Model) viewSidebar() string {
	var b strings.Builder

	// chapter slider
	header := "Chapter"
	if m.focus == focusChapter {
		header = focusStyle.Render("Chapter")
	}
	b.WriteString(header + "\n")
	b.WriteString(renderSlider(m.chapter) + "\n\n")

	b.WriteString(m.viewPicker(m.types, m.focus == focusTypes))
	b.WriteString("\n")
	b.WriteString(m.viewPicker(m.labels, m.focus == focusLabels))
	return b.String()
}

// renderSlider draws the chapter track, one cell per chapter.
func renderSlider(ch int) string {
	filled := ch - browse.MinChapter + 1
	track := strings.Repeat("█", filled) +
		strings.Repeat("░", browse.MaxChapter-browse.MinChapter+1-filled)
	return fmt.Sprintf("◀ %s ▶  %d", track, ch)
}

func (m Model) viewPicker(p picker, focused bool) string {
	var b strings.Builder

	header := fmt.Sprintf("%s (%d/%d)", p.title, p.countSelected(), len(p.options))
	if focused {
		header = focusStyle.Render(header)
	}
	b.WriteString(header + "\n")

	if p.narrowing {
		b.WriteString("/" + p.narrowInput.View() + "\n")
	} else if p.query != "" {
		b.WriteString(subtleStyle.Render("/"+p.query) + "\n")
	}

	if len(p.visible) == 0 {
		b.WriteString(subtleStyle.Render("  (no options)") + "\n")
		return b.String()
	}

	end := minInt(p.offset+pickerViewport, len(p.visible))
	for i := p.offset; i < end; i++ {
		opt := p.options[p.visible[i]]

		cursor := "  "
		if focused && i == p.cursor {
			cursor = "▶ "
		}
		mark := "[ ]"
		if p.selected[opt] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", cursor, mark, opt)
		if focused && i == p.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if len(p.visible) > pickerViewport {
		b.WriteString(subtleStyle.Render(
			fmt.Sprintf("  %d–%d of %d", p.offset+1, end, len(p.visible))) + "\n")
	}
	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
