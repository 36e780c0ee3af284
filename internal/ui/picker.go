package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// pickerViewport caps the number of option rows a picker shows at once.
const pickerViewport = 8

// picker is a multi-select over a fixed option universe. selected is keyed by
// option value; visible maps visible positions to option indices after
// narrowing, the teacher of the filteredIdx pattern in the browse list.
type picker struct {
	title    string
	options  []string
	selected map[string]bool

	cursor  int // position within visible
	offset  int // first visible row shown
	visible []int

	narrowing   bool
	narrowInput textinput.Model
	query       string
}

// newPicker builds a picker with every option selected (maximal default).
func newPicker(title string, options []string) picker {
	sel := make(map[string]bool, len(options))
	for _, o := range options {
		sel[o] = true
	}
	ni := textinput.New()
	ni.Placeholder = "narrow…"
	ni.CharLimit = 80
	ni.Width = 20

	p := picker{
		title:       title,
		options:     options,
		selected:    sel,
		narrowInput: ni,
	}
	p.visible = narrowOptions("", options, FilterConfig{})
	return p
}

// applyNarrow recomputes the visible options for the current query.
func (p *picker) applyNarrow(cfg FilterConfig) {
	p.visible = narrowOptions(p.query, p.options, cfg)
	if p.cursor >= len(p.visible) {
		p.cursor = 0
	}
	p.offset = 0
	p.ensureVisible()
}

// moveCursor shifts the cursor by delta, clamped to the visible range.
func (p *picker) moveCursor(delta int) {
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor > len(p.visible)-1 {
		p.cursor = len(p.visible) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.ensureVisible()
}

// ensureVisible scrolls the option window so the cursor stays on screen.
func (p *picker) ensureVisible() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+pickerViewport {
		p.offset = p.cursor - pickerViewport + 1
	}
}

// toggleCurrent flips the selection state of the option under the cursor.
func (p *picker) toggleCurrent() {
	if len(p.visible) == 0 {
		return
	}
	opt := p.options[p.visible[p.cursor]]
	p.selected[opt] = !p.selected[opt]
}

// selectAll marks every option of the universe, not just the visible ones.
func (p *picker) selectAll() {
	for _, o := range p.options {
		p.selected[o] = true
	}
}

// selectNone clears the whole selection.
func (p *picker) selectNone() {
	for _, o := range p.options {
		p.selected[o] = false
	}
}

// countSelected returns how many options are currently selected.
func (p *picker) countSelected() int {
	n := 0
	for _, v := range p.selected {
		if v {
			n++
		}
	}
	return n
}
