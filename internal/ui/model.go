package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"

	"sentence-browser/internal/config"
	"sentence-browser/internal/core/browse"
	"sentence-browser/internal/corpus"
)

// --- Model / State ---
type state int

const (
	stateLoading state = iota
	stateBrowse
	stateLoadFailed
	stateQuit
)

// focusArea marks which sidebar control receives keys.
type focusArea int

const (
	focusChapter focusArea = iota
	focusTypes
	focusLabels
)

type Model struct {
	state         state
	cfg           config.Config
	store         *corpus.Store
	table         corpus.Table
	loadErr       error
	statusMsg     string
	width, height int

	// spinner for the load state
	spinner spinner.Model

	// sidebar controls
	focus   focusArea
	chapter int
	types   picker
	labels  picker

	filterCfg FilterConfig

	// results pane
	results   viewport.Model
	shownRows int
}

// selection reads the current control state. It is rebuilt on every render
// pass; nothing about the filter outcome is cached between interactions.
func (m Model) selection() browse.Selection {
	return browse.Selection{
		Chapter: m.chapter,
		Types:   m.types.selected,
		Labels:  m.labels.selected,
	}
}

// activePicker returns the focused picker, or nil when the chapter slider
// has focus.
func (m *Model) activePicker() *picker {
	switch m.focus {
	case focusTypes:
		return &m.types
	case focusLabels:
		return &m.labels
	}
	return nil
}
