package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"sentence-browser/internal/config"
	"sentence-browser/internal/core/browse"
	"sentence-browser/internal/corpus"
)

func InitialModel() Model {
	cfg, _ := config.Load(config.DefaultPath())

	m := Model{
		state:     stateLoading,
		cfg:       cfg,
		store:     corpus.NewStore(cfg.DataPath),
		chapter:   browse.ClampChapter(cfg.StartChapter),
		statusMsg: "loading corpus…",
	}

	m.filterCfg = FilterConfig{
		MinCoverage: 0.6, // stricter -> higher (e.g. 0.7)
		MaxSpread:   40,  // stricter -> smaller (e.g. 25)
		MaxResults:  200, // keep the picker quiet
	}

	// spinner
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = subtleStyle
	m.spinner = sp

	// results viewport, resized on WindowSize
	m.results = viewport.New(80, 24)

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCorpusCmd())
}
