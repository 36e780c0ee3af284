package ui

import (
	"errors"
	"strings"
	"testing"

	"sentence-browser/internal/core/browse"
	"sentence-browser/internal/corpus"
)

func TestRenderSliderTrack(t *testing.T) {
	s := renderSlider(browse.MinChapter)
	if !strings.Contains(s, "1") {
		t.Fatalf("slider should show the chapter number: %q", s)
	}
	cells := strings.Count(s, "█") + strings.Count(s, "░")
	if cells != browse.MaxChapter-browse.MinChapter+1 {
		t.Fatalf("slider track has %d cells, want %d", cells, browse.MaxChapter-browse.MinChapter+1)
	}
	if strings.Count(s, "█") != 1 {
		t.Fatalf("chapter 1 should fill exactly one cell: %q", s)
	}

	s = renderSlider(browse.MaxChapter)
	if strings.Count(s, "░") != 0 {
		t.Fatalf("chapter 26 should fill the whole track: %q", s)
	}
}

func TestViewLoadFailed(t *testing.T) {
	m := Model{
		state:   stateLoadFailed,
		store:   corpus.NewStore("outdir/merged.json"),
		loadErr: errors.New("no such file"),
	}
	out := m.View()
	if !strings.Contains(out, "Could not load the corpus.") {
		t.Fatalf("missing failure headline: %q", out)
	}
	if !strings.Contains(out, "no such file") {
		t.Fatalf("missing error detail: %q", out)
	}
	if !strings.Contains(out, "outdir/merged.json") {
		t.Fatalf("missing corpus path: %q", out)
	}
}

func TestViewBrowseShowsCounts(t *testing.T) {
	m := browseModel(browseTable())
	out := m.viewBrowse()
	if !strings.Contains(out, "Types (2/2)") {
		t.Fatalf("missing type picker header: %q", out)
	}
	if !strings.Contains(out, "Included labels (3/3)") {
		t.Fatalf("missing label picker header: %q", out)
	}
	if !strings.Contains(out, "3 of 4 sentences") {
		t.Fatalf("missing status counts: %q", out)
	}
}

func TestViewQuitIsEmpty(t *testing.T) {
	m := Model{state: stateQuit}
	if out := m.View(); out != "" {
		t.Fatalf("quit view should be empty, got %q", out)
	}
}

func TestStyleGroupsEmptyNote(t *testing.T) {
	out := styleGroups(nil)
	if !strings.Contains(out, "no sentences match") {
		t.Fatalf("expected empty-result note, got %q", out)
	}
}
