package browse

import "sentence-browser/internal/corpus"

// Chapter bounds of the corpus.
const (
	MinChapter = 1
	MaxChapter = 26
)

// Selection holds the three filter dimensions. Exactly one chapter is active
// at a time; types and labels are subsets of the table's universes.
type Selection struct {
	Chapter int
	Types   map[string]bool
	Labels  map[string]bool
}

// NewSelection returns the maximal selection for the given table: the first
// chapter, every distinct type and every distinct label.
func NewSelection(t corpus.Table) Selection {
	sel := Selection{
		Chapter: MinChapter,
		Types:   make(map[string]bool),
		Labels:  make(map[string]bool),
	}
	for _, ty := range t.Types() {
		sel.Types[ty] = true
	}
	for _, l := range t.Labels() {
		sel.Labels[l] = true
	}
	return sel
}

// ClampChapter forces ch into [MinChapter, MaxChapter].
func ClampChapter(ch int) int {
	if ch < MinChapter {
		return MinChapter
	}
	if ch > MaxChapter {
		return MaxChapter
	}
	return ch
}

// Match reports whether the record passes all three filter dimensions.
// A record with no annotations never matches, and an empty label selection
// matches nothing.
func (s Selection) Match(r corpus.Record) bool {
	if r.Chapter != s.Chapter {
		return false
	}
	if !s.Types[r.Type] {
		return false
	}
	for _, a := range r.Annotations {
		if s.Labels[a] {
			return true
		}
	}
	return false
}

// Filter returns exactly the rows of t matching the selection, in table
// order.
func Filter(t corpus.Table, s Selection) []corpus.Record {
	out := make([]corpus.Record, 0, len(t))
	for _, r := range t {
		if s.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
