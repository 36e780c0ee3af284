package ui

import "testing"

func testCfg() FilterConfig {
	return FilterConfig{MinCoverage: 0.6, MaxSpread: 40, MaxResults: 200}
}

func TestNewPickerSelectsAll(t *testing.T) {
	p := newPicker("Types", []string{"a", "b", "c"})
	if got := p.countSelected(); got != 3 {
		t.Fatalf("default selection count = %d, want 3", got)
	}
	if len(p.visible) != 3 {
		t.Fatalf("visible = %v, want all options", p.visible)
	}
}

func TestPickerToggle(t *testing.T) {
	p := newPicker("Types", []string{"a", "b"})
	p.toggleCurrent()
	if p.selected["a"] {
		t.Fatal("expected first option deselected after toggle")
	}
	p.toggleCurrent()
	if !p.selected["a"] {
		t.Fatal("expected first option reselected after second toggle")
	}
}

func TestPickerSelectAllNone(t *testing.T) {
	p := newPicker("Labels", []string{"x", "y", "z"})
	p.selectNone()
	if got := p.countSelected(); got != 0 {
		t.Fatalf("after selectNone count = %d, want 0", got)
	}
	p.selectAll()
	if got := p.countSelected(); got != 3 {
		t.Fatalf("after selectAll count = %d, want 3", got)
	}
}

func TestPickerSelectAllCoversHiddenOptions(t *testing.T) {
	p := newPicker("Labels", []string{"alpha", "beta"})
	p.query = "alpha"
	p.applyNarrow(testCfg())
	p.selectNone()
	p.selectAll()
	if !p.selected["beta"] {
		t.Fatal("selectAll must cover options hidden by narrowing")
	}
}

func TestPickerCursorClamped(t *testing.T) {
	p := newPicker("Types", []string{"a", "b"})
	p.moveCursor(-5)
	if p.cursor != 0 {
		t.Fatalf("cursor below range: %d", p.cursor)
	}
	p.moveCursor(10)
	if p.cursor != 1 {
		t.Fatalf("cursor above range: %d", p.cursor)
	}
}

func TestPickerNarrowResetsCursor(t *testing.T) {
	opts := []string{"aa", "ab", "zz"}
	p := newPicker("Types", opts)
	p.moveCursor(2)
	p.query = "a"
	p.applyNarrow(testCfg())
	if len(p.visible) != 2 {
		t.Fatalf("visible after narrow = %v", p.visible)
	}
	if p.cursor != 0 {
		t.Fatalf("cursor not reset after narrowing: %d", p.cursor)
	}
}

func TestPickerOffsetFollowsCursor(t *testing.T) {
	opts := make([]string, 20)
	for i := range opts {
		opts[i] = string(rune('a' + i))
	}
	p := newPicker("Labels", opts)
	p.moveCursor(12)
	if p.cursor < p.offset || p.cursor >= p.offset+pickerViewport {
		t.Fatalf("cursor %d outside window [%d,%d)", p.cursor, p.offset, p.offset+pickerViewport)
	}
	p.moveCursor(-12)
	if p.offset != 0 {
		t.Fatalf("offset should rewind with cursor, got %d", p.offset)
	}
}

func TestPickerToggleOnEmptyVisible(t *testing.T) {
	p := newPicker("Types", nil)
	// must not panic
	p.toggleCurrent()
	if got := p.countSelected(); got != 0 {
		t.Fatalf("empty picker selection count = %d", got)
	}
}
