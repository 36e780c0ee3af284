package corpus

import (
	"reflect"
	"testing"
)

func TestTableTypesSortedDistinct(t *testing.T) {
	table := Table{
		{Type: "narration"},
		{Type: "dialogue"},
		{Type: "narration"},
		{Type: "aside"},
	}
	want := []string{"aside", "dialogue", "narration"}
	if got := table.Types(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Types() = %v, want %v", got, want)
	}
}

func TestTableLabelsFromFullTable(t *testing.T) {
	table := Table{
		{Annotations: []string{"greeting", "irony"}},
		{Annotations: []string{"greeting"}},
		{Annotations: []string{}},
		{Annotations: []string{"farewell"}},
	}
	want := []string{"farewell", "greeting", "irony"}
	if got := table.Labels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Labels() = %v, want %v", got, want)
	}
}

func TestEmptyTableUniverses(t *testing.T) {
	var table Table
	if got := table.Types(); len(got) != 0 {
		t.Fatalf("Types() on empty table = %v", got)
	}
	if got := table.Labels(); len(got) != 0 {
		t.Fatalf("Labels() on empty table = %v", got)
	}
}
