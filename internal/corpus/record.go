package corpus

import "sort"

// Record is one annotated sentence of the corpus table.
type Record struct {
	Chapter     int
	Type        string
	SentenceID  int
	Text        string
	Annotations []string
}

// Table is the completeness-filtered sentence corpus. It is loaded once per
// session and never mutated afterwards.
type Table []Record

// Types returns the distinct sentence types of the full table in ascending
// order.
func (t Table) Types() []string {
	seen := make(map[string]bool, 8)
	for _, r := range t {
		seen[r.Type] = true
	}
	return sortedKeys(seen)
}

// Labels returns the distinct annotation labels that occur anywhere in the
// full table, in ascending order. The universe is computed from the complete
// table so it does not shrink while other filters change.
func (t Table) Labels() []string {
	seen := make(map[string]bool, 16)
	for _, r := range t {
		for _, a := range r.Annotations {
			seen[a] = true
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
