package browse

import (
	"sort"

	"sentence-browser/internal/corpus"
)

// Group is one rendered section: all filtered rows of a single type, ordered
// by sentence id.
type Group struct {
	Type    string
	Records []corpus.Record
}

// GroupByType partitions rows by their type. Groups come back in ascending
// type order and rows within a group in ascending sentence id; rows with
// equal ids keep their source order. Duplicate ids are all kept.
func GroupByType(rows []corpus.Record) []Group {
	byType := make(map[string][]corpus.Record)
	for _, r := range rows {
		byType[r.Type] = append(byType[r.Type], r)
	}

	types := make([]string, 0, len(byType))
	for ty := range byType {
		types = append(types, ty)
	}
	sort.Strings(types)

	groups := make([]Group, 0, len(types))
	for _, ty := range types {
		recs := byType[ty]
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].SentenceID < recs[j].SentenceID
		})
		groups = append(groups, Group{Type: ty, Records: recs})
	}
	return groups
}
