package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// FilterConfig bundles tuning parameters for picker option narrowing.
type FilterConfig struct {
	MinCoverage float64 // minimal share of the query that must match
	MaxSpread   int     // maximal distance between first and last match index
	MaxResults  int     // upper limit of returned results
}

// narrowOptions returns indices of options matching the query. Substring
// matching is tried first (faster and more predictable), with fuzzy matching
// as fallback. An empty query returns all indices.
func narrowOptions(q string, options []string, cfg FilterConfig) []int {
	q = strings.TrimSpace(strings.ToLower(q))
	base := make([]string, len(options))
	for i, o := range options {
		base[i] = strings.ToLower(o)
	}

	if q == "" {
		idx := make([]int, len(options))
		for i := range options {
			idx[i] = i
		}
		return idx
	}

	if sub := filterBySubstring(q, base, cfg); len(sub) > 0 {
		return sub
	}
	return filterByFuzzy(q, base, cfg)
}

// filterBySubstring performs a simple substring check and returns matching
// indices limited by cfg.MaxResults.
func filterBySubstring(q string, base []string, cfg FilterConfig) []int {
	sub := make([]int, 0, len(base))
	for i, s := range base {
		if strings.Contains(s, q) {
			sub = append(sub, i)
			if len(sub) >= cfg.MaxResults {
				break
			}
		}
	}
	return sub
}

// filterByFuzzy applies fuzzy matching and prunes results based on coverage
// and spread thresholds from cfg.
func filterByFuzzy(q string, base []string, cfg FilterConfig) []int {
	matches := fuzzy.Find(q, base)

	pruned := make([]int, 0, len(matches))
	for _, mt := range matches {
		if matchCoverage(q, mt) < cfg.MinCoverage {
			continue
		}
		if matchSpread(mt) > cfg.MaxSpread {
			continue
		}
		pruned = append(pruned, mt.Index)
		if len(pruned) >= cfg.MaxResults {
			break
		}
	}
	if len(pruned) == 0 {
		for i := 0; i < len(matches) && i < cfg.MaxResults; i++ {
			pruned = append(pruned, matches[i].Index)
		}
	}
	return pruned
}

// matchCoverage returns the ratio of matched characters to the query length.
func matchCoverage(q string, m fuzzy.Match) float64 {
	if len(q) == 0 {
		return 1
	}
	return float64(len(m.MatchedIndexes)) / float64(len(q))
}

// matchSpread returns the distance between the first and last matched index.
func matchSpread(m fuzzy.Match) int {
	if len(m.MatchedIndexes) == 0 {
		return 0
	}
	return m.MatchedIndexes[len(m.MatchedIndexes)-1] - m.MatchedIndexes[0]
}
