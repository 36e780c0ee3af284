package ui

import (
	"strings"

	"sentence-browser/internal/core/browse"
)

// styleGroups renders the grouped view for the results pane: a styled type
// heading per group, then for each row its annotations in bold followed by
// the sentence text. Annotations keep their stored order.
func styleGroups(groups []browse.Group) string {
	if len(groups) == 0 {
		return subtleStyle.Render("no sentences match the current filters")
	}

	var b strings.Builder
	for gi, g := range groups {
		if gi > 0 {
			b.WriteString("\n")
		}
		b.WriteString(headingStyle.Render(g.Type) + "\n")
		for _, r := range g.Records {
			b.WriteString(labelRowStyle.Render(strings.Join(r.Annotations, ", ")) + "\n")
			b.WriteString(r.Text + "\n")
		}
	}
	return b.String()
}
