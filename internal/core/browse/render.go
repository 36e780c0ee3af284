package browse

import "strings"

// RenderGroups produces the plain-text form of the grouped view: a heading
// per type, then for each row its annotations joined with ", " followed by
// the sentence text. Annotations keep their stored order. An empty input
// renders to the empty string.
func RenderGroups(groups []Group) string {
	var b strings.Builder
	for gi, g := range groups {
		if gi > 0 {
			b.WriteString("\n")
		}
		b.WriteString(g.Type + "\n")
		for _, r := range g.Records {
			b.WriteString(strings.Join(r.Annotations, ", ") + "\n")
			b.WriteString(r.Text + "\n")
		}
	}
	return b.String()
}
