package bbcode

import "strings"

// Source rebuilds the markup from the sequence of Nodes.
// For any input, Source(Parse(input)) == input.
func Source(nodes []Node) string {
	var b strings.Builder

	for _, n := range nodes {
		b.WriteString(n.Source())
	}

	return b.String()
}
