// Package bbcode tokenizes bracket markup like "[b]bold[/b]" into a flat sequence of Nodes.
package bbcode

// Parse transforms the input string into the flat sequence of Nodes.
//
// Parse never fails: anything which does not match a tag pattern ends up in a [Text] node.
// At every cursor position an opening tag is tried first, then a closing one; otherwise
// the text up to the nearest tag (or the end of the input) is emitted.
// The empty input produces no Nodes.
//
// Parse keeps no state between calls and is safe for concurrent use.
func Parse(input string) []Node {
	var nodes []Node

	for i := 0; i < len(input); {
		if m, ok := matchOpen(input, i); ok {
			nodes = append(nodes, newTagOpen(input, i, m))
			i += m.width
			continue
		}

		if tag, width, ok := matchClose(input, i); ok {
			nodes = append(nodes, TagClose{
				Tag: tag.Slice(input),
				Raw: NewSpan(i, width),
			})
			i += width
			continue
		}

		// nothing matched at i, so the search can start right after it
		next := findNextTag(input, i+1)
		if next < 0 {
			next = len(input)
		}

		nodes = append(nodes, Text{
			Value: input[i:next],
			Raw:   Span{i, next},
		})
		i = next
	}

	return nodes
}

func newTagOpen(input string, pos int, m openMatch) TagOpen {
	node := TagOpen{
		Tag: m.tag.Slice(input),
		Raw: NewSpan(pos, m.width),
	}

	if m.sep != 0 {
		node.Attribute = m.attr.Slice(input)
		node.HasAttribute = true
		node.Separator = m.sep
	}

	return node
}
