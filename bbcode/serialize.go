package bbcode

// SerializableNode is the language-agnostic shape of a Node, e.g. for JSON consumers.
//
// Kind is one of "text", "tagstart" or "tagend". Value is the text content or the tag name.
// Attribute is nil for every Node except a TagOpen carrying an attribute.
type SerializableNode struct {
	Kind      string  `json:"kind"`
	Value     string  `json:"value"`
	Attribute *string `json:"attribute"`
	Separator string  `json:"separator,omitempty"`
	Start     int     `json:"start"`
	End       int     `json:"end"`
}

// SerializableWarning is a serializable human-readable description of the Warning.
type SerializableWarning struct {
	Issue       string `json:"issue"`
	ByteIdx     int    `json:"byte_idx"`
	NodeIdx     int    `json:"node_idx"`
	Description string `json:"description"`
}

// Serialize converts the Nodes into their serializable form.
// The result is never nil, so it encodes as a JSON array even for the empty input.
func Serialize(nodes []Node) []SerializableNode {
	out := make([]SerializableNode, len(nodes))

	for i, n := range nodes {
		span := n.Span()
		sn := SerializableNode{
			Kind:  n.Kind().String(),
			Start: span.Start,
			End:   span.End,
		}

		switch n := n.(type) {
		case Text:
			sn.Value = n.Value
		case TagOpen:
			sn.Value = n.Tag
			if n.HasAttribute {
				attr := n.Attribute
				sn.Attribute = &attr
				sn.Separator = string(n.Separator)
			}
		case TagClose:
			sn.Value = n.Tag
		}

		out[i] = sn
	}

	return out
}

// SerializeWarnings converts the Warnings into their serializable form.
func SerializeWarnings(warns []Warning) []SerializableWarning {
	out := make([]SerializableWarning, len(warns))

	for i, w := range warns {
		out[i] = SerializableWarning{
			Issue:       w.Issue.String(),
			ByteIdx:     w.Pos,
			NodeIdx:     w.NodeIdx,
			Description: w.Description,
		}
	}

	return out
}
