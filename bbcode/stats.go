package bbcode

// Stats is the summary of a parsed node sequence.
type Stats struct {
	// Nodes is the total count of Nodes.
	Nodes int `json:"nodes"`
	// TextNodes is the count of Text Nodes.
	TextNodes int `json:"text_nodes"`
	// OpenTags is the count of TagOpen Nodes.
	OpenTags int `json:"open_tags"`
	// CloseTags is the count of TagClose Nodes.
	CloseTags int `json:"close_tags"`
	// Attributes is the count of TagOpen Nodes which carry an attribute.
	Attributes int `json:"attributes"`
	// TextLen is the total length in bytes of all Text values.
	TextLen int `json:"text_len"`
}

// Summarize counts the Nodes by kind.
func Summarize(nodes []Node) (s Stats) {
	s.Nodes = len(nodes)

	for _, n := range nodes {
		switch n := n.(type) {
		case Text:
			s.TextNodes++
			s.TextLen += len(n.Value)
		case TagOpen:
			s.OpenTags++
			if n.HasAttribute {
				s.Attributes++
			}
		case TagClose:
			s.CloseTags++
		}
	}

	return
}
