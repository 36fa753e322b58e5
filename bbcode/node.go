package bbcode

// Kind defines the semantic kind of a Node.
type Kind int

const (
	KindText Kind = iota
	KindTagOpen
	KindTagClose

	// NumKinds is the total number of Node kinds. Should be placed as last const.
	NumKinds
)

var kindToString = [NumKinds]string{
	KindText:     "text",
	KindTagOpen:  "tagstart",
	KindTagClose: "tagend",
}

// String returns the wire name of the Kind: "text", "tagstart" or "tagend".
func (k Kind) String() string {
	if k < 0 || k >= NumKinds {
		return "unknown"
	}
	return kindToString[k]
}

// Node is a single element of the parsed markup.
//
// The set of implementations is closed: [Text], [TagOpen] and [TagClose].
// Nodes form a flat annotation stream, not a tree, so a TagClose may appear
// without a matching TagOpen and vice versa.
type Node interface {
	// Kind reports which of the three cases the Node is.
	Kind() Kind

	// Span returns the bytes of the input the Node was produced from.
	Span() Span

	// Source rebuilds the markup the Node was produced from.
	Source() string

	node()
}

// Text is a literal run of the input which did not match any tag pattern.
type Text struct {
	Value string
	Raw   Span
}

func (n Text) Kind() Kind     { return KindText }
func (n Text) Span() Span     { return n.Raw }
func (n Text) Source() string { return n.Value }
func (Text) node()            {}

// TagOpen is an opening tag like "[b]", "[color=red]" or "[size 12]".
type TagOpen struct {
	// Tag is the tag name taken verbatim from the input.
	Tag string

	// Attribute is the single optional token after the tag name.
	// It is meaningful only when HasAttribute is true.
	Attribute string

	HasAttribute bool

	// Separator is the byte between the tag name and the attribute, either '=' or ' '.
	// It is 0 when the tag has no attribute.
	Separator byte

	Raw Span
}

func (n TagOpen) Kind() Kind { return KindTagOpen }
func (n TagOpen) Span() Span { return n.Raw }

func (n TagOpen) Source() string {
	if !n.HasAttribute {
		return "[" + n.Tag + "]"
	}
	return "[" + n.Tag + string(n.Separator) + n.Attribute + "]"
}

func (TagOpen) node() {}

// Attr returns the attribute and whether it was present in the input.
func (n TagOpen) Attr() (string, bool) {
	return n.Attribute, n.HasAttribute
}

// TagClose is a closing tag like "[/b]".
type TagClose struct {
	Tag string
	Raw Span
}

func (n TagClose) Kind() Kind     { return KindTagClose }
func (n TagClose) Span() Span     { return n.Raw }
func (n TagClose) Source() string { return "[/" + n.Tag + "]" }
func (TagClose) node()            {}
