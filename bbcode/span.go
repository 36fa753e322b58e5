package bbcode

// Span defines bounds of the window view of a string.
type Span struct {
	// Start defines the inclusive start of the view.
	Start int `json:"start"`

	// End defines the exclusive end of the view.
	End int `json:"end"`
}

// NewSpan creates new Span from the startIdx and the width.
// End index is calculated as startIdx + width.
func NewSpan(startIdx int, width int) Span {
	return Span{startIdx, startIdx + width}
}

// Len returns the number of bytes covered by the Span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Slice returns the part of the input covered by the Span.
func (s Span) Slice(input string) string {
	return input[s.Start:s.End]
}
