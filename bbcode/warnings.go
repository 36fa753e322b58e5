package bbcode

import (
	"cmp"
	"slices"
	"strconv"
)

// Issue defines types of problems Check can find in a node sequence.
type Issue int

const (
	// IssueUnclosedTag means that an opening tag has no closing counterpart after it.
	IssueUnclosedTag Issue = iota

	// IssueMisplacedClosingTag means that a closing tag has no opening counterpart before it.
	IssueMisplacedClosingTag

	// NumIssues is the total number of Issues. Should be placed as last const.
	NumIssues
)

var issueToName = [NumIssues]string{
	IssueUnclosedTag:         "Unclosed Tag",
	IssueMisplacedClosingTag: "Misplaced Closing Tag",
}

// String returns a human-readable name of the Issue.
func (i Issue) String() string {
	if i < 0 || i >= NumIssues {
		return "Unknown Issue"
	}
	return issueToName[i]
}

// Warning describes an unbalanced tag found by Check.
type Warning struct {
	// Issue defines the type of the problem.
	Issue Issue

	// Pos defines the byte position in the input string at which the problem occured.
	Pos int

	// NodeIdx is the index of the offending Node in the checked sequence.
	NodeIdx int

	// Description is a human-readable story of what went wrong.
	Description string
}

// Check reports the tags of the sequence which have no counterpart.
//
// Parse does not balance tags, so Check is an informational pass for callers who care:
// a closing tag pairs with the nearest preceding unpaired opening tag of the same name
// (names are case-sensitive). The Warnings are ordered by position.
func Check(nodes []Node) []Warning {
	var (
		warns []Warning
		stack []int
	)

	for i, n := range nodes {
		switch n := n.(type) {
		case TagOpen:
			stack = append(stack, i)

		case TagClose:
			k := lastOpenNamed(nodes, stack, n.Tag)
			if k < 0 {
				warns = append(warns, Warning{
					Issue:   IssueMisplacedClosingTag,
					Pos:     n.Raw.Start,
					NodeIdx: i,
					Description: "closing tag " + strconv.Quote(n.Tag) +
						" has no opening counterpart before it.",
				})
				continue
			}
			stack = slices.Delete(stack, k, k+1)
		}
	}

	for _, idx := range stack {
		open := nodes[idx].(TagOpen)
		warns = append(warns, Warning{
			Issue:   IssueUnclosedTag,
			Pos:     open.Raw.Start,
			NodeIdx: idx,
			Description: "opening tag " + strconv.Quote(open.Tag) +
				" is never closed.",
		})
	}

	slices.SortFunc(warns, func(a, b Warning) int {
		return cmp.Compare(a.Pos, b.Pos)
	})

	return warns
}

// lastOpenNamed returns the position in stack of the topmost opening tag with the given name, or -1.
func lastOpenNamed(nodes []Node, stack []int, tag string) int {
	for k := len(stack) - 1; k >= 0; k-- {
		if nodes[stack[k]].(TagOpen).Tag == tag {
			return k
		}
	}
	return -1
}
