package bbcode

import "strings"

const (
	bracketOpen  = '['
	bracketClose = ']'
	closeMarker  = '/'
	attrEquals   = '='
	attrSpace    = ' '
)

// isWordChar returns true for ASCII letters, digits and the underscore.
func isWordChar(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

// skipWord returns the index of the first non-word byte at or after i.
func skipWord(input string, i int) int {
	for i < len(input) && isWordChar(input[i]) {
		i++
	}
	return i
}

// openMatch describes the opening tag found at some position of the input.
type openMatch struct {
	// width is the count of bytes of the whole "[tag=attr]" sequence.
	width int
	tag   Span
	attr  Span
	sep   byte
}

// matchOpen checks whether the opening tag pattern starts exactly at i:
//
//	'[' word+ ( ('=' | ' ') word+ )? ']'
func matchOpen(input string, i int) (openMatch, bool) {
	n := len(input)
	if i >= n || input[i] != bracketOpen {
		return openMatch{}, false
	}

	tagEnd := skipWord(input, i+1)
	if tagEnd == i+1 || tagEnd >= n {
		return openMatch{}, false
	}

	switch input[tagEnd] {
	case bracketClose:
		return openMatch{
			width: tagEnd + 1 - i,
			tag:   Span{i + 1, tagEnd},
		}, true

	case attrEquals, attrSpace:
		attrEnd := skipWord(input, tagEnd+1)
		if attrEnd == tagEnd+1 || attrEnd >= n || input[attrEnd] != bracketClose {
			return openMatch{}, false
		}

		return openMatch{
			width: attrEnd + 1 - i,
			tag:   Span{i + 1, tagEnd},
			attr:  Span{tagEnd + 1, attrEnd},
			sep:   input[tagEnd],
		}, true
	}

	return openMatch{}, false
}

// matchClose checks whether the closing tag pattern starts exactly at i:
//
//	'[' '/' word+ ']'
//
// It returns the tag name bounds and the width of the whole sequence.
func matchClose(input string, i int) (tag Span, width int, ok bool) {
	n := len(input)
	if i+1 >= n || input[i] != bracketOpen || input[i+1] != closeMarker {
		return Span{}, 0, false
	}

	tagEnd := skipWord(input, i+2)
	if tagEnd == i+2 || tagEnd >= n || input[tagEnd] != bracketClose {
		return Span{}, 0, false
	}

	return Span{i + 2, tagEnd}, tagEnd + 1 - i, true
}

// findNextTag returns the smallest index at or after from where either tag pattern matches,
// or -1 if the rest of the input has no markup.
//
// Both patterns start with '[', so the nearest of the two matches is the first '['
// at which either one of them succeeds.
func findNextTag(input string, from int) int {
	for from < len(input) {
		k := strings.IndexByte(input[from:], bracketOpen)
		if k < 0 {
			return -1
		}
		from += k

		if _, ok := matchOpen(input, from); ok {
			return from
		}

		if _, _, ok := matchClose(input, from); ok {
			return from
		}

		from++
	}

	return -1
}
