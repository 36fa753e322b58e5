package bbcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchOpen(t *testing.T) {
	type tc struct {
		name   string
		input  string
		pos    int
		wantOK bool
		want   openMatch
	}

	tests := []tc{
		{
			name:   "bare_tag",
			input:  "[b]",
			wantOK: true,
			want:   openMatch{width: 3, tag: Span{1, 2}},
		},
		{
			name:   "equals_attr",
			input:  "[color=red]",
			wantOK: true,
			want:   openMatch{width: 11, tag: Span{1, 6}, attr: Span{7, 10}, sep: '='},
		},
		{
			name:   "space_attr",
			input:  "[size 12]",
			wantOK: true,
			want:   openMatch{width: 9, tag: Span{1, 5}, attr: Span{6, 8}, sep: ' '},
		},
		{
			name:   "at_offset",
			input:  "ab[i]",
			pos:    2,
			wantOK: true,
			want:   openMatch{width: 3, tag: Span{3, 4}},
		},
		{
			name:  "not_anchored",
			input: "ab[i]",
			pos:   0,
		},
		{
			name:  "closing_tag",
			input: "[/b]",
		},
		{
			name:  "unterminated",
			input: "[b",
		},
		{
			name:  "unterminated_attr",
			input: "[b=c",
		},
		{
			name:  "empty_attr",
			input: "[b=]",
		},
		{
			name:  "pos_past_end",
			input: "[b]",
			pos:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matchOpen(tt.input, tt.pos)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMatchClose(t *testing.T) {
	type tc struct {
		name      string
		input     string
		pos       int
		wantOK    bool
		wantTag   Span
		wantWidth int
	}

	tests := []tc{
		{
			name:      "simple",
			input:     "[/b]",
			wantOK:    true,
			wantTag:   Span{2, 3},
			wantWidth: 4,
		},
		{
			name:      "at_offset",
			input:     "xx[/url]",
			pos:       2,
			wantOK:    true,
			wantTag:   Span{4, 7},
			wantWidth: 6,
		},
		{
			name:  "opening_tag",
			input: "[b]",
		},
		{
			name:  "attribute_not_allowed",
			input: "[/b=c]",
		},
		{
			name:  "empty_name",
			input: "[/]",
		},
		{
			name:  "unterminated",
			input: "[/b",
		},
		{
			name:  "only_bracket",
			input: "[",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, width, ok := matchClose(tt.input, tt.pos)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantTag, tag)
			require.Equal(t, tt.wantWidth, width)
		})
	}
}

func TestFindNextTag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		from  int
		want  int
	}{
		{"no_brackets", "plain", 0, -1},
		{"open_first", "ab[b]c[/b]", 0, 2},
		{"close_first", "ab[/b]c[b]", 0, 2},
		{"skips_broken", "[a-b] [b]", 0, 6},
		{"skips_before_from", "[b]x[i]", 1, 4},
		{"nested_bracket", "[[b]]", 1, 1},
		{"only_broken", "[[]] [x-y]", 0, -1},
		{"from_at_end", "[b]", 3, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, findNextTag(tt.input, tt.from))
		})
	}
}

func TestIsWordChar(t *testing.T) {
	for _, b := range []byte("azAZ09_") {
		require.True(t, isWordChar(b), "%q", b)
	}

	for _, b := range []byte("-=/ []\n\t.\xc3") {
		require.False(t, isWordChar(b), "%q", b)
	}
}
