package bbcode

import (
	"strings"
	"testing"
)

func BenchmarkParse(b *testing.B) {
	input := "Hello [b]world[/b] this is [color=red]red text[/color] and [size 12]big[/size]"

	for i := 0; i < b.N; i++ {
		Parse(input)
	}
}

func BenchmarkParse_LongInput(b *testing.B) {
	input := strings.Repeat("Hello [b]world[/b] with [url=home]a link[/url] end. ", 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Parse(input)
	}
}

func BenchmarkParse_UnmatchedBrackets(b *testing.B) {
	input := strings.Repeat("[[a-b] [", 200) + "[b]"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Parse(input)
	}
}

func BenchmarkSerialize(b *testing.B) {
	nodes := Parse("Hello [b]world[/b] this is [color=red]red text[/color] and [size 12]big[/size]")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Serialize(nodes)
	}
}
