package util

import (
	"math/rand/v2"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomString generates a random lowercase string of length n.
func RandomString(n int) string {
	var sb strings.Builder
	sb.Grow(n)

	for range n {
		sb.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}

	return sb.String()
}

// RandomMarkup generates a random bracket markup snippet with n tagged words.
func RandomMarkup(n int) string {
	tags := []string{"b", "i", "u", "s", "code"}

	var sb strings.Builder
	for range n {
		tag := tags[rand.IntN(len(tags))]
		sb.WriteString("[" + tag + "]" + RandomString(6) + "[/" + tag + "] ")
	}

	return sb.String()
}
