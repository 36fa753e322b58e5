package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomString(t *testing.T) {
	s := RandomString(32)
	require.Len(t, s, 32)
	require.Empty(t, strings.Trim(s, alphabet))

	require.Empty(t, RandomString(0))
}

func TestRandomMarkup(t *testing.T) {
	s := RandomMarkup(3)
	require.Equal(t, 6, strings.Count(s, "["))
	require.Equal(t, 3, strings.Count(s, "[/"))
}

func TestStringToPgxText(t *testing.T) {
	require.False(t, StringToPgxText(nil).Valid)

	s := "  padded title  "
	got := StringToPgxText(&s)
	require.True(t, got.Valid)
	require.Equal(t, "padded title", got.String)
}
