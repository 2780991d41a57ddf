package common

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Canonicalize lower-cases s, applies NFKD compatibility decomposition and
// drops every byte that is not an ASCII lower-case letter or digit. The result
// is idempotent: Canonicalize(Canonicalize(s)) == Canonicalize(s).
func Canonicalize(s string) string {
	if s == "" {
		return ""
	}
	decomposed := norm.NFKD.String(strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(decomposed))
	for i := 0; i < len(decomposed); i++ {
		c := decomposed[i]
		if ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FindAll returns the start offset of every non-overlapping occurrence of sub
// in text, scanning forward and resuming right after each hit.
func FindAll(text, sub string) []int {
	if sub == "" || len(sub) > len(text) {
		return nil
	}

	var offsets []int
	for start := 0; start <= len(text)-len(sub); {
		i := strings.Index(text[start:], sub)
		if i < 0 {
			break
		}
		offsets = append(offsets, start+i)
		start += i + len(sub)
	}
	return offsets
}
