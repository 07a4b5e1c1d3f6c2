// Package format holds text helpers for presenting cipher text.
package format

import (
	"strings"
)

// GroupSize is the conventional radiogram group length.
const GroupSize = 5

// Letters uppercases s and keeps only A-Z.
func Letters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToUpper(s) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// GroupLetters uppercases s, drops everything but A-Z and splits the result
// into groups of five separated by single spaces.
func GroupLetters(s string) string {
	return GroupBy(Letters(s), GroupSize, ' ')
}

// GroupBy splits s into chunks of n bytes joined by sep. The last chunk may
// be shorter. n <= 0 returns s unchanged.
func GroupBy(s string, n int, sep byte) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/n)
	for i := 0; i < len(s); i += n {
		if i > 0 {
			b.WriteByte(sep)
		}
		end := i + n
		if end > len(s) {
			end = len(s)
		}
		b.WriteString(s[i:end])
	}
	return b.String()
}
