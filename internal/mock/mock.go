// Package mock produces the alternating-case "mocking" echo of a message.
package mock

import (
	"math/rand/v2"
	"strings"
	"unicode"
)

// String flips the case of each letter in s with probability one half.
func String(s string, r *rand.Rand) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, ch := range s {
		if r.IntN(2) == 0 {
			if unicode.IsUpper(ch) {
				ch = unicode.ToLower(ch)
			} else {
				ch = unicode.ToUpper(ch)
			}
		}
		b.WriteRune(ch)
	}
	return b.String()
}
