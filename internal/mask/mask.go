// Package mask redacts matched secrets for display and persistence.
package mask

import "strings"

// Char is the character used in place of hidden content.
const Char = '*'

// Placeholder is returned for values too short to partially reveal.
const Placeholder = "****"

// Value keeps the first and last character of s and replaces everything in
// between with Char, so only length and boundary characters survive. Values of
// four characters or fewer are replaced by Placeholder. Length is counted in
// runes.
func Value(s string) string {
	r := []rune(s)
	if len(r) <= 4 {
		return Placeholder
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(r[0])
	b.WriteString(strings.Repeat(string(Char), len(r)-2))
	b.WriteRune(r[len(r)-1])
	return b.String()
}
