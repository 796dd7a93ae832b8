package patterns

import (
	"errors"
	"fmt"
	"strings"
)

// Delimiter opens and closes a regex literal such as /foo\d+/i.
const Delimiter = '/'

var errUnterminated = errors.New("unterminated regex literal")

// ParseLiteral splits a delimiter-wrapped expression into its body and flags.
//
// When s starts with Delimiter, the body runs up to the last Delimiter and
// everything after it is the flag string. Any other string has its first and
// last characters stripped and carries no flags, so "'abc'" and "#abc#" both
// yield "abc".
func ParseLiteral(s string) (body, flags string, err error) {
	if strings.HasPrefix(s, string(Delimiter)) {
		i := strings.LastIndexByte(s, Delimiter)
		if i == 0 {
			return "", "", errUnterminated
		}
		return s[1:i], s[i+1:], nil
	}
	r := []rune(s)
	if len(r) < 2 {
		return "", "", nil
	}
	return string(r[1 : len(r)-1]), "", nil
}

// inlineFlags converts literal flag letters into an RE2 inline flag group.
// g, u, v and d do not change first-match results and are accepted as
// no-ops. y is rejected: sticky matching has no RE2 counterpart. Unknown or
// repeated letters are errors.
func inlineFlags(flags string) (string, error) {
	seen := map[rune]bool{}
	var inline strings.Builder
	for _, f := range flags {
		if seen[f] {
			return "", fmt.Errorf("repeated flag %q", f)
		}
		seen[f] = true
		switch f {
		case 'i', 'm', 's':
			inline.WriteRune(f)
		case 'g', 'u', 'v', 'd':
		default:
			return "", fmt.Errorf("invalid flag %q", f)
		}
	}
	if inline.Len() == 0 {
		return "", nil
	}
	return "(?" + inline.String() + ")", nil
}
