package fuzzy

import (
	"strings"
	"unicode"
)

// Process lowercases s, replaces every rune that is not a letter or digit
// with a space and trims the result.
func Process(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.TrimSpace(mapped)
}
