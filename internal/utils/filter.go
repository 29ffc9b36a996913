package utils

import (
	"strings"
	"unicode"
)

// wordPunct are the non-letter runes a prefix may still contain
const wordPunct = " _-./'"

// IsValidInput reports whether a prefix is worth a lookup. Empty input,
// digit-only input, runes outside letters, digits and wordPunct, and a single
// rune repeated three or more times are all rejected.
func IsValidInput(s string) bool {
	if s == "" {
		return false
	}

	var (
		first     rune
		count     int
		allDigits = true
		allSame   = true
	)
	for _, r := range s {
		if count == 0 {
			first = r
		} else if r != first {
			allSame = false
		}
		count++

		isDigit := unicode.IsDigit(r)
		if !isDigit {
			allDigits = false
		}
		if !isDigit && !unicode.IsLetter(r) && !strings.ContainsRune(wordPunct, r) {
			return false
		}
	}
	return !allDigits && !(allSame && count > 2)
}
