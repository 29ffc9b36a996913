package utils

import "strings"

// NormalizeWord trims surrounding whitespace and lower-cases a dictionary line.
func NormalizeWord(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}
