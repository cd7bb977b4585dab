package bookstore

import (
	"strings"
	"unicode/utf8"
)

// asciiWhitespace is the set classified as whitespace by C's isspace in the "C" locale.
const asciiWhitespace = " \t\n\v\f\r"

// Trim returns text without leading and trailing ASCII whitespace.
// Empty or whitespace-only input yields the empty string, so Trim(Trim(s)) == Trim(s).
func Trim(text string) string {
	return strings.Trim(text, asciiWhitespace)
}

// truncate cuts text down to limit runes and reports whether anything was cut.
func truncate(text string, limit int) (string, bool) {
	if utf8.RuneCountInString(text) <= limit {
		return text, false
	}

	runes := []rune(text)

	return string(runes[:limit]), true
}
