package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToUpper converts a string to uppercase using Unicode-aware case mapping.
// A Caser keeps state between calls, so each call gets its own.
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// TrimToUpper removes leading and trailing whitespace and converts to uppercase.
func TrimToUpper(s string) string {
	return ToUpper(strings.TrimSpace(s))
}

// KeepDigits keeps only ASCII digits.
func KeepDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// KeepAlphanumeric keeps only ASCII letters and digits.
func KeepAlphanumeric(s string) string {
	return nonAlphanumericRegex.ReplaceAllString(s, "")
}

// RemoveWhitespace drops every whitespace run, including inner spaces.
func RemoveWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(s, "")
}
