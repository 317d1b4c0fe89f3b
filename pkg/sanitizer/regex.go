package sanitizer

import "regexp"

var (
	// Matches anything that is not a decimal digit.
	nonDigitRegex = regexp.MustCompile(`\D`)

	// Matches anything outside the ASCII alphanumeric range.
	nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)

	whitespaceRegex = regexp.MustCompile(`\s+`)
)
