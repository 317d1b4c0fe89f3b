package sanitizer

import "strings"

// NormalizePostalCode creates consistent format for storage and comparison:
// trimmed, without inner whitespace, uppercased.
func NormalizePostalCode(postalCode string) string {
	return normalizePostalCode(postalCode)
}

var normalizePostalCode = Compose(RemoveWhitespace, ToUpper)

// FormatPostalCodeUK splits the outward and inward code with a single space
// (SW1A1AA -> SW1A 1AA); preserves input that is too short to split.
func FormatPostalCodeUK(postalCode string) string {
	code := []rune(NormalizePostalCode(postalCode))

	// Inward code is always three characters, outward code two to four.
	if len(code) < 5 || len(code) > 7 {
		return postalCode
	}

	return string(code[:len(code)-3]) + " " + string(code[len(code)-3:])
}

// FormatPostalCodeUS handles both ZIP and ZIP+4 formats; preserves invalid input.
func FormatPostalCodeUS(postalCode string) string {
	digits := KeepDigits(postalCode)

	switch len(digits) {
	case 5:
		return digits
	case 9:
		return digits[0:5] + "-" + digits[5:9]
	default:
		return postalCode
	}
}

// FormatPostalCodeCA enforces standard Canadian format (A1A 1A1); preserves invalid input.
func FormatPostalCodeCA(postalCode string) string {
	code := []rune(NormalizePostalCode(postalCode))

	if len(code) != 6 {
		return postalCode
	}

	return string(code[:3]) + " " + string(code[3:])
}

// MaskString preserves start/end characters for user recognition while hiding sensitive middle.
// Handles Unicode properly and prevents over-masking short strings.
func MaskString(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 1
	}

	runes := []rune(s)
	length := len(runes)

	if length <= visibleChars*2 {
		return strings.Repeat("*", length)
	}

	start := string(runes[:visibleChars])
	end := string(runes[length-visibleChars:])

	return start + strings.Repeat("*", length-visibleChars*2) + end
}

// MaskSecurityCode hides every character of a card security code.
// PCI DSS forbids displaying or logging the code, so nothing stays visible.
func MaskSecurityCode(code string) string {
	return strings.Repeat("*", len([]rune(code)))
}
