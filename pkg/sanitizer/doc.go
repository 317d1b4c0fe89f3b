// Package sanitizer provides small helpers for cleaning and presenting
// payment-form input: case folding, character filtering, postal code
// formatting and masking of sensitive values before they are logged or
// rendered.
//
// All helpers are stateless and safe for concurrent use.
//
//	code := sanitizer.FormatPostalCodeUK("sw1a1aa") // "SW1A 1AA"
//	cvv := sanitizer.MaskSecurityCode("1234")       // "****"
package sanitizer
