// Package postcode validates postal code input for a billing country.
//
// Two checks run against every field edit. ShouldAccept gates a keystroke:
// it looks at the candidate text (the value after the edit) and admits it
// only when the characters and length fit the country. IsComplete runs on
// the committed value and reports whether it is a well-formed postal code.
//
//	v := postcode.New()
//	v.ShouldAccept(postcode.USA, "9021a") // false: digits only
//	v.IsComplete(postcode.UK, "sw1a 1aa") // true
//
// # Match modes
//
// UK and USA patterns are searched, not anchored to the whole value, so a
// value that merely contains a postal code is reported complete. This is
// the default (MatchContains). New(WithMatchMode(MatchFull)) requires the
// whole value to match instead. Canada always requires exactly six
// characters.
//
// Unknown BillingCountry values use the Other rules: digits only, at most
// eight characters.
package postcode
