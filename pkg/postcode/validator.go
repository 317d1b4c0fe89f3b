package postcode

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/payinput/pkg/sanitizer"
)

// MatchMode controls how country patterns are applied to a complete value.
type MatchMode int

const (
	// MatchContains reports a value complete when a valid postal code appears
	// anywhere in it. "XSW1A 1AA9" is complete for UK in this mode.
	MatchContains MatchMode = iota
	// MatchFull requires the entire value to be a postal code.
	MatchFull
)

func (m MatchMode) String() string {
	switch m {
	case MatchContains:
		return "contains"
	case MatchFull:
		return "full"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// ParseMatchMode accepts "contains" (alias "substring") and "full" (alias "strict").
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "contains", "substring", "":
		return MatchContains, nil
	case "full", "strict":
		return MatchFull, nil
	default:
		return MatchContains, fmt.Errorf("%w: %q", ErrInvalidMatchMode, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseMatchMode.
func (m *MatchMode) UnmarshalText(text []byte) error {
	parsed, err := ParseMatchMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Option configures a Validator.
type Option func(*Validator)

// WithMatchMode selects how complete values are matched.
// Panics for unknown modes: misconfiguration should prevent startup.
func WithMatchMode(m MatchMode) Option {
	return func(v *Validator) {
		switch m {
		case MatchContains, MatchFull:
			v.mode = m
		default:
			panic(fmt.Errorf("%w: %s", ErrInvalidMatchMode, m))
		}
	}
}

// Validator checks postal code input for a billing country.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	mode MatchMode
}

// New creates a Validator. Without options it uses MatchContains.
func New(opts ...Option) *Validator {
	v := &Validator{mode: MatchContains}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Mode returns the match mode used by IsComplete.
func (v *Validator) Mode() MatchMode {
	return v.mode
}

// ShouldAccept reports whether candidate, the text a pending edit would
// produce, may replace the current value. Empty text is always accepted.
func (v *Validator) ShouldAccept(country BillingCountry, candidate string) bool {
	return ruleFor(country).accepts(candidate)
}

// IsComplete reports whether text is a well-formed postal code for country.
// Text is upper-cased before matching.
func (v *Validator) IsComplete(country BillingCountry, text string) bool {
	return ruleFor(country).complete(sanitizer.ToUpper(text), v.mode)
}

// For binds the validator to a country.
func (v *Validator) For(country BillingCountry) Checker {
	return Checker{validator: v, country: country}
}

// Checker is a Validator bound to one billing country.
type Checker struct {
	validator *Validator
	country   BillingCountry
}

// Country returns the bound billing country.
func (c Checker) Country() BillingCountry {
	return c.country
}

// String returns the country name, used as the field classification.
func (c Checker) String() string {
	return c.country.String()
}

// ShouldAccept applies Validator.ShouldAccept for the bound country.
func (c Checker) ShouldAccept(candidate string) bool {
	return c.validator.ShouldAccept(c.country, candidate)
}

// IsComplete applies Validator.IsComplete for the bound country.
func (c Checker) IsComplete(text string) bool {
	return c.validator.IsComplete(c.country, text)
}

var defaultValidator = New()

// ShouldAccept uses a Validator in MatchContains mode.
func ShouldAccept(country BillingCountry, candidate string) bool {
	return defaultValidator.ShouldAccept(country, candidate)
}

// IsComplete uses a Validator in MatchContains mode.
func IsComplete(country BillingCountry, text string) bool {
	return defaultValidator.IsComplete(country, text)
}

// Title returns the label shown next to the field.
func Title(country BillingCountry) string {
	return ruleFor(country).title
}

// KeyboardFor returns the keyboard class the field should present.
func KeyboardFor(country BillingCountry) Keyboard {
	return ruleFor(country).keyboard
}

// MaxLength returns the longest text ShouldAccept lets through.
func MaxLength(country BillingCountry) int {
	return ruleFor(country).maxLen
}

// Format renders a postal code the way it is printed for the country.
// Values that do not fit the country's layout are returned unchanged.
func Format(country BillingCountry, text string) string {
	switch country {
	case UK:
		return sanitizer.FormatPostalCodeUK(text)
	case USA:
		return sanitizer.FormatPostalCodeUS(text)
	case Canada:
		return sanitizer.FormatPostalCodeCA(text)
	default:
		return text
	}
}
