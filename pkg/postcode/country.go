package postcode

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// BillingCountry selects the postal code rules applied to a field.
// The zero value is UK.
type BillingCountry int

const (
	UK BillingCountry = iota
	USA
	Canada
	Other
)

var countryNames = [...]string{
	UK:     "UK",
	USA:    "USA",
	Canada: "Canada",
	Other:  "Other",
}

var (
	regionGB = language.MustParseRegion("GB")
	regionUS = language.MustParseRegion("US")
	regionCA = language.MustParseRegion("CA")
)

// Countries returns every supported billing country in declaration order.
func Countries() []BillingCountry {
	return []BillingCountry{UK, USA, Canada, Other}
}

func (c BillingCountry) String() string {
	if c.valid() {
		return countryNames[c]
	}
	return fmt.Sprintf("BillingCountry(%d)", int(c))
}

func (c BillingCountry) valid() bool {
	return c >= UK && c <= Other
}

// MarshalText implements encoding.TextMarshaler.
func (c BillingCountry) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseBillingCountry.
func (c *BillingCountry) UnmarshalText(text []byte) error {
	parsed, err := ParseBillingCountry(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseBillingCountry maps a variant name ("UK", "usa", "Canada", "other") or
// an ISO 3166-1 region code (alpha-2, alpha-3 or numeric) to a BillingCountry.
// Valid regions without dedicated rules map to Other.
func ParseBillingCountry(s string) (BillingCountry, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Other, fmt.Errorf("%w: empty value", ErrUnknownCountry)
	}

	// "UK" is an exceptionally reserved code, not a region x/text resolves.
	switch strings.ToLower(s) {
	case "uk", "united kingdom", "great britain":
		return UK, nil
	case "united states":
		return USA, nil
	case "canada":
		return Canada, nil
	case "other":
		return Other, nil
	}

	region, err := language.ParseRegion(s)
	if err != nil {
		return Other, fmt.Errorf("%w: %q", ErrUnknownCountry, s)
	}

	switch region {
	case regionGB:
		return UK, nil
	case regionUS:
		return USA, nil
	case regionCA:
		return Canada, nil
	default:
		return Other, nil
	}
}

// Keyboard is the character class an input should offer for a country.
type Keyboard int

const (
	KeyboardAlphanumeric Keyboard = iota
	KeyboardNumeric
)

func (k Keyboard) String() string {
	if k == KeyboardNumeric {
		return "numeric"
	}
	return "alphanumeric"
}
