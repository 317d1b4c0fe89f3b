package validator

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/payinput/pkg/cardnetwork"
	"github.com/dmitrymomot/payinput/pkg/postcode"
	"github.com/dmitrymomot/payinput/pkg/sanitizer"
	"github.com/dmitrymomot/payinput/pkg/securitycode"
)

// ValidPostcode validates a submitted postal code for country with the
// default (contains) matching. Keystroke limits are not applied and the
// value is also tried with whitespace removed, so formatted values such as
// "SW1A 1AA" and "K1A 0B1" pass.
func ValidPostcode(field string, country postcode.BillingCountry, value string) Rule {
	return ValidPostcodeWith(field, postcode.New(), country, value)
}

// ValidPostcodeWith validates a submitted postal code using v, e.g. a
// validator in postcode.MatchFull mode for stricter server-side checks.
func ValidPostcodeWith(field string, v *postcode.Validator, country postcode.BillingCountry, value string) Rule {
	return Rule{
		Check: func() bool {
			// "GIR 0AA" needs its space; "K1A 0B1" must lose it.
			return v.IsComplete(country, strings.TrimSpace(value)) ||
				v.IsComplete(country, sanitizer.NormalizePostalCode(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("invalid %s", strings.ToLower(postcode.Title(country))),
			TranslationKey: "validation.postcode",
			TranslationValues: map[string]any{
				"field":   field,
				"country": country.String(),
			},
		},
	}
}

// ValidSecurityCode validates that a submitted security code is all digits
// and exactly as long as the network requires.
func ValidSecurityCode(field string, network cardnetwork.Network, value string) Rule {
	length := securitycode.RequiredLength(network)
	return Rule{
		Check: func() bool {
			return value != "" &&
				securitycode.ShouldAccept(network, value) &&
				securitycode.IsComplete(network, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be %d digits", securitycode.Title(network), length),
			TranslationKey: "validation.security_code",
			TranslationValues: map[string]any{
				"field":   field,
				"network": network.String(),
				"length":  length,
			},
		},
	}
}

// ValidCardNumber validates a card number using the Luhn algorithm.
// Spaces and dashes are ignored.
func ValidCardNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			cleaned := strings.NewReplacer(" ", "", "-", "").Replace(value)

			if cleaned == "" || sanitizer.KeepDigits(cleaned) != cleaned {
				return false
			}

			if len(cleaned) < 13 || len(cleaned) > 19 {
				return false
			}

			return luhn(cleaned)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid card number",
			TranslationKey: "validation.card_number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// CardNumberMatchesNetwork validates that the number belongs to network,
// catching a brand picker that disagrees with the number typed.
func CardNumberMatchesNetwork(field, value string, network cardnetwork.Network) Rule {
	return Rule{
		Check: func() bool {
			return cardnetwork.Detect(value) == network
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("card number is not a %s card", network),
			TranslationKey: "validation.card_network",
			TranslationValues: map[string]any{
				"field":   field,
				"network": network.String(),
			},
		},
	}
}

// luhn expects a string of ASCII digits.
func luhn(digits string) bool {
	sum := 0
	double := false

	// Process digits from right to left
	for i := len(digits) - 1; i >= 0; i-- {
		digit := int(digits[i] - '0')

		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		double = !double
	}

	return sum%10 == 0
}
