package postcode_test

import (
	"math/rand/v2"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/payinput/pkg/postcode"
)

const fuzzAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ -_!@#.,/"

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isAlnum(s string) bool {
	for _, r := range s {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// expectedAccept mirrors the documented acceptance rules independently.
func expectedAccept(country postcode.BillingCountry, s string) bool {
	if s == "" {
		return true
	}
	n := utf8.RuneCountInString(s)
	switch country {
	case postcode.UK:
		return isAlnum(s) && n <= 8
	case postcode.Canada:
		return isAlnum(s) && n <= 6
	case postcode.USA:
		return isDigits(s) && n <= 5
	default:
		return isDigits(s) && n <= 8
	}
}

func TestShouldAcceptRandomStrings(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(20240601, 7))
	for range 5000 {
		b := make([]byte, rng.IntN(13))
		for i := range b {
			b[i] = fuzzAlphabet[rng.IntN(len(fuzzAlphabet))]
		}
		s := string(b)

		for _, country := range postcode.Countries() {
			assert.Equal(t, expectedAccept(country, s), postcode.ShouldAccept(country, s), "country %s, input %q", country, s)
		}
	}
}

func FuzzShouldAccept(f *testing.F) {
	for _, seed := range []string{"", "SW1A1AA", "90210", "K1A0B1", "12345678", "a b", "ÅÄÖ", "９"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		for _, country := range postcode.Countries() {
			if got := postcode.ShouldAccept(country, s); got != expectedAccept(country, s) {
				t.Fatalf("ShouldAccept(%s, %q) = %v", country, s, got)
			}
		}
	})
}
