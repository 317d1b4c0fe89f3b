package securitycode_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/payinput/pkg/cardnetwork"
	"github.com/dmitrymomot/payinput/pkg/securitycode"
)

func TestRequiredLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, securitycode.RequiredLength(cardnetwork.AMEX))
	assert.Equal(t, 3, securitycode.RequiredLength(cardnetwork.Visa))
	assert.Equal(t, 3, securitycode.RequiredLength(cardnetwork.Unknown))
	assert.Equal(t, 3, securitycode.RequiredLength(cardnetwork.Network(77)))

	for _, n := range cardnetwork.All() {
		if n == cardnetwork.AMEX {
			continue
		}
		assert.Equal(t, securitycode.DefaultLength, securitycode.RequiredLength(n), "network %s", n)
	}
}

func TestShouldAccept(t *testing.T) {
	t.Parallel()

	t.Run("empty candidate is always accepted", func(t *testing.T) {
		for _, n := range cardnetwork.All() {
			assert.True(t, securitycode.ShouldAccept(n, ""), "network %s", n)
		}
	})

	tests := []struct {
		name      string
		network   cardnetwork.Network
		candidate string
		expected  bool
	}{
		{"visa three digits", cardnetwork.Visa, "123", true},
		{"visa partial", cardnetwork.Visa, "1", true},
		{"visa four digits", cardnetwork.Visa, "1234", false},
		{"amex four digits", cardnetwork.AMEX, "1234", true},
		{"amex five digits", cardnetwork.AMEX, "12345", false},
		{"letters", cardnetwork.Visa, "12a", false},
		{"space", cardnetwork.MasterCard, "1 2", false},
		{"unknown network", cardnetwork.Unknown, "999", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, securitycode.ShouldAccept(tt.network, tt.candidate))
		})
	}
}

func TestShouldAcceptNeverExceedsRequiredLength(t *testing.T) {
	t.Parallel()

	for _, n := range cardnetwork.All() {
		length := securitycode.RequiredLength(n)
		assert.True(t, securitycode.ShouldAccept(n, strings.Repeat("7", length)))
		assert.False(t, securitycode.ShouldAccept(n, strings.Repeat("7", length+1)))
	}
}

func TestShouldAcceptRandomStrings(t *testing.T) {
	t.Parallel()

	const alphabet = "0123456789abcXYZ -#/"
	rng := rand.New(rand.NewPCG(3, 11))

	for range 2000 {
		b := make([]byte, rng.IntN(13))
		for i := range b {
			b[i] = alphabet[rng.IntN(len(alphabet))]
		}
		s := string(b)

		for _, n := range []cardnetwork.Network{cardnetwork.Visa, cardnetwork.AMEX} {
			digits := strings.Trim(s, "0123456789") == ""
			expected := s == "" || digits && len(s) <= securitycode.RequiredLength(n)
			assert.Equal(t, expected, securitycode.ShouldAccept(n, s), "network %s, input %q", n, s)
		}
	}
}

func TestIsComplete(t *testing.T) {
	t.Parallel()

	assert.True(t, securitycode.IsComplete(cardnetwork.Visa, "123"))
	assert.False(t, securitycode.IsComplete(cardnetwork.Visa, "1234"))
	assert.False(t, securitycode.IsComplete(cardnetwork.Visa, "12"))
	assert.False(t, securitycode.IsComplete(cardnetwork.Visa, ""))
	assert.True(t, securitycode.IsComplete(cardnetwork.AMEX, "1234"))
	assert.False(t, securitycode.IsComplete(cardnetwork.AMEX, "123"))
	assert.True(t, securitycode.IsComplete(cardnetwork.Unknown, "000"))
}

func TestLookups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		network cardnetwork.Network
		title   string
		logo    securitycode.LogoKind
	}{
		{cardnetwork.Visa, "CVV2", securitycode.LogoCVC},
		{cardnetwork.MasterCard, "CVC2", securitycode.LogoCVC},
		{cardnetwork.AMEX, "CIDV", securitycode.LogoCIDV},
		{cardnetwork.Discover, "CID", securitycode.LogoCVC},
		{cardnetwork.JCB, "CAV2", securitycode.LogoCVC},
		{cardnetwork.ChinaUnionPay, "CVN2", securitycode.LogoCVC},
		{cardnetwork.Maestro, "CVV", securitycode.LogoCVC},
		{cardnetwork.Unknown, "CVV", securitycode.LogoCVC},
	}

	for _, tt := range tests {
		t.Run(tt.network.String(), func(t *testing.T) {
			assert.Equal(t, tt.title, securitycode.Title(tt.network))
			assert.Equal(t, tt.logo, securitycode.LogoKindFor(tt.network))
		})
	}

	assert.Equal(t, "CIDV", securitycode.LogoCIDV.String())
	assert.Equal(t, "CVC", securitycode.LogoCVC.String())
}

func TestChecker(t *testing.T) {
	t.Parallel()

	c := securitycode.For(cardnetwork.AMEX)
	assert.Equal(t, cardnetwork.AMEX, c.Network())
	assert.True(t, c.ShouldAccept("1234"))
	assert.False(t, c.ShouldAccept("12345"))
	assert.True(t, c.IsComplete("1234"))
}
