package securitycode

import (
	"regexp"
	"unicode/utf8"

	"github.com/dmitrymomot/payinput/pkg/cardnetwork"
)

// DefaultLength applies to every network without a dedicated length.
const DefaultLength = 3

var numericRegex = regexp.MustCompile(`^[0-9]+$`)

// LogoKind tags the card-back illustration that explains where the code is printed.
type LogoKind int

const (
	// LogoCVC shows the three digits on the signature strip.
	LogoCVC LogoKind = iota
	// LogoCIDV shows the four digits printed on the card front.
	LogoCIDV
)

func (k LogoKind) String() string {
	if k == LogoCIDV {
		return "CIDV"
	}
	return "CVC"
}

type rule struct {
	length int
	title  string
	logo   LogoKind
}

var defaultRule = rule{length: DefaultLength, title: "CVV", logo: LogoCVC}

var rules = map[cardnetwork.Network]rule{
	cardnetwork.Visa:          {length: 3, title: "CVV2", logo: LogoCVC},
	cardnetwork.MasterCard:    {length: 3, title: "CVC2", logo: LogoCVC},
	cardnetwork.AMEX:          {length: 4, title: "CIDV", logo: LogoCIDV},
	cardnetwork.Discover:      {length: 3, title: "CID", logo: LogoCVC},
	cardnetwork.JCB:           {length: 3, title: "CAV2", logo: LogoCVC},
	cardnetwork.ChinaUnionPay: {length: 3, title: "CVN2", logo: LogoCVC},
}

func ruleFor(n cardnetwork.Network) rule {
	if r, ok := rules[n]; ok {
		return r
	}
	return defaultRule
}

// RequiredLength is the exact number of digits a complete code has.
func RequiredLength(n cardnetwork.Network) int {
	return ruleFor(n).length
}

// ShouldAccept reports whether candidate, the text a pending edit would
// produce, may replace the current value: empty, or digits no longer than
// RequiredLength.
func ShouldAccept(n cardnetwork.Network, candidate string) bool {
	if candidate == "" {
		return true
	}
	return numericRegex.MatchString(candidate) && utf8.RuneCountInString(candidate) <= RequiredLength(n)
}

// IsComplete reports whether text has exactly RequiredLength characters.
// Characters are not re-checked; ShouldAccept already admits digits only.
func IsComplete(n cardnetwork.Network, text string) bool {
	return utf8.RuneCountInString(text) == RequiredLength(n)
}

// Title returns the scheme's name for its security code.
func Title(n cardnetwork.Network) string {
	return ruleFor(n).title
}

// LogoKindFor returns which card-back illustration the field shows.
func LogoKindFor(n cardnetwork.Network) LogoKind {
	return ruleFor(n).logo
}

// Checker is the security code rule set bound to one network.
type Checker struct {
	network cardnetwork.Network
}

// For binds the rules to a network.
func For(n cardnetwork.Network) Checker {
	return Checker{network: n}
}

// Network returns the bound card network.
func (c Checker) Network() cardnetwork.Network {
	return c.network
}

func (c Checker) String() string {
	return c.network.String()
}

// ShouldAccept applies ShouldAccept for the bound network.
func (c Checker) ShouldAccept(candidate string) bool {
	return ShouldAccept(c.network, candidate)
}

// IsComplete applies IsComplete for the bound network.
func (c Checker) IsComplete(text string) bool {
	return IsComplete(c.network, text)
}
