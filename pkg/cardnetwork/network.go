package cardnetwork

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownNetwork is returned when a card network name cannot be parsed.
var ErrUnknownNetwork = errors.New("cardnetwork: unknown network")

// Network identifies a card scheme.
type Network int

const (
	Unknown Network = iota
	Visa
	MasterCard
	Maestro
	AMEX
	ChinaUnionPay
	JCB
	Discover
	DinersClub
	InstaPayment
	InterPayment
	Dankort
	UATP
)

var names = [...]string{
	Unknown:       "Unknown",
	Visa:          "Visa",
	MasterCard:    "MasterCard",
	Maestro:       "Maestro",
	AMEX:          "AMEX",
	ChinaUnionPay: "ChinaUnionPay",
	JCB:           "JCB",
	Discover:      "Discover",
	DinersClub:    "DinersClub",
	InstaPayment:  "InstaPayment",
	InterPayment:  "InterPayment",
	Dankort:       "Dankort",
	UATP:          "UATP",
}

// aliases maps lowercase, separator-free spellings to networks.
var aliases = map[string]Network{
	"unknown":         Unknown,
	"visa":            Visa,
	"mastercard":      MasterCard,
	"mc":              MasterCard,
	"maestro":         Maestro,
	"amex":            AMEX,
	"americanexpress": AMEX,
	"chinaunionpay":   ChinaUnionPay,
	"unionpay":        ChinaUnionPay,
	"cup":             ChinaUnionPay,
	"jcb":             JCB,
	"discover":        Discover,
	"dinersclub":      DinersClub,
	"diners":          DinersClub,
	"instapayment":    InstaPayment,
	"interpayment":    InterPayment,
	"dankort":         Dankort,
	"uatp":            UATP,
}

// All returns every network, Unknown first.
func All() []Network {
	all := make([]Network, len(names))
	for i := range names {
		all[i] = Network(i)
	}
	return all
}

func (n Network) String() string {
	if n.Valid() {
		return names[n]
	}
	return fmt.Sprintf("Network(%d)", int(n))
}

// Valid reports whether n is one of the declared networks.
func (n Network) Valid() bool {
	return n >= Unknown && int(n) < len(names)
}

// MarshalText implements encoding.TextMarshaler.
func (n Network) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (n *Network) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Parse resolves a network name case-insensitively, ignoring spaces,
// dashes and underscores ("American Express", "master-card", "MC").
func Parse(name string) (Network, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\t':
			return -1
		}
		return r
	}, strings.ToLower(name))

	if n, ok := aliases[key]; ok {
		return n, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}
