package cardnetwork

import (
	"strconv"

	"github.com/dmitrymomot/payinput/pkg/sanitizer"
)

// prefixRange matches card numbers whose leading digits, read as a number
// of the same width as low, fall within [low, high].
type prefixRange struct {
	low, high string
	network   Network
}

// Ordered most specific first so overlapping ranges resolve to the
// narrower scheme (Dankort 5019 before Maestro 50, InstaPayment before 63).
var prefixes = []prefixRange{
	{"5019", "5019", Dankort},
	{"6011", "6011", Discover},
	{"2221", "2720", MasterCard},
	{"3528", "3589", JCB},
	{"300", "305", DinersClub},
	{"636", "636", InterPayment},
	{"637", "639", InstaPayment},
	{"644", "649", Discover},
	{"34", "34", AMEX},
	{"37", "37", AMEX},
	{"36", "36", DinersClub},
	{"38", "38", DinersClub},
	{"51", "55", MasterCard},
	{"62", "62", ChinaUnionPay},
	{"65", "65", Discover},
	{"50", "50", Maestro},
	{"56", "58", Maestro},
	{"60", "69", Maestro},
	{"4", "4", Visa},
	{"1", "1", UATP},
}

// Detect infers the network from a full or partial card number. Spaces and
// dashes are ignored. A partial number is classified only once its prefix is
// decisive: while it could still grow into an earlier, more specific range of
// another network (601 may become Discover 6011), Detect returns Unknown.
// Numbers with no matching prefix also yield Unknown.
func Detect(number string) Network {
	digits := sanitizer.KeepDigits(number)
	if digits == "" {
		return Unknown
	}

	var pending []Network
	for _, p := range prefixes {
		if p.matches(digits) {
			for _, n := range pending {
				if n != p.network {
					return Unknown
				}
			}
			return p.network
		}
		if p.couldMatch(digits) {
			pending = append(pending, p.network)
		}
	}
	return Unknown
}

func (p prefixRange) matches(digits string) bool {
	width := len(p.low)
	if len(digits) < width {
		return false
	}

	head, err := strconv.Atoi(digits[:width])
	if err != nil {
		return false
	}
	low, _ := strconv.Atoi(p.low)
	high, _ := strconv.Atoi(p.high)
	return head >= low && head <= high
}

// couldMatch reports whether digits is too short for p but may still grow
// into it. Equal-width digit strings compare like the numbers they spell.
func (p prefixRange) couldMatch(digits string) bool {
	n := len(digits)
	if n >= len(p.low) {
		return false
	}
	return digits >= p.low[:n] && digits <= p.high[:n]
}
