package postcode

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

const (
	// Outward code (area + district, optional sub-district) and inward code
	// (sector digit + two unit letters), or the Girobank special case.
	ukExpr = `GIR 0AA|(?:[A-PR-UWYZ][0-9][0-9]?|[A-PR-UWYZ][A-HK-Y][0-9][0-9]?|[A-PR-UWYZ][0-9][A-HJKSTUW]|[A-PR-UWYZ][A-HK-Y][0-9][ABEHMNPRVWXY])\s?[0-9][ABD-HJLNP-UW-Z]{2}`

	// ZIP or ZIP+4, anchored per line.
	usaExpr = `(?m)^\d{5}$|^\d{5}-\d{4}$`

	// Letter-digit triplets; D, F, I, O, Q, U never appear, W and Z never lead.
	canadaExpr = `[ABCEGHJKLMNPRSTVXY][0-9][ABCEGHJKLMNPRSTVWXYZ][0-9][ABCEGHJKLMNPRSTVWXYZ][0-9]`

	usaFullExpr = `^(?:\d{5}|\d{5}-\d{4})$`
)

var (
	alphanumericRegex = mustCompile("alphanumeric", `^[a-zA-Z0-9]+$`)
	numericRegex      = mustCompile("numeric", `^[0-9]+$`)

	ukPattern = patternPair{
		contains: mustCompile("uk", ukExpr),
		full:     mustCompile("uk full", fullMatch(ukExpr)),
	}
	usaPattern = patternPair{
		contains: mustCompile("usa", usaExpr),
		full:     mustCompile("usa full", usaFullExpr),
	}
	canadaPattern = patternPair{
		contains: mustCompile("canada", canadaExpr),
		full:     mustCompile("canada full", fullMatch(canadaExpr)),
	}
)

// patternPair holds the observed search pattern and its whole-string variant.
type patternPair struct {
	contains *regexp.Regexp
	full     *regexp.Regexp
}

func (p patternPair) match(text string, mode MatchMode) bool {
	if mode == MatchFull {
		return p.full.MatchString(text)
	}
	return p.contains.MatchString(text)
}

type charset int

const (
	alphanumeric charset = iota
	numeric
)

func (c charset) matches(s string) bool {
	if c == numeric {
		return numericRegex.MatchString(s)
	}
	return alphanumericRegex.MatchString(s)
}

type rule struct {
	title    string
	keyboard Keyboard
	charset  charset
	maxLen   int
	complete func(text string, mode MatchMode) bool
}

// accepts gates a candidate while the user is still typing.
func (r rule) accepts(candidate string) bool {
	if candidate == "" {
		return true
	}
	return r.charset.matches(candidate) && utf8.RuneCountInString(candidate) <= r.maxLen
}

var rules = [...]rule{
	UK: {
		title:    "Postcode",
		keyboard: KeyboardAlphanumeric,
		charset:  alphanumeric,
		maxLen:   8,
		complete: ukPattern.match,
	},
	USA: {
		title:    "ZIP code",
		keyboard: KeyboardNumeric,
		charset:  numeric,
		maxLen:   5,
		complete: usaPattern.match,
	},
	Canada: {
		title:    "Postal code",
		keyboard: KeyboardAlphanumeric,
		charset:  alphanumeric,
		maxLen:   6,
		complete: func(text string, mode MatchMode) bool {
			return canadaPattern.match(text, mode) && utf8.RuneCountInString(text) == 6
		},
	},
	Other: {
		title:    "Postcode",
		keyboard: KeyboardNumeric,
		charset:  numeric,
		maxLen:   8,
		complete: func(text string, _ MatchMode) bool {
			return numericRegex.MatchString(text) && utf8.RuneCountInString(text) <= 8
		},
	},
}

// ruleFor falls back to Other for values outside the declared variants.
func ruleFor(c BillingCountry) rule {
	if !c.valid() {
		return rules[Other]
	}
	return rules[c]
}

func fullMatch(expr string) string {
	return `^(?:` + expr + `)$`
}

func compilePattern(name, expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, name, err)
	}
	return re, nil
}

// mustCompile panics at package initialisation so a broken pattern stops the
// program before the first keystroke is validated.
func mustCompile(name, expr string) *regexp.Regexp {
	re, err := compilePattern(name, expr)
	if err != nil {
		panic(err)
	}
	return re
}
