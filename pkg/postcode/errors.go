package postcode

import "errors"

var (
	// ErrInvalidPattern is raised when a built-in postal code pattern fails to compile.
	ErrInvalidPattern = errors.New("postcode: invalid pattern")

	// ErrUnknownCountry is returned when a billing country cannot be parsed.
	ErrUnknownCountry = errors.New("postcode: unknown billing country")

	// ErrInvalidMatchMode is returned when a match mode cannot be parsed.
	ErrInvalidMatchMode = errors.New("postcode: invalid match mode")
)
