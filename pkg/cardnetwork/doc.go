// Package cardnetwork enumerates card schemes and infers the scheme from a
// card number's issuer identification prefix.
//
//	cardnetwork.Detect("4111 1111 1111 1111") // Visa
//	n, err := cardnetwork.Parse("american express") // AMEX
//
// The security code field uses the detected network to pick its length and
// label, see package securitycode.
package cardnetwork
