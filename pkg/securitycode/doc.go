// Package securitycode validates card security code input (CVV, CVC, CID)
// for a card network.
//
// AMEX codes have four digits, every other network three. ShouldAccept gates
// keystrokes (digits only, never longer than the required length) and
// IsComplete reports an exact-length match.
//
//	securitycode.ShouldAccept(cardnetwork.Visa, "1234") // false
//	securitycode.IsComplete(cardnetwork.AMEX, "1234")   // true
package securitycode
