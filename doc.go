// Package payinput holds the input rules behind payment form fields: billing
// postal codes and card security codes.
//
// Every rule set answers two questions. ShouldAccept decides, on each
// keystroke or paste, whether the text the edit would produce may replace the
// current value. IsComplete decides whether the committed value is a finished,
// well-formed entry. Fields call the first to filter input and the second to
// report validity.
//
// Packages:
//
//   - pkg/postcode: UK, USA, Canada and fallback postal code rules
//   - pkg/securitycode: CVV/CVC/CID rules keyed by card network
//   - pkg/cardnetwork: card networks and prefix detection
//   - pkg/inputfield: a headless text field that applies a rule set to edits
//     and notifies an observer of validity changes
//   - pkg/validator: submit-time rules with translation keys
//   - pkg/sanitizer: normalising, formatting and masking helpers
//   - pkg/config, pkg/logger: environment configuration and slog setup
//
// Basic Usage:
//
//	checker := postcode.New().For(postcode.UK)
//	field := inputfield.New(checker,
//		inputfield.WithObserver(inputfield.ObserverFunc(func(ctx context.Context, e inputfield.Event) {
//			submit.SetEnabled(e.Valid)
//		})),
//	)
//
//	field.Type(ctx, "SW1A1AA") // accepted, field.Valid() == true
//	field.Type(ctx, " ")       // rejected, UK postcodes are typed without spaces
//
// Security codes work the same way with the network taken from the card number:
//
//	cvv := inputfield.New(securitycode.For(cardnetwork.Detect(cardNumber)))
//
//	// later, when the card number changes
//	cvv.SetPolicy(ctx, securitycode.For(cardnetwork.Detect(cardNumber)))
//
// The cmd/payinput tool exposes the same rules on the command line.
package payinput
