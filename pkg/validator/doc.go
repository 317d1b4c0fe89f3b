// Package validator re-validates submitted payment form values.
//
// Each exported function builds a Rule: a Check closure plus a
// ValidationError carrying a message, a translation key and translation
// values. Apply runs rules and aggregates failures into ValidationErrors,
// which implements error.
//
//	err := validator.Apply(
//	    validator.ValidCardNumber("card_number", form.Number),
//	    validator.ValidSecurityCode("cvv", cardnetwork.Detect(form.Number), form.CVV),
//	    validator.ValidPostcode("postcode", postcode.UK, form.Postcode),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, f := range verrs.Fields() { ... }
//	}
//
// errors.Is(err, ErrValidationFailed) holds for every ValidationErrors.
//
// The rules share their logic with packages postcode and securitycode, so a
// value the form reported complete passes here too.
package validator
