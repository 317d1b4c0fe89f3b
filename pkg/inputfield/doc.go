// Package inputfield models the text input that consults a validation
// Policy on every keystroke.
//
// A Field holds the accepted text. Each Edit is spliced into a candidate
// string, which the Policy may reject before anything changes. After an
// accepted edit the Policy's completion check runs and the result is sent
// to the Observer.
//
//	f := inputfield.New(postcode.New().For(postcode.UK),
//	    inputfield.WithObserver(inputfield.ObserverFunc(func(ctx context.Context, e inputfield.Event) {
//	        submit.SetEnabled(e.Valid)
//	    })),
//	)
//	f.Type(ctx, "SW1A")
//	f.Type(ctx, "1AA") // observer sees Valid == true
//
// Rendering, keyboards and labels stay with the UI layer; the lookups in
// packages postcode and securitycode supply the data it needs.
package inputfield
