// Package httpfeed exposes the notification dispatcher over HTTP for
// browser render collaborators.
//
// It mounts a small chi router mediating the two dispatcher operations
// (create and dismiss), a render-state snapshot, a Server-Sent Events
// stream delivering the grouped render state on every change, and an
// optional verbatim theme passthrough.
//
// # Usage
//
//	d := toast.New()
//	mux := httpfeed.Routes(d,
//		httpfeed.WithTheme(appTheme),
//		httpfeed.WithLogger(log),
//	)
//	http.ListenAndServe(":8080", mux)
//
// The wire format is permissive to match the dispatcher: unknown variant,
// type, and position values are stored as supplied and degrade to defaults
// in the rendered output. Durations travel as milliseconds.
package httpfeed
