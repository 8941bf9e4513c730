// Package form builds declarative form fields and renders them to virtual-DOM
// markup that reflects each field's validation state.
//
// A Field describes one control: its slug, label, how to read its value out of
// application state S, and how to turn user input into an application message
// M. Fields are plain values built fresh on every render; the package keeps no
// state of its own.
//
//	email := form.Text("email", "Email",
//	    func(s State) (string, bool) { return s.Email, s.Email != "" },
//	    func(v string) Msg { return SetEmail(v) },
//	).Require("Email is required").Match(`@`, "Not an email address")
//
//	nodes := form.Render(state, email)
//
// # Validation
//
// Rules run in declaration order. A field is valid when every rule holds.
// A field is pristine while its primary value has never been non-empty,
// regardless of its declared rules, and errors are only displayed for fields
// that are both invalid and no longer pristine. See Evaluate.
//
// Constructors never reject configuration. Lint reports duplicate slugs,
// missing options and similar mistakes on request.
package form
