// Package schema loads declarative form definitions from YAML or JSON and
// compiles them into form fields over a generic, map-backed State.
//
// A definition lists fields with their kind, slug, label, options and rules:
//
//	title: Sign up
//	submit: Create account
//	fields:
//	  - kind: text
//	    slug: email
//	    label: Email
//	    rules:
//	      - notEmpty: Email is required
//	      - pattern: "@"
//	        message: Not an email address
//	  - kind: password
//	    slug: confirm
//	    label: Confirm password
//	    rules:
//	      - equals: password
//	        message: Passwords differ
//
// The compiled fields read from and write to State through Msg values; Update
// applies a Msg and returns the next State. View renders the whole form.
package schema
