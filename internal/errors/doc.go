// Package errors provides structured, actionable errors for form definitions,
// configuration and the formkit tooling.
//
// Errors carry a code, a category, the offending field slug when there is
// one, and optionally a location inside a definition file:
//
//	err := errors.New("F002").
//	    WithField("email").
//	    WithLocation("signup.yaml", 14, 5).
//	    WithSuggestion("Rename one of the fields")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR F002: Duplicate field slug
//	//
//	//   signup.yaml:14:5 (field "email")
//	//
//	//     13 │   - slug: email
//	//   → 14 │     kind: text
//	//        │     ^
//	//
//	//   Hint: Rename one of the fields
//
// Rendering itself never fails; these errors are produced by the optional
// configuration check, the definition loader, the config loader and the CLI.
package errors
