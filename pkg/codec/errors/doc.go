// Package errors defines the typed error model for codec compilation and
// rendering.
//
// Every failure carries an ErrorType tag so callers can react to the category
// without string matching:
//
//	_, err := codec.ParseFile("html.c2e")
//	if codecerrors.IsMalformedGuard(err) {
//		// bad guard syntax in the document
//	}
//
// ErrorList accumulates multiple errors from a single document so a lint run
// can report everything at once instead of stopping at the first problem.
package errors
