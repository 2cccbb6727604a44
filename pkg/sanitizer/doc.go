// Package sanitizer provides small, stateless helpers for cleaning user input
// before it reaches a validator.
//
// The helpers cover trimming and case folding, digit extraction for phone
// numbers, whitespace and control character cleanup, and Unicode NFC
// normalization (via golang.org/x/text/unicode/norm). The higher-order Apply
// and Compose helpers build pipelines out of them:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.NormalizeNFC,
//	    sanitizer.RemoveExtraWhitespace,
//	)
//
//	name := clean("  Zoë   Smith ") // "Zoë Smith"
//
// # Error handling
//
// None of the helpers returns an error; they always produce a string.
package sanitizer
