// Package validator checks candidate form values against the constraint
// attributes of a field type.
//
// Every field type has a Validator: a small value type with two methods.
// CheckConstraints inspects an attribute set on its own and reports
// structural problems (a min above its max, a step of zero, an unknown
// currency) as errors wrapping ErrMisconfigured. Validate checks a candidate
// against the same attributes and returns a Result. Problems with the data
// itself never surface as Go errors; they are collected as human readable
// messages in Result.Errors, so a single call reports every failed
// constraint at once.
//
// # Architecture
//
// Each source file holds the validator for one family of field types
// (money.go, number.go, temporal.go, password.go, and so on). Validators
// carry only the defaults taken from Config and are safe for concurrent use.
//
// Core building blocks:
//   - Validator        – CheckConstraints and Validate for one field type
//   - Result           – validity flag, normalized value and messages
//   - Rule             – a Check func paired with the message it reports
//   - ValidationErrors – field keyed messages that implement error
//
// # Usage
//
//	v, err := validator.New(validator.TypeMoney, validator.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	attrs := attribute.Of(attribute.Min("1"), attribute.Currency("EUR"))
//	res, err := v.Validate("12.5", attrs)
//	if err != nil {
//	    // the attributes themselves are unusable
//	}
//	if !res.Valid {
//	    // res.Errors holds the messages, res.Value the normalized input
//	}
//
// # Normalization
//
// A valid Result carries the canonical form of the input: money is padded
// to its precision, dates and times are rewritten in their ISO 8601 form,
// phone numbers are reduced to digits and names are NFC normalized.
//
// # Error Handling
//
// Result.Err converts a failed result into ValidationErrors keyed by field
// name, which works with errors.As and the helpers ExtractValidationErrors
// and IsValidationError.
package validator
