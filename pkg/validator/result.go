package validator

// Result is the outcome of validating a single candidate value.
// Value holds the normalized value on success and the attempted value on failure.
type Result struct {
	Valid  bool
	Value  any
	Errors []string
}

// Passed reports a successful validation of v.
func Passed(v any) Result {
	return Result{Valid: true, Value: v}
}

// Success is an alias of Passed.
func Success(v any) Result { return Passed(v) }

// Failed reports a failed validation of v. It is invalid even without messages.
func Failed(v any, errs ...string) Result {
	return Result{Value: v, Errors: errs}
}

// Guess is valid exactly when errs is empty.
func Guess(v any, errs []string) Result {
	if len(errs) == 0 {
		return Passed(v)
	}
	return Failed(v, errs...)
}

// Err converts the result messages into ValidationErrors for the given field.
// It returns nil when the result is valid.
func (r Result) Err(field string) error {
	if r.Valid {
		return nil
	}
	var errs ValidationErrors
	errs.AddMessages(field, r.Errors...)
	if errs.IsEmpty() {
		errs.Add(ValidationError{Field: field, Message: "Value is not valid."})
	}
	return errs
}
