package validator

import (
	"errors"
	"slices"
	"strings"
)

// ValidationError is one message reported for one field.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors keeps field messages in the order they were reported.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, e := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Field + ": " + e.Message)
	}
	return b.String()
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// AddMessages appends one error per message for the given field.
func (ve *ValidationErrors) AddMessages(field string, messages ...string) {
	for _, msg := range messages {
		ve.Add(ValidationError{Field: field, Message: msg})
	}
}

func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(e ValidationError) bool { return e.Field == field })
}

// Get returns the messages of field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, e := range ve.GetErrors(field) {
		messages = append(messages, e.Message)
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var out []ValidationError
	for _, e := range ve {
		if e.Field == field {
			out = append(out, e)
		}
	}
	return out
}

// Fields lists the fields with messages in first-reported order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	for _, e := range ve {
		if !slices.Contains(fields, e.Field) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool { return len(ve) == 0 }

// Rule pairs a check with the message reported when it fails.
type Rule struct {
	Check   func() bool
	Message string
}

// Apply runs the rules in order and returns the messages of the failed ones.
func Apply(rules ...Rule) []string {
	var messages []string
	for _, rule := range rules {
		if !rule.Check() {
			messages = append(messages, rule.Message)
		}
	}
	return messages
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, if any.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
