package formkit

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/field"
)

// ValidationError maps field names to their messages. It shares the shape
// of url.Values so templates can look messages up the same way they look up
// submitted values.
type ValidationError url.Values

// Error lists the first message of each field, by field name.
func (e ValidationError) Error() string {
	fields := e.Fields()
	if len(fields) == 0 {
		return "Validation failed"
	}

	parts := make([]string, len(fields))
	for i, name := range fields {
		parts[i] = fmt.Sprintf("%s: %s", name, e[name][0])
	}
	return "validation error: " + strings.Join(parts, ", ")
}

func NewValidationError() ValidationError {
	return make(ValidationError)
}

// ErrorsOf collects the messages of every invalid field in c.
// The result is empty when the collection is valid.
func ErrorsOf(c *field.Collection) ValidationError {
	e := NewValidationError()
	for _, ve := range c.Errors() {
		e.Add(ve.Field, ve.Message)
	}
	return e
}

func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// All returns every message for a field in the order it was added.
func (e ValidationError) All(field string) []string {
	return slices.Clone(e[field])
}

func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

// Fields returns the names of fields with errors, sorted.
func (e ValidationError) Fields() []string {
	names := make([]string, 0, len(e))
	for _, name := range slices.Sorted(maps.Keys(e)) {
		if len(e[name]) > 0 {
			names = append(names, name)
		}
	}
	return names
}

// IsEmpty reports whether no field has a message.
func (e ValidationError) IsEmpty() bool {
	return len(e.Fields()) == 0
}
