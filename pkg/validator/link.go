package validator

import "github.com/dmitrymomot/formkit/pkg/attribute"

// Link carries a display URL. Link fields are read-only by default, so
// Validate mostly runs for prefilled values.
type Link struct{}

func NewLink() Link { return Link{} }

func (Link) CheckConstraints(*attribute.Set) error { return nil }

func (Link) Validate(candidate any, _ *attribute.Set) (Result, error) {
	value, ok := textOf(candidate)
	if !ok {
		return Failed(candidate, "Value must be a string."), nil
	}
	return Passed(value), nil
}
