package validator

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/attribute"
)

// Enum accepts only the keys of the options attribute.
type Enum struct{}

func NewEnum() Enum { return Enum{} }

func (Enum) options(attrs *attribute.Set) (attribute.Options, error) {
	a, ok := attrs.Find(attribute.KindOptions)
	if !ok {
		return attribute.Options{}, misconfigured(attribute.KindOptions, "enum fields need options")
	}
	return a.Options(), nil
}

func (e Enum) CheckConstraints(attrs *attribute.Set) error {
	_, err := e.options(orEmpty(attrs))
	return err
}

func (e Enum) Validate(candidate any, attrs *attribute.Set) (Result, error) {
	opts, err := e.options(orEmpty(attrs))
	if err != nil {
		return Result{}, err
	}
	value, ok := stringOf(candidate)
	if !ok {
		return Failed(candidate, "Value is not a string."), nil
	}
	if !opts.Has(value) {
		return Failed(value, fmt.Sprintf("Value '%s' is not a valid option.", value)), nil
	}
	return Passed(value), nil
}
