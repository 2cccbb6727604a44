package validator

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/attribute"
)

var (
	// ErrMisconfigured is returned when the constraint attributes of a field
	// cannot be used to validate anything, e.g. a malformed min or an unknown algorithm.
	ErrMisconfigured = errors.New("validator: misconfigured constraint")

	// ErrUnsupportedType is returned by New for field types without a validator.
	ErrUnsupportedType = errors.New("validator: unsupported field type")
)

func misconfigured(kind attribute.Kind, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrMisconfigured, kind, fmt.Sprintf(format, args...))
}
