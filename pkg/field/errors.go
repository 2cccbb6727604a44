package field

import "errors"

var (
	// ErrUnknownType is returned when a field type has no registered schema or validator.
	ErrUnknownType = errors.New("unknown field type")

	// ErrInvalidDefinition is returned when a field definition is missing required keys or carries malformed values.
	ErrInvalidDefinition = errors.New("invalid field definition")

	// ErrInvalidTransition is returned when a lifecycle operation is not possible in the field's current state.
	ErrInvalidTransition = errors.New("invalid field lifecycle transition")
)
