package attribute

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotAllowed is returned when an attribute kind is not on a set's allow-list.
	ErrNotAllowed = errors.New("attributes not allowed")

	// ErrNotFound is returned when a required attribute is absent from a set.
	ErrNotFound = errors.New("attribute not found")

	// ErrInvalidValue is returned when an attribute is constructed from a malformed value.
	ErrInvalidValue = errors.New("invalid attribute value")

	// ErrEmptyName is returned when an attribute name is empty.
	ErrEmptyName = errors.New("attribute name cannot be empty")

	// ErrUnknownKey is returned by Parse for keys that do not map to a known kind.
	ErrUnknownKey = errors.New("unknown attribute key")
)

func newNotAllowed(kinds []Kind) error {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return fmt.Errorf("%w: %s", ErrNotAllowed, strings.Join(names, ", "))
}

func newInvalidValue(kind string, raw any) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidValue, kind, fmt.Sprint(raw))
}

// NotFoundError reports the kind that Get could not find. It matches ErrNotFound.
type NotFoundError struct {
	Kind Kind
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find attribute %q in set", string(e.Kind))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
