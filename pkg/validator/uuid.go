package validator

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/attribute"
)

// UUID validates UUIDs in the canonical 8-4-4-4-12 form and, optionally, their version.
type UUID struct{}

func NewUUID() UUID { return UUID{} }

// version returns 0 for any version.
func (UUID) version(attrs *attribute.Set) (int, error) {
	s, ok := attrs.Text(attribute.KindVersion)
	if !ok || s == attribute.AnyVersionText {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > 8 {
		return 0, misconfigured(attribute.KindVersion, "%q is not a UUID version", s)
	}
	return v, nil
}

func (u UUID) CheckConstraints(attrs *attribute.Set) error {
	_, err := u.version(orEmpty(attrs))
	return err
}

func (u UUID) Validate(candidate any, attrs *attribute.Set) (Result, error) {
	want, err := u.version(orEmpty(attrs))
	if err != nil {
		return Result{}, err
	}

	var id uuid.UUID
	switch v := candidate.(type) {
	case uuid.UUID:
		id = v
	case string:
		// uuid.Parse also takes the braced, urn and hyphen-less forms
		if len(v) != 36 || v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
			return Failed(candidate, "Invalid UUID format: expected 36 characters in the 8-4-4-4-12 form."), nil
		}
		if id, err = uuid.Parse(v); err != nil {
			return Failed(candidate, "Invalid UUID format: "+err.Error()), nil
		}
	default:
		return Failed(candidate, "UUID must be a string."), nil
	}

	value := id.String()
	if got := int(id.Version()); want != 0 && got != want {
		return Failed(value, fmt.Sprintf("A version %d UUID is required: Version %d UUID provided.", want, got)), nil
	}
	return Passed(value), nil
}
