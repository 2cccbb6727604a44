package validator

import (
	"github.com/dmitrymomot/formkit/pkg/attribute"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// Boolean normalizes checkbox style input to a Go bool.
type Boolean struct{}

func NewBoolean() Boolean { return Boolean{} }

func (Boolean) CheckConstraints(*attribute.Set) error { return nil }

func (Boolean) Validate(candidate any, _ *attribute.Set) (Result, error) {
	switch v := candidate.(type) {
	case bool:
		return Passed(v), nil
	case int:
		if v == 0 || v == 1 {
			return Passed(v == 1), nil
		}
	case string:
		switch sanitizer.TrimToLower(v) {
		case "1", "on", "true":
			return Passed(true), nil
		case "0", "off", "false":
			return Passed(false), nil
		}
	}
	return Failed(candidate, "Value must be a boolean."), nil
}
