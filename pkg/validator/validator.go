package validator

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"unicode/utf8"

	"github.com/dmitrymomot/formkit/pkg/attribute"
)

// Validator checks candidate values against the constraint attributes of a field.
type Validator interface {
	// CheckConstraints reports structural problems with attrs without looking at any value.
	CheckConstraints(attrs *attribute.Set) error

	// Validate checks candidate against attrs. Data problems end up in Result.Errors;
	// the error is reserved for misconfigured constraints.
	Validate(candidate any, attrs *attribute.Set) (Result, error)
}

// Built-in field types.
const (
	TypeMoney      = "money"
	TypeNumber     = "number"
	TypeDate       = "date"
	TypeDateTime   = "datetime"
	TypeTime       = "time"
	TypePassword   = "password"
	TypePassphrase = "passphrase"
	TypePhone      = "phone"
	TypeUUID       = "uuid"
	TypeEnum       = "enum"
	TypeName       = "name"
	TypeText       = "text"
	TypeEmail      = "email"
	TypeURL        = "url"
	TypeBoolean    = "boolean"
	TypeLink       = "link"
)

var constructors = map[string]func(Config) Validator{
	TypeMoney:      func(c Config) Validator { return NewMoney(c) },
	TypeNumber:     func(Config) Validator { return NewNumber() },
	TypeDate:       func(Config) Validator { return NewDate() },
	TypeDateTime:   func(Config) Validator { return NewDateTime() },
	TypeTime:       func(Config) Validator { return NewTime() },
	TypePassword:   func(c Config) Validator { return NewPassword(c) },
	TypePassphrase: func(c Config) Validator { return NewPassphrase(c) },
	TypePhone:      func(c Config) Validator { return NewPhone(c) },
	TypeUUID:       func(Config) Validator { return NewUUID() },
	TypeEnum:       func(Config) Validator { return NewEnum() },
	TypeName:       func(c Config) Validator { return NewName(c) },
	TypeText:       func(Config) Validator { return NewText() },
	TypeEmail:      func(Config) Validator { return NewEmail() },
	TypeURL:        func(c Config) Validator { return NewURL(c) },
	TypeBoolean:    func(Config) Validator { return NewBoolean() },
	TypeLink:       func(Config) Validator { return NewLink() },
}

// New returns the validator for a built-in field type.
func New(typ string, cfg Config) (Validator, error) {
	ctor, ok := constructors[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, typ)
	}
	return ctor(cfg), nil
}

// Types lists the built-in field types in alphabetical order.
func Types() []string {
	return slices.Sorted(maps.Keys(constructors))
}

// stringOf accepts plain strings only.
func stringOf(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// textOf accepts strings and fmt.Stringer values.
func textOf(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	}
	return "", false
}

func length(s string) int { return utf8.RuneCountInString(s) }

// bounds are inclusive length limits; a limit applies only when its has flag is set.
type bounds struct {
	min, max       int
	hasMin, hasMax bool
}

// lengthBounds reads min and max, falling back to def for absent attributes.
func lengthBounds(attrs *attribute.Set, def bounds) (bounds, error) {
	b := def
	if n, ok, err := intBound(attrs, attribute.KindMin); err != nil {
		return b, err
	} else if ok {
		b.min, b.hasMin = n, true
	}
	if n, ok, err := intBound(attrs, attribute.KindMax); err != nil {
		return b, err
	} else if ok {
		b.max, b.hasMax = n, true
	}
	if b.hasMin && b.hasMax && b.min > b.max {
		return b, misconfigured(attribute.KindMax, "%d is lower than min %d", b.max, b.min)
	}
	return b, nil
}

func intBound(attrs *attribute.Set, kind attribute.Kind) (int, bool, error) {
	n, ok, err := attrs.Int(kind)
	if err != nil {
		return 0, false, misconfigured(kind, "%q is not an integer", mustText(attrs, kind))
	}
	if ok && n < 0 {
		return 0, false, misconfigured(kind, "must not be negative, got %d", n)
	}
	return int(n), ok, nil
}

// pattern compiles the pattern attribute, falling back to def when absent.
// The returned text is the source of the pattern that was used.
func pattern(attrs *attribute.Set, def string) (*regexp.Regexp, string, error) {
	expr, ok := attrs.Text(attribute.KindPattern)
	if !ok {
		if def == "" {
			return nil, "", nil
		}
		expr = def
	}
	re, err := attribute.CompilePattern(expr)
	if err != nil {
		return nil, "", misconfigured(attribute.KindPattern, "%v", err)
	}
	return re, expr, nil
}

func mustText(attrs *attribute.Set, kind attribute.Kind) string {
	s, _ := attrs.Text(kind)
	return s
}

// orEmpty lets validators run standalone with a nil set.
func orEmpty(attrs *attribute.Set) *attribute.Set {
	if attrs == nil {
		return attribute.NewSet()
	}
	return attrs
}
