package validator

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/attribute"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// Text validates free-form text. Line breaks are rejected unless the field is multiline.
type Text struct{}

func NewText() Text { return Text{} }

func (Text) CheckConstraints(attrs *attribute.Set) error {
	attrs = orEmpty(attrs)
	if _, err := lengthBounds(attrs, bounds{}); err != nil {
		return err
	}
	_, _, err := pattern(attrs, "")
	return err
}

func (Text) Validate(candidate any, attrs *attribute.Set) (Result, error) {
	attrs = orEmpty(attrs)
	b, err := lengthBounds(attrs, bounds{})
	if err != nil {
		return Result{}, err
	}
	re, _, err := pattern(attrs, "")
	if err != nil {
		return Result{}, err
	}
	value, ok := textOf(candidate)
	if !ok {
		return Failed(candidate, "Value must be a string."), nil
	}

	n := length(value)
	return Guess(value, Apply(
		Rule{
			Check:   func() bool { return !b.hasMin || n >= b.min },
			Message: fmt.Sprintf("Value must be at least %d characters long.", b.min),
		},
		Rule{
			Check:   func() bool { return !b.hasMax || n <= b.max },
			Message: fmt.Sprintf("Value must be at most %d characters long.", b.max),
		},
		Rule{
			Check:   func() bool { return re == nil || re.MatchString(value) },
			Message: "Value does not match the required pattern.",
		},
		Rule{
			Check:   func() bool { return attrs.Contains(attribute.KindMultiline) || !sanitizer.HasLineBreak(value) },
			Message: "Value must not contain linebreaks.",
		},
	)), nil
}

// NamePattern permits letters, apostrophes, periods and dashes in space separated words.
const NamePattern = `^[\p{L}.'\-]+(?: [\p{L}.'\-]+)*$`

// Name validates personal names. Input is normalized to NFC before matching.
type Name struct {
	maxLength int
}

func NewName(cfg Config) Name {
	return Name{maxLength: cfg.NameMaxLength}
}

func (n Name) defaults() bounds {
	return bounds{min: 1, hasMin: true, max: n.maxLength, hasMax: n.maxLength > 0}
}

func (n Name) CheckConstraints(attrs *attribute.Set) error {
	attrs = orEmpty(attrs)
	if _, err := lengthBounds(attrs, n.defaults()); err != nil {
		return err
	}
	_, _, err := pattern(attrs, NamePattern)
	return err
}

func (n Name) Validate(candidate any, attrs *attribute.Set) (Result, error) {
	attrs = orEmpty(attrs)
	b, err := lengthBounds(attrs, n.defaults())
	if err != nil {
		return Result{}, err
	}
	re, expr, err := pattern(attrs, NamePattern)
	if err != nil {
		return Result{}, err
	}
	raw, ok := stringOf(candidate)
	if !ok {
		return Failed(candidate, "Value is not a valid name."), nil
	}

	value := sanitizer.NormalizeNFC(raw)
	patternMessage := "Name does not have the correct format."
	if expr == NamePattern {
		patternMessage = "Name can only contain letters, spaces, apostrophes, periods, and dashes."
	}
	size := length(value)
	return Guess(value, Apply(
		Rule{Check: func() bool { return re.MatchString(value) }, Message: patternMessage},
		Rule{
			Check:   func() bool { return !b.hasMin || size >= b.min },
			Message: fmt.Sprintf("Name must have %d or more characters.", b.min),
		},
		Rule{
			Check:   func() bool { return !b.hasMax || size <= b.max },
			Message: fmt.Sprintf("Name cannot have more than %d characters.", b.max),
		},
	)), nil
}
