package validator

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/attribute"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// PhonePattern is the default E.164-like shape: an optional plus, then digits and spaces.
const PhonePattern = `^\+?[0-9 ]+$`

// Phone validates phone numbers. Min and max bound the number of digits,
// and the value is normalized to its digits with the leading plus kept.
type Phone struct {
	minDigits, maxDigits int
}

func NewPhone(cfg Config) Phone {
	return Phone{minDigits: cfg.PhoneMinDigits, maxDigits: cfg.PhoneMaxDigits}
}

func (p Phone) defaults() bounds {
	return bounds{min: p.minDigits, hasMin: true, max: p.maxDigits, hasMax: p.maxDigits > 0}
}

func (p Phone) CheckConstraints(attrs *attribute.Set) error {
	attrs = orEmpty(attrs)
	if _, err := lengthBounds(attrs, p.defaults()); err != nil {
		return err
	}
	_, _, err := pattern(attrs, PhonePattern)
	return err
}

func (p Phone) Validate(candidate any, attrs *attribute.Set) (Result, error) {
	attrs = orEmpty(attrs)
	b, err := lengthBounds(attrs, p.defaults())
	if err != nil {
		return Result{}, err
	}
	re, expr, err := pattern(attrs, PhonePattern)
	if err != nil {
		return Result{}, err
	}
	raw, ok := stringOf(candidate)
	if !ok {
		return Failed(candidate, "Value must be a string."), nil
	}

	patternMessage := "Value must be a valid phone number."
	if expr == PhonePattern {
		patternMessage = `Phone number can only contain digits, spaces, and a "+" prefix.`
	}
	value := sanitizer.KeepPhoneDigits(raw)
	digits := len(strings.TrimPrefix(value, "+"))
	return Guess(value, Apply(
		Rule{Check: func() bool { return re.MatchString(raw) }, Message: patternMessage},
		Rule{
			Check:   func() bool { return !b.hasMin || digits >= b.min },
			Message: fmt.Sprintf("Value must have at least %d digits.", b.min),
		},
		Rule{
			Check:   func() bool { return !b.hasMax || digits <= b.max },
			Message: fmt.Sprintf("Value cannot have more than %d digits.", b.max),
		},
	)), nil
}
