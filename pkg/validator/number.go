package validator

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/cockroachdb/apd/v2"

	"github.com/dmitrymomot/formkit/pkg/attribute"
)

var numberPattern = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?$`)

// Number validates arbitrary precision decimal numbers. Go integers and
// floats are converted to their shortest exact text form first.
type Number struct{}

func NewNumber() Number { return Number{} }

type numberConstraints struct {
	min, max, step             *apd.Decimal
	minText, maxText, stepText string
	precision                  int
	hasPrecision               bool
}

func (Number) constraints(attrs *attribute.Set) (numberConstraints, error) {
	var c numberConstraints
	var err error
	for _, bound := range []struct {
		kind attribute.Kind
		dec  **apd.Decimal
		text *string
	}{
		{attribute.KindMin, &c.min, &c.minText},
		{attribute.KindMax, &c.max, &c.maxText},
		{attribute.KindStep, &c.step, &c.stepText},
	} {
		s, ok := attrs.Text(bound.kind)
		if !ok {
			continue
		}
		if !numberPattern.MatchString(s) {
			return c, misconfigured(bound.kind, "%q is not a number", s)
		}
		if *bound.dec, err = parseDecimal(s); err != nil {
			return c, misconfigured(bound.kind, "%q is not a number: %v", s, err)
		}
		*bound.text = s
	}
	if c.step != nil && c.step.Sign() <= 0 {
		return c, misconfigured(attribute.KindStep, "%q must be greater than zero", c.stepText)
	}
	if c.min != nil && c.max != nil && c.min.Cmp(c.max) > 0 {
		return c, misconfigured(attribute.KindMax, "%q is lower than min %q", c.maxText, c.minText)
	}

	p, ok, err := attrs.Int(attribute.KindPrecision)
	if err != nil || p < 0 {
		return c, misconfigured(attribute.KindPrecision, "%q is not a non-negative integer", mustText(attrs, attribute.KindPrecision))
	}
	switch {
	case ok:
		c.precision, c.hasPrecision = int(p), true
	case c.step != nil && PrecisionOf(c.stepText) > 0:
		// a fractional step implies the precision
		c.precision, c.hasPrecision = PrecisionOf(c.stepText), true
	}
	return c, nil
}

func (c numberConstraints) pad(s string) string {
	if !c.hasPrecision {
		return s
	}
	return PadPrecision(s, c.precision)
}

func (n Number) CheckConstraints(attrs *attribute.Set) error {
	_, err := n.constraints(orEmpty(attrs))
	return err
}

func (n Number) Validate(candidate any, attrs *attribute.Set) (Result, error) {
	c, err := n.constraints(orEmpty(attrs))
	if err != nil {
		return Result{}, err
	}

	value, ok := numberText(candidate)
	if !ok || !numberPattern.MatchString(value) {
		return Failed(candidate, "Value is not a valid number."), nil
	}
	d, err := parseDecimal(value)
	if err != nil {
		return Failed(candidate, "Value is not a valid number."), nil
	}

	rules := []Rule{
		{
			Check:   func() bool { return c.min == nil || d.Cmp(c.min) >= 0 },
			Message: fmt.Sprintf("Number must be %s or higher.", c.pad(c.minText)),
		},
		{
			Check:   func() bool { return c.max == nil || d.Cmp(c.max) <= 0 },
			Message: fmt.Sprintf("Number must be %s or lower.", c.pad(c.maxText)),
		},
		{
			Check: func() bool {
				if c.step == nil {
					return true
				}
				ok, err := isMultipleOf(d, c.step)
				return err == nil && ok
			},
			Message: fmt.Sprintf("Number must be in increments of %s.", c.pad(c.stepText)),
		},
		{
			Check: func() bool { return !c.hasPrecision || fractionalDigits(d) == c.precision },
			Message: fmt.Sprintf("%d decimal places of precision required: got %d decimal places.",
				c.precision, fractionalDigits(d)),
		},
	}
	return Guess(value, Apply(rules...)), nil
}

// numberText converts supported Go values to number text without losing information.
func numberText(v any) (string, bool) {
	switch n := v.(type) {
	case string:
		return n, true
	case int:
		return strconv.Itoa(n), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float32:
		return floatText(float64(n), 32)
	case float64:
		return floatText(n, 64)
	}
	return "", false
}

func floatText(f float64, bits int) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, bits), true
}
