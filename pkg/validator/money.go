package validator

import (
	"fmt"

	"github.com/cockroachdb/apd/v2"

	"github.com/dmitrymomot/formkit/pkg/attribute"
)

// Money validates monetary amounts given as plain decimal strings.
// Amounts are never converted to floating point.
type Money struct {
	defaultPrecision int
}

func NewMoney(cfg Config) Money {
	return Money{defaultPrecision: cfg.MoneyPrecision}
}

type moneyConstraints struct {
	precision      int
	min, max       string
	hasMin, hasMax bool
	step           *apd.Decimal
	stepText       string
}

// constraints resolves the working precision: explicit precision, then the
// common precision of min and max, then whichever bound exists, then the default.
func (m Money) constraints(attrs *attribute.Set) (moneyConstraints, error) {
	var c moneyConstraints
	for _, kind := range []attribute.Kind{attribute.KindMin, attribute.KindMax, attribute.KindStep} {
		if v, ok := attrs.Text(kind); ok && !IsAmount(v) {
			return c, misconfigured(kind, "%q is not a monetary amount", v)
		}
	}
	c.min, c.hasMin = attrs.Text(attribute.KindMin)
	c.max, c.hasMax = attrs.Text(attribute.KindMax)

	p, explicit, err := attrs.Int(attribute.KindPrecision)
	if err != nil || p < 0 {
		return c, misconfigured(attribute.KindPrecision, "%q is not a non-negative integer", mustText(attrs, attribute.KindPrecision))
	}
	switch {
	case explicit:
		c.precision = int(p)
	case c.hasMin && c.hasMax:
		if PrecisionOf(c.min) != PrecisionOf(c.max) {
			return c, misconfigured(attribute.KindMax, "min %q and max %q must have the same precision", c.min, c.max)
		}
		c.precision = PrecisionOf(c.min)
	case c.hasMin:
		c.precision = PrecisionOf(c.min)
	case c.hasMax:
		c.precision = PrecisionOf(c.max)
	default:
		c.precision = m.defaultPrecision
	}

	for _, bound := range []struct {
		kind attribute.Kind
		text string
		has  bool
	}{{attribute.KindMin, c.min, c.hasMin}, {attribute.KindMax, c.max, c.hasMax}} {
		if bound.has && PrecisionOf(bound.text) > c.precision {
			return c, misconfigured(bound.kind, "%q has more than %d decimal places", bound.text, c.precision)
		}
	}
	if c.hasMin && c.hasMax && CompareDecimal(c.min, c.max) > 0 {
		return c, misconfigured(attribute.KindMax, "%q is lower than min %q", c.max, c.min)
	}

	if code, ok := attrs.Text(attribute.KindCurrency); ok && !IsCurrencyCode(code) {
		return c, misconfigured(attribute.KindCurrency, "%q is not an ISO 4217 currency code", code)
	}

	if s, ok := attrs.Text(attribute.KindStep); ok {
		if PrecisionOf(s) > c.precision {
			return c, misconfigured(attribute.KindStep, "%q has more than %d decimal places", s, c.precision)
		}
		if c.step, err = parseDecimal(s); err != nil || c.step.Sign() <= 0 {
			return c, misconfigured(attribute.KindStep, "%q must be greater than zero", s)
		}
		c.stepText = PadPrecision(s, c.precision)
	}
	return c, nil
}

func (m Money) CheckConstraints(attrs *attribute.Set) error {
	_, err := m.constraints(orEmpty(attrs))
	return err
}

func (m Money) Validate(candidate any, attrs *attribute.Set) (Result, error) {
	c, err := m.constraints(orEmpty(attrs))
	if err != nil {
		return Result{}, err
	}

	value, ok := stringOf(candidate)
	if !ok || !IsAmount(value) {
		return Failed(candidate, "Value is not a valid monetary amount."), nil
	}
	value = PadPrecision(NormalizeZero(value), c.precision)

	rules := []Rule{
		{
			Check:   func() bool { return PrecisionOf(value) == c.precision },
			Message: fmt.Sprintf("The amount needs to have %d decimal places of precision.", c.precision),
		},
		{
			Check:   func() bool { return !c.hasMin || CompareDecimal(value, c.min) >= 0 },
			Message: fmt.Sprintf("The amount needs to be %s or higher.", PadPrecision(c.min, c.precision)),
		},
		{
			Check:   func() bool { return !c.hasMax || CompareDecimal(value, c.max) <= 0 },
			Message: fmt.Sprintf("The amount needs to be %s or lower.", PadPrecision(c.max, c.precision)),
		},
		{
			Check: func() bool {
				if c.step == nil {
					return true
				}
				d, err := parseDecimal(value)
				if err != nil {
					return false
				}
				ok, err := isMultipleOf(d, c.step)
				return err == nil && ok
			},
			Message: fmt.Sprintf("The amount needs to be in increments of %s.", c.stepText),
		},
	}
	return Guess(value, Apply(rules...)), nil
}
