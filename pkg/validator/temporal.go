package validator

import (
	"fmt"
	"math/big"
	"regexp"
	"time"

	"github.com/dmitrymomot/formkit/pkg/attribute"
)

var (
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}(:\d{2}(\.\d{1,9})?)?$`)
	timePattern     = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2}(\.\d{1,9})?)?$`)
)

// temporal holds everything that differs between the date, date-time and time validators.
type temporal struct {
	parse      func(string) (time.Time, bool)
	fromTime   func(time.Time) time.Time
	format     func(time.Time) string
	parseError func(string) string
	tooEarly   string
	tooLate    string
	offStep    string
	stepOK     func(Period) error
}

// Date validates calendar dates in the YYYY-MM-DD form.
type Date struct{ temporal }

// DateTime validates local date-times in the YYYY-MM-DDTHH:MM[:SS[.fraction]] form.
type DateTime struct{ temporal }

// Time validates times of day in the HH:MM[:SS[.fraction]] form.
type Time struct{ temporal }

func NewDate() Date {
	return Date{temporal{
		parse: func(s string) (time.Time, bool) {
			if !datePattern.MatchString(s) {
				return time.Time{}, false
			}
			t, err := time.Parse(time.DateOnly, s)
			return t, err == nil
		},
		fromTime: func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		},
		format: func(t time.Time) string { return t.Format(time.DateOnly) },
		parseError: func(string) string {
			return "Date must be provided in a format compatible with ISO 8601."
		},
		tooEarly: "Value must be at or after %s.",
		tooLate:  "Value must be at or before %s.",
		offStep:  "Value must be an interval of %s starting from %s.",
		stepOK: func(p Period) error {
			if p.Clock != 0 {
				return fmt.Errorf("date steps cannot have a time part")
			}
			return nil
		},
	}}
}

func NewDateTime() DateTime {
	return DateTime{temporal{
		parse: func(s string) (time.Time, bool) {
			if !dateTimePattern.MatchString(s) {
				return time.Time{}, false
			}
			layout := "2006-01-02T15:04"
			if len(s) > len(layout) {
				layout = "2006-01-02T15:04:05"
			}
			t, err := time.Parse(layout, s)
			return t, err == nil
		},
		fromTime: func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
		},
		format: func(t time.Time) string { return t.Format(time.DateOnly) + "T" + clockText(t) },
		parseError: func(string) string {
			return "Date and time must be provided in a format compatible with ISO 8601."
		},
		tooEarly: "Value must be at or after %s.",
		tooLate:  "Value must be at or before %s.",
		offStep:  "Value must be an interval of %s starting from %s.",
		stepOK:   func(Period) error { return nil },
	}}
}

func NewTime() Time {
	return Time{temporal{
		parse: func(s string) (time.Time, bool) {
			if !timePattern.MatchString(s) {
				return time.Time{}, false
			}
			layout := "15:04"
			if len(s) > len(layout) {
				layout = "15:04:05"
			}
			t, err := time.Parse(layout, s)
			return t, err == nil
		},
		fromTime: func(t time.Time) time.Time {
			return time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
		},
		format: clockText,
		parseError: func(s string) string {
			return fmt.Sprintf("Time field is not valid: %q is not a time of day in the HH:MM[:SS] form.", s)
		},
		tooEarly: "Time must be %s or later.",
		tooLate:  "Time must be %s or earlier.",
		offStep:  "Time must be an interval of %s starting from %s.",
		stepOK: func(p Period) error {
			if !p.Fixed() || p.Days != 0 {
				return fmt.Errorf("time steps can only have hours, minutes and seconds")
			}
			return nil
		},
	}}
}

// clockText omits seconds when they are zero and trims trailing fraction zeros.
func clockText(t time.Time) string {
	if t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("15:04")
	}
	return t.Format("15:04:05.999999999")
}

type temporalConstraints struct {
	min, max       time.Time
	hasMin, hasMax bool
	step           Period
	stepText       string
	hasStep        bool
}

func (tv temporal) constraints(attrs *attribute.Set) (temporalConstraints, error) {
	var c temporalConstraints
	var ok bool
	if c.min, c.hasMin, ok = tv.bound(attrs, attribute.KindMin); !ok {
		return c, misconfigured(attribute.KindMin, "%q is not in the expected format", mustText(attrs, attribute.KindMin))
	}
	if c.max, c.hasMax, ok = tv.bound(attrs, attribute.KindMax); !ok {
		return c, misconfigured(attribute.KindMax, "%q is not in the expected format", mustText(attrs, attribute.KindMax))
	}
	if c.hasMin && c.hasMax && c.min.After(c.max) {
		return c, misconfigured(attribute.KindMax, "%s is before min %s", tv.format(c.max), tv.format(c.min))
	}

	if c.stepText, c.hasStep = attrs.Text(attribute.KindStep); c.hasStep {
		p, err := ParsePeriod(c.stepText)
		if err != nil {
			return c, misconfigured(attribute.KindStep, "%v", err)
		}
		if p.IsZero() {
			return c, misconfigured(attribute.KindStep, "%q does not advance", c.stepText)
		}
		if err := tv.stepOK(p); err != nil {
			return c, misconfigured(attribute.KindStep, "%q: %v", c.stepText, err)
		}
		c.step = p
	}
	return c, nil
}

func (tv temporal) bound(attrs *attribute.Set, kind attribute.Kind) (time.Time, bool, bool) {
	s, present := attrs.Text(kind)
	if !present {
		return time.Time{}, false, true
	}
	t, ok := tv.parse(s)
	return t, true, ok
}

func (tv temporal) CheckConstraints(attrs *attribute.Set) error {
	_, err := tv.constraints(orEmpty(attrs))
	return err
}

func (tv temporal) Validate(candidate any, attrs *attribute.Set) (Result, error) {
	c, err := tv.constraints(orEmpty(attrs))
	if err != nil {
		return Result{}, err
	}

	var v time.Time
	switch raw := candidate.(type) {
	case time.Time:
		v = tv.fromTime(raw)
	case string:
		t, ok := tv.parse(raw)
		if !ok {
			return Failed(candidate, tv.parseError(raw)), nil
		}
		v = t
	default:
		return Failed(candidate, tv.parseError(fmt.Sprint(candidate))), nil
	}

	rules := []Rule{
		{
			Check:   func() bool { return !c.hasMin || !v.Before(c.min) },
			Message: fmt.Sprintf(tv.tooEarly, tv.format(c.min)),
		},
		{
			Check:   func() bool { return !c.hasMax || !v.After(c.max) },
			Message: fmt.Sprintf(tv.tooLate, tv.format(c.max)),
		},
		{
			// without a min there is nothing to anchor the step to
			Check:   func() bool { return !c.hasStep || !c.hasMin || reachable(c.min, v, c.step) },
			Message: fmt.Sprintf(tv.offStep, c.stepText, tv.format(c.min)),
		},
	}
	return Guess(tv.format(v), Apply(rules...)), nil
}

// reachable reports whether v equals anchor plus a whole number of steps.
func reachable(anchor, v time.Time, step Period) bool {
	if v.Before(anchor) {
		return false
	}
	if step.Fixed() {
		return fixedMultiple(anchor, v, step.length())
	}
	for t := anchor; !t.After(v); t = step.AddTo(t) {
		if t.Equal(v) {
			return true
		}
	}
	return false
}

// fixedMultiple works in big integers because spans of a few centuries
// overflow time.Duration.
func fixedMultiple(anchor, v time.Time, step *big.Int) bool {
	diff := new(big.Int).Mul(big.NewInt(v.Unix()-anchor.Unix()), big.NewInt(int64(time.Second)))
	diff.Add(diff, big.NewInt(int64(v.Nanosecond()-anchor.Nanosecond())))
	return new(big.Int).Rem(diff, step).Sign() == 0
}
