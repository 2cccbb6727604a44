package validator

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"
)

var errBadPeriod = errors.New("not an ISO 8601 period")

// Period is an ISO 8601 duration such as "P1Y2M", "P2W" or "PT1H30M".
// Weeks are folded into days.
type Period struct {
	Years  int
	Months int
	Days   int
	Clock  time.Duration
}

// ParsePeriod parses the PnYnMnWnDTnHnMnS form. Components must appear in
// that order, each at most once, and only seconds may be fractional.
func ParsePeriod(s string) (Period, error) {
	var p Period
	rest, ok := strings.CutPrefix(s, "P")
	if !ok || rest == "" {
		return p, fmt.Errorf("%q: %w", s, errBadPeriod)
	}
	datePart, timePart, hasTime := strings.Cut(rest, "T")
	if hasTime && timePart == "" {
		return p, fmt.Errorf("%q: %w", s, errBadPeriod)
	}

	err := scanComponents(datePart, "YMWD", func(unit byte, whole int64, frac string) error {
		if frac != "" {
			return errBadPeriod
		}
		switch unit {
		case 'Y':
			p.Years = int(whole)
		case 'M':
			p.Months = int(whole)
		case 'W':
			p.Days += int(whole) * 7
		case 'D':
			p.Days += int(whole)
		}
		return nil
	})
	if err != nil {
		return Period{}, fmt.Errorf("%q: %w", s, err)
	}

	err = scanComponents(timePart, "HMS", func(unit byte, whole int64, frac string) error {
		var ok bool
		switch unit {
		case 'H':
			p.Clock, ok = addClock(p.Clock, whole, time.Hour)
		case 'M':
			p.Clock, ok = addClock(p.Clock, whole, time.Minute)
		case 'S':
			p.Clock, ok = addClock(p.Clock, whole, time.Second)
		}
		if !ok {
			return errBadPeriod
		}
		if frac == "" {
			return nil
		}
		if unit != 'S' || len(frac) > 9 {
			return errBadPeriod
		}
		ns, err := strconv.Atoi(frac + strings.Repeat("0", 9-len(frac)))
		if err != nil {
			return errBadPeriod
		}
		if p.Clock, ok = addClock(p.Clock, int64(ns), time.Nanosecond); !ok {
			return errBadPeriod
		}
		return nil
	})
	if err != nil {
		return Period{}, fmt.Errorf("%q: %w", s, err)
	}
	return p, nil
}

// addClock adds n units to a non-negative clock, failing when the sum
// does not fit a time.Duration.
func addClock(clock time.Duration, n int64, unit time.Duration) (time.Duration, bool) {
	if n > (math.MaxInt64-int64(clock))/int64(unit) {
		return 0, false
	}
	return clock + time.Duration(n)*unit, true
}

// scanComponents walks "<number><unit>" pairs whose units must follow the order in units.
func scanComponents(s, units string, emit func(unit byte, whole int64, frac string) error) error {
	next := 0
	for s != "" {
		i := strings.IndexFunc(s, func(r rune) bool { return (r < '0' || r > '9') && r != '.' })
		if i <= 0 {
			return errBadPeriod
		}
		num, unit := s[:i], s[i]
		s = s[i+1:]

		pos := strings.IndexByte(units[next:], unit)
		if pos < 0 {
			return errBadPeriod
		}
		next += pos + 1

		wholeText, frac, _ := strings.Cut(num, ".")
		if wholeText == "" || strings.Contains(frac, ".") || (strings.Contains(num, ".") && frac == "") {
			return errBadPeriod
		}
		whole, err := strconv.ParseInt(wholeText, 10, 32)
		if err != nil {
			return errBadPeriod
		}
		if err := emit(unit, whole, frac); err != nil {
			return err
		}
	}
	return nil
}

// IsZero reports whether the period adds nothing.
func (p Period) IsZero() bool {
	return p.Years == 0 && p.Months == 0 && p.Days == 0 && p.Clock == 0
}

// Fixed reports whether the period has the same length wherever it is applied.
// Years and months do not.
func (p Period) Fixed() bool {
	return p.Years == 0 && p.Months == 0
}

// length returns the period in nanoseconds. It is only meaningful for
// fixed periods evaluated in UTC.
func (p Period) length() *big.Int {
	n := new(big.Int).Mul(big.NewInt(int64(p.Days)), big.NewInt(int64(24*time.Hour)))
	return n.Add(n, big.NewInt(int64(p.Clock)))
}

// AddTo adds the period to t. Month arithmetic clamps to the last day of the
// month, so Jan 31 plus one month is the end of February.
func (p Period) AddTo(t time.Time) time.Time {
	if p.Years != 0 || p.Months != 0 {
		y, m, d := t.Date()
		first := time.Date(y+p.Years, m+time.Month(p.Months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
		last := first.AddDate(0, 1, -1).Day()
		t = first.AddDate(0, 0, min(d, last)-1)
	}
	return t.AddDate(0, 0, p.Days).Add(p.Clock)
}
