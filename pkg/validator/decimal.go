package validator

import (
	"errors"
	"regexp"
	"strings"

	"github.com/cockroachdb/apd/v2"
)

var amountPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// IsAmount reports whether s is a plain decimal such as "-12.50".
func IsAmount(s string) bool {
	return amountPattern.MatchString(s)
}

// PrecisionOf returns the number of digits after the decimal point.
func PrecisionOf(s string) int {
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}

// PadPrecision appends zeros until s has at least places fractional digits.
// It never removes digits.
func PadPrecision(s string, places int) string {
	have := PrecisionOf(s)
	if have >= places {
		return s
	}
	if !strings.Contains(s, ".") {
		s += "."
	}
	return s + strings.Repeat("0", places-have)
}

// NormalizeZero turns a negative zero like "-0.00" into "0.00".
func NormalizeZero(s string) string {
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}

// CompareDecimal compares two plain decimals digit by digit and returns -1, 0 or +1.
// Both inputs must satisfy IsAmount.
func CompareDecimal(a, b string) int {
	a, b = NormalizeZero(a), NormalizeZero(b)
	negA, negB := strings.HasPrefix(a, "-"), strings.HasPrefix(b, "-")
	switch {
	case negA && !negB:
		return -1
	case !negA && negB:
		return 1
	case negA && negB:
		return -compareMagnitude(a[1:], b[1:])
	}
	return compareMagnitude(a, b)
}

func compareMagnitude(a, b string) int {
	ai, af, _ := strings.Cut(a, ".")
	bi, bf, _ := strings.Cut(b, ".")
	ai = strings.TrimLeft(ai, "0")
	bi = strings.TrimLeft(bi, "0")
	if len(ai) != len(bi) {
		return sign(len(ai) - len(bi))
	}
	if c := strings.Compare(ai, bi); c != 0 {
		return c
	}
	places := max(len(af), len(bf))
	af += strings.Repeat("0", places-len(af))
	bf += strings.Repeat("0", places-len(bf))
	return strings.Compare(af, bf)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// maxStepDigits bounds the precision used for step checks. Values whose
// quotient by the step needs more digits are treated as off-step.
const maxStepDigits = 4096

var errStepTooWide = errors.New("step check needs more than 4096 digits")

func parseDecimal(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	return d, err
}

// isMultipleOf reports whether v is an exact multiple of step. Step must be non-zero.
// The context precision covers every digit of the quotient and the remainder.
func isMultipleOf(v, step *apd.Decimal) (bool, error) {
	digits := v.NumDigits() + step.NumDigits() + 2
	if gap := int64(v.Exponent) - int64(step.Exponent); gap > 0 {
		digits += gap
	} else {
		digits -= gap
	}
	if digits > maxStepDigits {
		return false, errStepTooWide
	}
	ctx := apd.BaseContext.WithPrecision(uint32(max(digits, 16)))

	var rem apd.Decimal
	if _, err := ctx.Rem(&rem, v, step); err != nil {
		return false, err
	}
	return rem.IsZero(), nil
}

// fractionalDigits returns the scale of d, e.g. 2 for "1.50" and 0 for "15e1".
func fractionalDigits(d *apd.Decimal) int {
	if d.Exponent >= 0 {
		return 0
	}
	return int(-d.Exponent)
}
