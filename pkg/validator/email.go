package validator

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/attribute"
)

const (
	// EmailPattern accepts anything shaped like local@domain without spaces or control characters.
	EmailPattern = `^[^@\p{C}\p{Z}]+@[^@\p{C}\p{Z}]+$`

	// RoutableEmail is a pattern value that switches to strict address parsing.
	RoutableEmail = "routable"
)

// Routable returns the pattern attribute that requests strict address parsing.
func Routable() attribute.Attribute {
	return attribute.New(attribute.KindPattern, attribute.TextValue(RoutableEmail))
}

// Email validates email addresses.
type Email struct{}

func NewEmail() Email { return Email{} }

func (Email) check(attrs *attribute.Set) (bounds, func(string) bool, error) {
	b, err := lengthBounds(attrs, bounds{})
	if err != nil {
		return b, nil, err
	}
	if expr, ok := attrs.Text(attribute.KindPattern); ok && expr == RoutableEmail {
		return b, IsRoutableEmail, nil
	}
	re, _, err := pattern(attrs, EmailPattern)
	if err != nil {
		return b, nil, err
	}
	return b, re.MatchString, nil
}

func (e Email) CheckConstraints(attrs *attribute.Set) error {
	_, _, err := e.check(orEmpty(attrs))
	return err
}

func (e Email) Validate(candidate any, attrs *attribute.Set) (Result, error) {
	b, matches, err := e.check(orEmpty(attrs))
	if err != nil {
		return Result{}, err
	}
	value, ok := stringOf(candidate)
	if !ok {
		return Failed(candidate, "Email address is not a string."), nil
	}

	n := length(value)
	return Guess(value, Apply(
		Rule{Check: func() bool { return matches(value) }, Message: "Email address is not in the correct format."},
		Rule{
			Check:   func() bool { return !b.hasMin || n >= b.min },
			Message: fmt.Sprintf("Email address must be at least %d characters long.", b.min),
		},
		Rule{
			Check:   func() bool { return !b.hasMax || n <= b.max },
			Message: fmt.Sprintf("Email address cannot be more than %d characters long.", b.max),
		},
	)), nil
}

// IsRoutableEmail reports whether s is a bare RFC 5322 address with a dotted domain.
func IsRoutableEmail(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	localPart, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || localPart == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
