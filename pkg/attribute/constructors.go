package attribute

import (
	"fmt"
	"strconv"
	"strings"
)

// Marker creates a present boolean attribute of the given kind.
func Marker(kind Kind) Attribute {
	return New(kind, BoolValue(true))
}

func Required() Attribute { return Marker(KindRequired) }
func Disabled() Attribute { return Marker(KindDisabled) }
func ReadOnly() Attribute { return Marker(KindReadOnly) }
func Hidden() Attribute { return Marker(KindHidden) }
func Checked() Attribute { return Marker(KindChecked) }
func Multiline() Attribute { return Marker(KindMultiline) }

// Name creates the field name attribute.
func Name(name string) (Attribute, error) {
	return nonEmptyText(KindName, name)
}

// Label creates the field label attribute.
func Label(label string) (Attribute, error) {
	return nonEmptyText(KindLabel, label)
}

// Type creates the type attribute; the value is trimmed and lowercased.
func Type(typ string) (Attribute, error) {
	return nonEmptyText(KindType, strings.ToLower(typ))
}

func ID(id string) (Attribute, error) { return nonEmptyText(KindID, id) }
func Class(class string) Attribute { return New(KindClass, TextValue(class)) }
func Style(style string) Attribute { return New(KindStyle, TextValue(style)) }
func Title(title string) Attribute { return New(KindTitle, TextValue(title)) }
func Hint(hint string) Attribute { return New(KindHint, TextValue(hint)) }
func Placeholder(text string) Attribute { return New(KindPlaceholder, TextValue(text)) }
func ValueOf(v Value) Attribute { return New(KindValue, v) }
func Autocomplete(tokens ...string) Attribute { return New(KindAutocomplete, TextValue(strings.Join(tokens, " "))) }
func Currency(code string) Attribute { return New(KindCurrency, TextValue(strings.ToUpper(strings.TrimSpace(code)))) }
func Algorithm(name string) (Attribute, error) { return nonEmptyText(KindAlgorithm, name) }

// Min creates a lower bound. The bound is kept as text: a number, an amount,
// a date, a date-time or a time depending on the field it constrains.
func Min(v string) Attribute { return New(KindMin, TextValue(v)) }

// Max creates an upper bound, see Min.
func Max(v string) Attribute { return New(KindMax, TextValue(v)) }

// MinInt creates an integer lower bound, typically a length.
func MinInt(n int) Attribute { return New(KindMin, IntValue(int64(n))) }

// MaxInt creates an integer upper bound, typically a length.
func MaxInt(n int) Attribute { return New(KindMax, IntValue(int64(n))) }

// Step creates an increment: a decimal for numbers, an ISO-8601 period or duration for temporal fields.
func Step(v string) Attribute { return New(KindStep, TextValue(v)) }

// Precision creates a decimal places constraint.
func Precision(places int) (Attribute, error) {
	if places < 0 {
		return Attribute{}, newInvalidValue(string(KindPrecision), places)
	}
	return New(KindPrecision, IntValue(int64(places))), nil
}

// Entropy overrides the required passphrase strength.
func Entropy(bits int) (Attribute, error) {
	if bits < 0 {
		return Attribute{}, newInvalidValue(string(KindEntropy), bits)
	}
	return New(KindEntropy, IntValue(int64(bits))), nil
}

// AnyVersionText is the version value accepting UUIDs of every version.
const AnyVersionText = "any"

// Version requires a specific UUID version between 1 and 8.
func Version(v int) (Attribute, error) {
	if v < 1 || v > 8 {
		return Attribute{}, fmt.Errorf("%w: version must be between 1 and 8, got %d", ErrInvalidValue, v)
	}
	return New(KindVersion, IntValue(int64(v))), nil
}

// AnyVersion accepts UUIDs of every version.
func AnyVersion() Attribute {
	return New(KindVersion, TextValue(AnyVersionText))
}

// Pattern creates a regular expression constraint. See CompilePattern for the accepted syntax.
func Pattern(expr string) (Attribute, error) {
	if expr == "" {
		return Attribute{}, fmt.Errorf("%w: the regular expression pattern cannot be empty", ErrInvalidValue)
	}
	if _, err := CompilePattern(expr); err != nil {
		return Attribute{}, err
	}
	return New(KindPattern, TextValue(expr)), nil
}

// URL type values.
const (
	URLAbsolute = "absolute"
	URLRelative = "relative"
	URLAny      = "any"
)

// URLType restricts a URL field to absolute, relative or any URLs.
func URLType(typ string) (Attribute, error) {
	typ = strings.ToLower(strings.TrimSpace(typ))
	switch typ {
	case URLAbsolute, URLRelative, URLAny:
		return New(KindURLType, TextValue(typ)), nil
	}
	return Attribute{}, newInvalidValue(string(KindURLType), typ)
}

// FirstDayOfWeek sets the ISO day number (1 Monday through 7 Sunday) a date picker starts on.
func FirstDayOfWeek(day int) (Attribute, error) {
	if day < 1 || day > 7 {
		return Attribute{}, fmt.Errorf("%w: first day of the week must be between 1 and 7, got %d", ErrInvalidValue, day)
	}
	return New(KindFirstDayOfWeek, IntValue(int64(day))), nil
}

// OptionsOf wraps an option list.
func OptionsOf(o Options) Attribute {
	return New(KindOptions, ListValue(o.entries...))
}

// PolicyOf wraps a password policy.
func PolicyOf(p Policy) Attribute {
	return New(KindPolicy, ListValue(p.rules...))
}

// PolicyNamed resolves a preset name or a CSS-like rule string into a policy attribute.
func PolicyNamed(s string) (Attribute, error) {
	p, err := ParsePolicy(s)
	if err != nil {
		return Attribute{}, err
	}
	return PolicyOf(p), nil
}

func nonEmptyText(kind Kind, s string) (Attribute, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Attribute{}, fmt.Errorf("%w: %s cannot be empty", ErrInvalidValue, kind)
	}
	return New(kind, TextValue(s)), nil
}

// intText converts integers and integer strings.
func intText(kind Kind, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, newInvalidValue(string(kind), s)
	}
	return n, nil
}
