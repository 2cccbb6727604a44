package attribute

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Policy rule keys.
const (
	RuleLowercase   = "lowercase"
	RuleUppercase   = "uppercase"
	RuleNumbers     = "numbers"
	RuleSymbols     = "symbols"
	RuleLetters     = "letters"
	RuleEither      = "either"
	RuleConsecutive = "consecutive"
	RuleSequential  = "sequential"
)

// Policy preset names.
const (
	PolicyStrict       = "strict"
	PolicyModerate     = "moderate"
	PolicyBasic        = "basic"
	PolicyRelaxed      = "relaxed"
	PolicyUnrestricted = "unrestricted"
)

var (
	policyKeyRegex   = regexp.MustCompile(`^[a-z-]+$`)
	policyValueRegex = regexp.MustCompile(`^[a-zA-Z0-9,-]+$`)
)

// Policy is an ordered set of password composition rules, written in a
// CSS-like form: "lowercase: 1; numbers: 2".
type Policy struct {
	rules []Entry
}

// Strict requires every character class and limits repeated and sequential runs.
func Strict() Policy {
	return mustPolicy(
		Entry{RuleNumbers, "1"},
		Entry{RuleLetters, "1"},
		Entry{RuleSymbols, "1"},
		Entry{RuleConsecutive, "3"},
		Entry{RuleSequential, "2"},
		Entry{RuleEither, "consecutive,sequential"},
	)
}

// Moderate requires at least one of each character class.
func Moderate() Policy {
	return mustPolicy(
		Entry{RuleNumbers, "1"},
		Entry{RuleLetters, "1"},
		Entry{RuleSymbols, "1"},
	)
}

// Basic requires upper and lower case letters plus a number or a symbol.
func Basic() Policy {
	return mustPolicy(
		Entry{RuleLetters, "1"},
		Entry{RuleEither, "numbers,symbols"},
	)
}

// Relaxed requires one uppercase and one lowercase letter.
func Relaxed() Policy {
	return mustPolicy(Entry{RuleLetters, "1"})
}

// Unrestricted allows any combination of characters.
func Unrestricted() Policy {
	return Policy{}
}

// Preset returns the named preset policy.
func Preset(name string) (Policy, bool) {
	switch name {
	case PolicyStrict:
		return Strict(), true
	case PolicyModerate:
		return Moderate(), true
	case PolicyBasic:
		return Basic(), true
	case PolicyRelaxed:
		return Relaxed(), true
	case PolicyUnrestricted, "":
		return Unrestricted(), true
	}
	return Policy{}, false
}

// ParsePolicy resolves a preset name or parses a CSS-like rule string.
func ParsePolicy(s string) (Policy, error) {
	s = strings.TrimSpace(s)
	if p, ok := Preset(s); ok {
		return p, nil
	}

	var p Policy
	for part := range strings.SplitSeq(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			return Policy{}, fmt.Errorf("%w: the policy must be a string of CSS-like properties, got %q", ErrInvalidValue, s)
		}
		var err error
		if p, err = p.With(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return Policy{}, err
		}
	}
	return p, nil
}

// NewPolicy builds a policy from ordered rules.
func NewPolicy(rules ...Entry) (Policy, error) {
	var p Policy
	for _, r := range rules {
		var err error
		if p, err = p.With(r.Key, r.Value); err != nil {
			return Policy{}, err
		}
	}
	return p, nil
}

// With returns a copy with the rule set. "letters" sets both uppercase and lowercase.
func (p Policy) With(key, value string) (Policy, error) {
	if !policyKeyRegex.MatchString(key) {
		return Policy{}, fmt.Errorf("%w: policy property %q must be lowercase letters and hyphens", ErrInvalidValue, key)
	}
	if !policyValueRegex.MatchString(value) {
		return Policy{}, fmt.Errorf("%w: policy value %q must be alphanumeric characters and hyphens", ErrInvalidValue, value)
	}

	switch key {
	case RuleLowercase, RuleUppercase, RuleNumbers, RuleSymbols, RuleLetters, RuleConsecutive, RuleSequential:
		if n, err := strconv.Atoi(value); err != nil || n < 0 {
			return Policy{}, fmt.Errorf("%w: policy %s must be a non-negative integer, got %q", ErrInvalidValue, key, value)
		}
	case RuleEither:
		for name := range strings.SplitSeq(value, ",") {
			switch name {
			case RuleLowercase, RuleUppercase, RuleNumbers, RuleSymbols, RuleConsecutive, RuleSequential:
			default:
				return Policy{}, fmt.Errorf("%w: policy either references unknown rule %q", ErrInvalidValue, name)
			}
		}
	default:
		return Policy{}, fmt.Errorf("%w: unknown policy property %q", ErrInvalidValue, key)
	}

	out := Policy{rules: slices.Clone(p.rules)}
	if key == RuleLetters {
		out.set(RuleUppercase, value)
		out.set(RuleLowercase, value)
		return out, nil
	}
	out.set(key, value)
	return out, nil
}

// Without returns a copy with the rule removed.
func (p Policy) Without(key string) Policy {
	out := Policy{rules: slices.Clone(p.rules)}
	if i := out.index(key); i >= 0 {
		out.rules = slices.Delete(out.rules, i, i+1)
	}
	return out
}

// Requires reports whether the rule is present.
func (p Policy) Requires(key string) bool {
	return p.index(key) >= 0
}

// Find returns the raw rule value.
func (p Policy) Find(key string) (string, bool) {
	if i := p.index(key); i >= 0 {
		return p.rules[i].Value, true
	}
	return "", false
}

// Count returns a numeric rule value.
func (p Policy) Count(key string) (int, bool) {
	v, ok := p.Find(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Either returns the rule names of which at least one must hold.
func (p Policy) Either() []string {
	v, ok := p.Find(RuleEither)
	if !ok {
		return nil
	}
	return strings.Split(v, ",")
}

// Entries returns the rules in declaration order.
func (p Policy) Entries() []Entry { return slices.Clone(p.rules) }

func (p Policy) Len() int      { return len(p.rules) }
func (p Policy) IsEmpty() bool { return len(p.rules) == 0 }

// String renders the CSS-like form.
func (p Policy) String() string {
	return ListValue(p.rules...).Text()
}

func (p *Policy) set(key, value string) {
	if i := p.index(key); i >= 0 {
		p.rules[i].Value = value
		return
	}
	p.rules = append(p.rules, Entry{Key: key, Value: value})
}

func (p Policy) index(key string) int {
	return slices.IndexFunc(p.rules, func(e Entry) bool { return e.Key == key })
}

func mustPolicy(rules ...Entry) Policy {
	p, err := NewPolicy(rules...)
	if err != nil {
		panic(err)
	}
	return p
}
