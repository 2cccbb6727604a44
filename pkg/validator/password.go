package validator

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/dmitrymomot/formkit/pkg/attribute"
)

// Password validates passwords against length bounds and a character class policy.
type Password struct {
	defaultPolicy string
	sequenceRules bool
}

// NewPassword uses cfg.PasswordPolicy when a field has no policy attribute.
// The consecutive, sequential and either rules only run with cfg.PasswordSequenceRules.
func NewPassword(cfg Config) Password {
	return Password{defaultPolicy: cfg.PasswordPolicy, sequenceRules: cfg.PasswordSequenceRules}
}

type passwordConstraints struct {
	length bounds
	policy attribute.Policy
}

func (p Password) constraints(attrs *attribute.Set) (passwordConstraints, error) {
	var c passwordConstraints
	var err error
	if c.length, err = lengthBounds(attrs, bounds{}); err != nil {
		return c, err
	}
	if a, ok := attrs.Find(attribute.KindPolicy); ok {
		c.policy = a.Policy()
		return c, nil
	}
	if c.policy, err = attribute.ParsePolicy(p.defaultPolicy); err != nil {
		return c, misconfigured(attribute.KindPolicy, "default policy: %v", err)
	}
	return c, nil
}

func (p Password) CheckConstraints(attrs *attribute.Set) error {
	_, err := p.constraints(orEmpty(attrs))
	return err
}

var classRules = []struct {
	rule  string
	noun  string
	match func(rune) bool
}{
	{attribute.RuleLowercase, "lowercase letter(s)", unicode.IsLower},
	{attribute.RuleUppercase, "uppercase letter(s)", unicode.IsUpper},
	{attribute.RuleNumbers, "number(s)", unicode.IsNumber},
	{attribute.RuleSymbols, "symbol(s)", isSymbol},
}

func isSymbol(r rune) bool { return unicode.IsSymbol(r) || unicode.IsPunct(r) }

func (p Password) Validate(candidate any, attrs *attribute.Set) (Result, error) {
	c, err := p.constraints(orEmpty(attrs))
	if err != nil {
		return Result{}, err
	}
	value, ok := stringOf(candidate)
	if !ok {
		return Failed(candidate, "Password must be a string."), nil
	}

	n := length(value)
	rules := []Rule{
		{
			Check:   func() bool { return !c.length.hasMin || n >= c.length.min },
			Message: fmt.Sprintf("Password must be at least %d characters long.", c.length.min),
		},
		{
			Check:   func() bool { return !c.length.hasMax || n <= c.length.max },
			Message: fmt.Sprintf("Password cannot be more than %d characters long.", c.length.max),
		},
	}
	either := c.policy.Either()
	for _, cr := range classRules {
		want, ok := c.policy.Count(cr.rule)
		if !ok || (p.sequenceRules && slices.Contains(either, cr.rule)) {
			continue
		}
		rules = append(rules, Rule{
			Check:   func() bool { return countFunc(value, cr.match) >= want },
			Message: fmt.Sprintf("Password must contain at least %d %s.", want, cr.noun),
		})
	}
	if p.sequenceRules {
		rules = append(rules, sequenceRules(value, c.policy)...)
	}
	return Guess(value, Apply(rules...)), nil
}

// sequenceRules covers the consecutive and sequential limits and the either group.
// Rules named by either are only checked as part of that group.
func sequenceRules(value string, policy attribute.Policy) []Rule {
	either := policy.Either()
	checks := map[string]func() bool{
		attribute.RuleConsecutive: func() bool {
			limit, ok := policy.Count(attribute.RuleConsecutive)
			return !ok || longestRun(value, 0) <= limit
		},
		attribute.RuleSequential: func() bool {
			limit, ok := policy.Count(attribute.RuleSequential)
			return !ok || max(longestRun(value, 1), longestRun(value, -1)) <= limit
		},
	}
	for _, cr := range classRules {
		checks[cr.rule] = func() bool {
			want, ok := policy.Count(cr.rule)
			if !ok {
				want = 1
			}
			return countFunc(value, cr.match) >= want
		}
	}

	var rules []Rule
	if limit, ok := policy.Count(attribute.RuleConsecutive); ok && !slices.Contains(either, attribute.RuleConsecutive) {
		rules = append(rules, Rule{
			Check:   checks[attribute.RuleConsecutive],
			Message: fmt.Sprintf("Password cannot contain more than %d identical characters in a row.", limit),
		})
	}
	if limit, ok := policy.Count(attribute.RuleSequential); ok && !slices.Contains(either, attribute.RuleSequential) {
		rules = append(rules, Rule{
			Check:   checks[attribute.RuleSequential],
			Message: fmt.Sprintf("Password cannot contain more than %d sequential characters.", limit),
		})
	}
	if len(either) > 0 {
		rules = append(rules, Rule{
			Check: func() bool {
				return slices.ContainsFunc(either, func(rule string) bool {
					check, ok := checks[rule]
					return ok && check()
				})
			},
			Message: fmt.Sprintf("Password must satisfy at least one of: %s.", strings.Join(either, ", ")),
		})
	}
	return rules
}

func countFunc(s string, match func(rune) bool) int {
	n := 0
	for _, r := range s {
		if match(r) {
			n++
		}
	}
	return n
}

// longestRun returns the longest run of characters where each one differs
// from the previous by delta code points. Delta 0 finds repeated characters.
func longestRun(s string, delta rune) int {
	longest, run := 0, 0
	var prev rune
	for i, r := range []rune(s) {
		if i > 0 && r-prev == delta {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
		prev = r
	}
	return longest
}
