package attribute

import (
	"strings"

	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// Attribute is an immutable named value. Changing an attribute means
// constructing a new one and replacing it in its Set.
type Attribute struct {
	kind  Kind
	name  string
	value Value
}

// New creates a typed attribute named after its kind.
func New(kind Kind, v Value) Attribute {
	return Attribute{kind: kind, name: string(kind), value: v}
}

// Custom creates an ad-hoc attribute identified by name, e.g. "data-test".
func Custom(name string, v Value) (Attribute, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Attribute{}, ErrEmptyName
	}
	return Attribute{kind: KindCustom, name: name, value: v}, nil
}

// Must unwraps a constructor result and panics on error.
// Intended for static attribute tables.
func Must(a Attribute, err error) Attribute {
	if err != nil {
		panic(err)
	}
	return a
}

func (a Attribute) Kind() Kind { return a.kind }
func (a Attribute) Name() string { return a.name }
func (a Attribute) Value() Value { return a.value }
func (a Attribute) Text() string { return a.value.Text() }
func (a Attribute) IsZero() bool { return a.kind == "" }
func (a Attribute) IsCustom() bool { return a.kind == KindCustom }

// Is reports whether the attribute's kind carries every flag in c.
func (a Attribute) Is(c Capability) bool {
	return a.kind.Is(c)
}

// HasName compares names with Unicode case folding.
func (a Attribute) HasName(name string) bool {
	return fold.String(a.name) == fold.String(name)
}

// TextEquals compares the attribute's text value with s using Unicode case folding.
func (a Attribute) TextEquals(s string) bool {
	return fold.String(a.value.Text()) == fold.String(s)
}

// Equal reports whether both attributes share kind, name and value.
// Names are compared case-insensitively.
func (a Attribute) Equal(o Attribute) bool {
	return a.kind == o.kind && a.HasName(o.name) && a.value.Equal(o.value)
}

// Options decodes the attribute value as an option list.
func (a Attribute) Options() Options {
	return Options{entries: a.value.Entries()}
}

// Policy decodes the attribute value as a password policy.
func (a Attribute) Policy() Policy {
	return Policy{rules: a.value.Entries()}
}

// String renders `name="value"`, or the bare name for boolean attributes.
// A boolean attribute holding false renders as an empty string.
func (a Attribute) String() string {
	if a.Is(Boolean) {
		if !a.value.Bool() {
			return ""
		}
		return a.name
	}
	return a.name + `="` + a.value.Text() + `"`
}

// key identifies the attribute for uniqueness inside a Set.
func (a Attribute) key() string {
	if a.kind == KindCustom {
		return "custom:" + fold.String(a.name)
	}
	return string(a.kind)
}
