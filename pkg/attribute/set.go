package attribute

import (
	"iter"
	"slices"
	"strings"
)

// Set is an ordered collection of attributes, unique by kind (custom
// attributes are unique by name), with an optional allow-list of kinds.
// An empty allow-list admits every kind.
type Set struct {
	allowed []Kind
	attrs   []Attribute
}

// NewSet creates a set restricted to the given kinds; without kinds it is unrestricted.
func NewSet(allowed ...Kind) *Set {
	s := &Set{}
	s.Allow(allowed...)
	return s
}

// Of creates an unrestricted set holding attrs, ignoring duplicates.
func Of(attrs ...Attribute) *Set {
	s := &Set{}
	_ = s.Add(attrs...)
	return s
}

// Allow adds kinds to the allow-list. Allowing on an unrestricted set makes it restricted.
func (s *Set) Allow(kinds ...Kind) *Set {
	for _, k := range kinds {
		if !slices.Contains(s.allowed, k) {
			s.allowed = append(s.allowed, k)
		}
	}
	return s
}

// Disallow removes kinds from the allow-list. Present attributes are never evicted.
func (s *Set) Disallow(kinds ...Kind) *Set {
	s.allowed = slices.DeleteFunc(s.allowed, func(k Kind) bool {
		return slices.Contains(kinds, k)
	})
	return s
}

// Allowed returns a copy of the allow-list.
func (s *Set) Allowed() []Kind {
	return slices.Clone(s.allowed)
}

// IsAllowed reports whether every kind is admitted.
func (s *Set) IsAllowed(kinds ...Kind) bool {
	if len(s.allowed) == 0 {
		return true
	}
	for _, k := range kinds {
		if !slices.Contains(s.allowed, k) {
			return false
		}
	}
	return true
}

func (s *Set) assertAllowed(attrs ...Attribute) error {
	var denied []Kind
	for _, a := range attrs {
		if !s.IsAllowed(a.kind) && !slices.Contains(denied, a.kind) {
			denied = append(denied, a.kind)
		}
	}
	if len(denied) > 0 {
		return newNotAllowed(denied)
	}
	return nil
}

// Add inserts attributes not yet present. Attributes already present by kind
// (or by name for custom attributes) are ignored. Every attribute is checked
// against the allow-list before the set is modified.
func (s *Set) Add(attrs ...Attribute) error {
	if err := s.assertAllowed(attrs...); err != nil {
		return err
	}
	for _, a := range attrs {
		if a.IsZero() {
			continue
		}
		if s.indexByKey(a.key()) < 0 {
			s.attrs = append(s.attrs, a)
		}
	}
	return nil
}

// Set replaces attributes of the same kind in place, or appends them.
func (s *Set) Set(attrs ...Attribute) error {
	if err := s.assertAllowed(attrs...); err != nil {
		return err
	}
	for _, a := range attrs {
		if a.IsZero() {
			continue
		}
		if i := s.indexByKey(a.key()); i >= 0 {
			s.attrs[i] = a
			continue
		}
		s.attrs = append(s.attrs, a)
	}
	return nil
}

// Replace swaps in a only if an attribute of the same kind is present.
func (s *Set) Replace(a Attribute) bool {
	if i := s.indexByKey(a.key()); i >= 0 {
		s.attrs[i] = a
		return true
	}
	return false
}

// Remove deletes attributes of the given kinds. KindCustom removes every custom attribute.
func (s *Set) Remove(kinds ...Kind) *Set {
	s.attrs = slices.DeleteFunc(s.attrs, func(a Attribute) bool {
		return slices.Contains(kinds, a.kind)
	})
	return s
}

// RemoveByName deletes attributes whose name matches case-insensitively.
func (s *Set) RemoveByName(names ...string) *Set {
	s.attrs = slices.DeleteFunc(s.attrs, func(a Attribute) bool {
		return slices.ContainsFunc(names, a.HasName)
	})
	return s
}

// Find returns the attribute of the given kind.
func (s *Set) Find(kind Kind) (Attribute, bool) {
	if i := s.IndexByKind(kind); i >= 0 {
		return s.attrs[i], true
	}
	return Attribute{}, false
}

// Get returns the attribute of the given kind or ErrNotFound.
func (s *Set) Get(kind Kind) (Attribute, error) {
	if a, ok := s.Find(kind); ok {
		return a, nil
	}
	return Attribute{}, &NotFoundError{Kind: kind}
}

// FindByName returns the attribute whose name matches case-insensitively.
func (s *Set) FindByName(name string) (Attribute, bool) {
	if i := s.IndexByName(name); i >= 0 {
		return s.attrs[i], true
	}
	return Attribute{}, false
}

// FindOrCreate returns the attribute of the given kind, creating and storing it when absent.
func (s *Set) FindOrCreate(kind Kind, create func() (Attribute, error)) (Attribute, error) {
	if !s.IsAllowed(kind) {
		return Attribute{}, newNotAllowed([]Kind{kind})
	}
	if a, ok := s.Find(kind); ok {
		return a, nil
	}
	a, err := create()
	if err != nil {
		return Attribute{}, err
	}
	if err := s.Add(a); err != nil {
		return Attribute{}, err
	}
	return a, nil
}

// Text returns the text form of the attribute of the given kind.
func (s *Set) Text(kind Kind) (string, bool) {
	a, ok := s.Find(kind)
	if !ok {
		return "", false
	}
	return a.Text(), true
}

// Int returns the integer value of the attribute of the given kind.
// The second result is false when the attribute is absent.
func (s *Set) Int(kind Kind) (int64, bool, error) {
	a, ok := s.Find(kind)
	if !ok {
		return 0, false, nil
	}
	n, isInt := a.value.Int()
	if !isInt {
		return 0, true, newInvalidValue(string(kind), a.Text())
	}
	return n, true, nil
}

// IndexByKind returns the position of the first attribute of the given kind, or -1.
func (s *Set) IndexByKind(kind Kind) int {
	return slices.IndexFunc(s.attrs, func(a Attribute) bool { return a.kind == kind })
}

// IndexByName returns the position of the attribute with a matching name, or -1.
func (s *Set) IndexByName(name string) int {
	return slices.IndexFunc(s.attrs, func(a Attribute) bool { return a.HasName(name) })
}

// IndexOf returns the position of an attribute equal to a, or -1.
func (s *Set) IndexOf(a Attribute) int {
	return slices.IndexFunc(s.attrs, a.Equal)
}

func (s *Set) indexByKey(key string) int {
	return slices.IndexFunc(s.attrs, func(a Attribute) bool { return a.key() == key })
}

// Contains reports whether an attribute of the given kind is present.
func (s *Set) Contains(kind Kind) bool { return s.IndexByKind(kind) >= 0 }

// ContainsName reports whether an attribute with a matching name is present.
func (s *Set) ContainsName(name string) bool { return s.IndexByName(name) >= 0 }

// ContainsAttribute reports whether an attribute equal to a is present.
func (s *Set) ContainsAttribute(a Attribute) bool { return s.IndexOf(a) >= 0 }

// Subset returns a new set with the same allow-list holding the present attributes of the given kinds.
func (s *Set) Subset(kinds ...Kind) *Set {
	out := &Set{allowed: slices.Clone(s.allowed)}
	for _, k := range kinds {
		if a, ok := s.Find(k); ok {
			out.attrs = append(out.attrs, a)
		}
	}
	return out
}

// Constraints returns a new set holding only constraint attributes.
func (s *Set) Constraints() *Set {
	out := &Set{allowed: slices.Clone(s.allowed)}
	for _, a := range s.attrs {
		if a.Is(Constraint) {
			out.attrs = append(out.attrs, a)
		}
	}
	return out
}

func (s *Set) Len() int      { return len(s.attrs) }
func (s *Set) IsEmpty() bool { return len(s.attrs) == 0 }

// All iterates attributes in insertion order.
func (s *Set) All() iter.Seq[Attribute] {
	return func(yield func(Attribute) bool) {
		for _, a := range s.attrs {
			if !yield(a) {
				return
			}
		}
	}
}

// Slice returns a copy of the attributes in insertion order.
func (s *Set) Slice() []Attribute {
	return slices.Clone(s.attrs)
}

// Clone returns an independent copy including the allow-list.
func (s *Set) Clone() *Set {
	return &Set{allowed: slices.Clone(s.allowed), attrs: slices.Clone(s.attrs)}
}

// Clear removes every attribute; the allow-list is kept.
func (s *Set) Clear() *Set {
	s.attrs = nil
	return s
}

// String renders the attributes separated by spaces, skipping false booleans.
func (s *Set) String() string {
	parts := make([]string, 0, len(s.attrs))
	for _, a := range s.attrs {
		if str := a.String(); str != "" {
			parts = append(parts, str)
		}
	}
	return strings.Join(parts, " ")
}
