package field

import (
	"errors"
	"iter"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Collection is an ordered group of fields with unique, case-insensitive names.
type Collection struct {
	fields []*Field
}

// NewCollection adds fields in order; later fields replace earlier ones of the same name.
func NewCollection(fields ...*Field) *Collection {
	c := &Collection{}
	for _, f := range fields {
		c.Add(f)
	}
	return c
}

func (c *Collection) index(name string) int {
	return slices.IndexFunc(c.fields, func(f *Field) bool { return f.HasName(name) })
}

// Add appends f, or replaces the field with the same name in place.
func (c *Collection) Add(f *Field) {
	if f == nil {
		return
	}
	if i := c.index(f.Name()); i >= 0 {
		c.fields[i] = f
		return
	}
	c.fields = append(c.fields, f)
}

func (c *Collection) Find(name string) (*Field, bool) {
	if i := c.index(name); i >= 0 {
		return c.fields[i], true
	}
	return nil, false
}

// Remove deletes the named field and reports whether it was present.
func (c *Collection) Remove(name string) bool {
	i := c.index(name)
	if i < 0 {
		return false
	}
	c.fields = slices.Delete(c.fields, i, i+1)
	return true
}

func (c *Collection) Len() int { return len(c.fields) }

// All iterates fields in order.
func (c *Collection) All() iter.Seq[*Field] {
	return slices.Values(c.fields)
}

func (c *Collection) Names() []string {
	names := make([]string, len(c.fields))
	for i, f := range c.fields {
		names[i] = f.Name()
	}
	return names
}

// Prefill prefills every field named in values.
func (c *Collection) Prefill(values map[string]any) error {
	return c.each(values, (*Field).Prefill)
}

// Input feeds every field named in values. Fields without a value are left
// untouched. Configuration errors of all fields are joined.
func (c *Collection) Input(values map[string]any) error {
	return c.each(values, (*Field).Input)
}

func (c *Collection) each(values map[string]any, apply func(*Field, any) error) error {
	var errs []error
	for _, f := range c.fields {
		v, ok := lookup(values, f)
		if !ok {
			continue
		}
		if err := apply(f, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// lookup prefers an exact key and falls back to a case-insensitive match.
func lookup(values map[string]any, f *Field) (any, bool) {
	if v, ok := values[f.Name()]; ok {
		return v, true
	}
	for k, v := range values {
		if f.HasName(k) {
			return v, true
		}
	}
	return nil, false
}

func (c *Collection) Reset() {
	for _, f := range c.fields {
		f.Reset()
	}
}

// IsValid reports whether every field is valid.
func (c *Collection) IsValid() bool {
	for _, f := range c.fields {
		if !f.IsValid() {
			return false
		}
	}
	return true
}

// Errors collects the messages of invalid fields keyed by field name.
func (c *Collection) Errors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, f := range c.fields {
		if !f.IsValid() {
			msgs := f.Errors()
			if len(msgs) == 0 && f.IsRequired() {
				msgs = []string{RequiredMessage}
			}
			errs.AddMessages(f.Name(), msgs...)
		}
	}
	return errs
}

// Values returns the current value of every field keyed by name.
func (c *Collection) Values() map[string]any {
	out := make(map[string]any, len(c.fields))
	for _, f := range c.fields {
		out[f.Name()] = f.Value()
	}
	return out
}

// Merge returns a new collection with the fields of c followed by the
// fields of other whose names are not in c.
func (c *Collection) Merge(other *Collection) *Collection {
	out := &Collection{fields: slices.Clone(c.fields)}
	for _, f := range other.fields {
		if out.index(f.Name()) < 0 {
			out.fields = append(out.fields, f)
		}
	}
	return out
}

// Filter returns a new collection holding the fields keep accepts.
func (c *Collection) Filter(keep func(*Field) bool) *Collection {
	out := &Collection{}
	for _, f := range c.fields {
		if keep(f) {
			out.fields = append(out.fields, f)
		}
	}
	return out
}
