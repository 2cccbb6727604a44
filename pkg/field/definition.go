package field

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/attribute"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// Definition keys handled by the field itself rather than turned into attributes.
const (
	KeyType  = "type"
	KeyName  = "name"
	KeyLabel = "label"
	KeyValue = "value"
)

// Property is one raw key/value pair of a definition, in source order.
type Property struct {
	Key   string
	Value any
}

// Definition is a decoded field description. Properties keep the order of
// the source document and are turned into attributes with attribute.Parse.
type Definition struct {
	Type       string
	Name       string
	Label      string
	Value      any // prefilled when non-nil
	Properties []Property
}

// DefinitionFromMap splits a plain mapping into a Definition. Map order is
// not stable, so the remaining keys are sorted.
func DefinitionFromMap(m map[string]any) (Definition, error) {
	var def Definition
	for _, key := range slices.Sorted(maps.Keys(m)) {
		if err := def.Put(key, m[key]); err != nil {
			return Definition{}, err
		}
	}
	return def, nil
}

// Put records key. The type, name and label keys must be non-empty strings.
func (d *Definition) Put(key string, raw any) error {
	k := sanitizer.TrimToLower(key)
	switch k {
	case KeyType, KeyName, KeyLabel:
		s, ok := raw.(string)
		s = strings.TrimSpace(s)
		if !ok || s == "" {
			return fmt.Errorf("%w: %q must be a non-empty string", ErrInvalidDefinition, key)
		}
		switch k {
		case KeyType:
			d.Type = sanitizer.ToLower(s)
		case KeyName:
			d.Name = s
		default:
			d.Label = s
		}
	case KeyValue:
		d.Value = raw
	default:
		d.Properties = append(d.Properties, Property{Key: key, Value: raw})
	}
	return nil
}

func (d Definition) validate() error {
	var missing []string
	for key, v := range map[string]string{KeyType: d.Type, KeyName: d.Name, KeyLabel: d.Label} {
		if v == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("%w: missing %s", ErrInvalidDefinition, strings.Join(missing, ", "))
	}
	return nil
}

// FromDefinition builds and prefills a field from a definition. Boolean
// properties set to false remove the marker, so "readonly: false" makes a
// link field editable.
func (r *Registry) FromDefinition(def Definition) (*Field, error) {
	if err := def.validate(); err != nil {
		return nil, err
	}

	var (
		attrs []attribute.Attribute
		off   []attribute.Kind
	)
	for _, p := range def.Properties {
		a, ok, err := attribute.Parse(p.Key, p.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidDefinition, def.Name, err)
		}
		if !ok {
			if kind, known := attribute.KindForKey(p.Key); known {
				off = append(off, kind)
			}
			continue
		}
		attrs = append(attrs, a)
	}

	f, err := r.New(def.Type, def.Name, def.Label, attrs...)
	if err != nil {
		return nil, err
	}
	f.attrs.Remove(off...)

	if def.Value != nil {
		if err := f.Prefill(def.Value); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// FromDefinition builds a field with a default registry.
func FromDefinition(def Definition) (*Field, error) {
	return NewRegistry().FromDefinition(def)
}
