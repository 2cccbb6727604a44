package attribute

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Options is an ordered key to label mapping used by enumerated fields.
type Options struct {
	entries []Entry
}

// NewOptions builds an option list. Keys and labels must be non-empty;
// a repeated key replaces the earlier label in place.
func NewOptions(entries ...Entry) (Options, error) {
	var o Options
	for _, e := range entries {
		var err error
		if o, err = o.With(e.Key, e.Value); err != nil {
			return Options{}, err
		}
	}
	return o, nil
}

// With returns a copy with key set to label.
func (o Options) With(key, label string) (Options, error) {
	if strings.TrimSpace(key) == "" {
		return Options{}, fmt.Errorf("%w: name for enum value must not be empty", ErrInvalidValue)
	}
	if strings.TrimSpace(label) == "" {
		return Options{}, fmt.Errorf("%w: label for enum value %q must not be empty", ErrInvalidValue, key)
	}
	out := Options{entries: slices.Clone(o.entries)}
	if i := o.index(key); i >= 0 {
		out.entries[i].Value = label
		return out, nil
	}
	out.entries = append(out.entries, Entry{Key: key, Value: label})
	return out, nil
}

// Without returns a copy with key removed.
func (o Options) Without(key string) Options {
	out := Options{entries: slices.Clone(o.entries)}
	if i := o.index(key); i >= 0 {
		out.entries = slices.Delete(out.entries, i, i+1)
	}
	return out
}

// Has reports whether key is a declared option.
func (o Options) Has(key string) bool {
	return o.index(key) >= 0
}

// Label returns the label for key.
func (o Options) Label(key string) (string, bool) {
	if i := o.index(key); i >= 0 {
		return o.entries[i].Value, true
	}
	return "", false
}

func (o Options) Len() int { return len(o.entries) }

// Keys returns the option keys in declaration order.
func (o Options) Keys() []string {
	keys := make([]string, len(o.entries))
	for i, e := range o.entries {
		keys[i] = e.Key
	}
	return keys
}

// All iterates key/label pairs in declaration order.
func (o Options) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range o.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

func (o Options) index(key string) int {
	return slices.IndexFunc(o.entries, func(e Entry) bool { return e.Key == key })
}
