package field

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/attribute"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Registry maps field type names to their schema and builds fields from them.
// A Registry is built fresh by NewRegistry and holds no shared state.
type Registry struct {
	cfg     Config
	logger  *slog.Logger
	schemas map[string]Schema
}

// Option configures a Registry.
type Option func(*Registry)

// WithConfig sets the validator defaults used by every field of the registry.
func WithConfig(cfg Config) Option {
	return func(r *Registry) {
		r.cfg = cfg
	}
}

// WithLogger sets the logger handed to fields. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithType registers or replaces a field type.
func WithType(typ string, s Schema) Option {
	return func(r *Registry) {
		r.schemas[typ] = s
	}
}

// NewRegistry creates a registry holding the built-in field types.
// Without WithLogger, fields log nothing.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		cfg:     DefaultConfig(),
		logger:  logger.Discard(),
		schemas: builtinSchemas(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the registry configuration.
func (r *Registry) Config() Config { return r.cfg }

// Types lists the registered type names alphabetically.
func (r *Registry) Types() []string {
	return slices.Sorted(maps.Keys(r.schemas))
}

// Schema returns a copy of the schema registered for typ.
func (r *Registry) Schema(typ string) (Schema, bool) {
	s, ok := r.schemas[typ]
	if !ok {
		return Schema{}, false
	}
	s.Allowed = slices.Clone(s.Allowed)
	return s, true
}

// Allowed returns every kind a field of typ admits: the common kinds followed by the type specific ones.
func (r *Registry) Allowed(typ string) ([]attribute.Kind, error) {
	s, ok := r.schemas[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}
	return slices.Concat(commonKinds, s.Allowed), nil
}

func (r *Registry) validatorFor(typ string, s Schema) (validator.Validator, error) {
	if s.Validator != nil {
		return s.Validator, nil
	}
	v, err := validator.New(typ, r.cfg.Config)
	if err != nil {
		return nil, errors.Join(ErrUnknownType, err)
	}
	return v, nil
}

// New builds a field of the given type. The type defaults are applied first
// and attrs replace them. The resulting constraints are checked before the
// field is returned.
func (r *Registry) New(typ, name, label string, attrs ...attribute.Attribute) (*Field, error) {
	s, ok := r.schemas[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}
	v, err := r.validatorFor(typ, s)
	if err != nil {
		return nil, err
	}

	nameAttr, err := attribute.Name(name)
	if err != nil {
		return nil, fmt.Errorf("field name: %w", err)
	}
	labelAttr, err := attribute.Label(label)
	if err != nil {
		return nil, fmt.Errorf("field %q label: %w", name, err)
	}
	typeAttr, err := attribute.Type(typ)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", name, err)
	}

	set := attribute.NewSet(slices.Concat(commonKinds, s.Allowed)...)
	if err := set.Set(nameAttr, labelAttr, typeAttr, attribute.Autocomplete("off")); err != nil {
		return nil, err
	}
	if s.Defaults != nil {
		if err := set.Set(s.Defaults(r.cfg.Config)...); err != nil {
			return nil, fmt.Errorf("field %q defaults: %w", name, err)
		}
	}
	if err := set.Set(attrs...); err != nil {
		return nil, fmt.Errorf("field %q: %w", name, err)
	}
	if err := v.CheckConstraints(set.Constraints()); err != nil {
		return nil, fmt.Errorf("field %q: %w", name, err)
	}

	return newField(typ, set, v, r.logger), nil
}

// New builds a field using a registry with the built-in types and default configuration.
func New(typ, name, label string, attrs ...attribute.Attribute) (*Field, error) {
	return NewRegistry().New(typ, name, label, attrs...)
}
