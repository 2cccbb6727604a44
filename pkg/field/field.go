package field

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/attribute"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/statemachine"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// RequiredMessage is the error reported for required fields without a value.
const RequiredMessage = "This field is required."

// Field is a single form field: its attributes, its current value and the
// lifecycle that led to it. A Field owns its attribute set and is not safe
// for concurrent use.
type Field struct {
	typ       string
	attrs     *attribute.Set
	validator validator.Validator
	logger    *slog.Logger
	machine   *statemachine.SimpleStateMachine

	value    any
	original any
	errors   []string

	inputGiven      bool
	prefilled       bool
	valueHasChanged bool
}

func newField(typ string, attrs *attribute.Set, v validator.Validator, log *slog.Logger) *Field {
	f := &Field{typ: typ, attrs: attrs, validator: v}
	f.logger = log.With(logger.Field(f.Name()), logger.FieldType(typ))
	f.machine = newLifecycle(f.logger, f.restore)
	return f
}

func (f *Field) Type() string  { return f.typ }
func (f *Field) Name() string  { return f.text(attribute.KindName) }
func (f *Field) Label() string { return f.text(attribute.KindLabel) }

func (f *Field) text(kind attribute.Kind) string {
	s, _ := f.attrs.Text(kind)
	return s
}

// Attributes returns a copy of the field's attribute set.
func (f *Field) Attributes() *attribute.Set { return f.attrs.Clone() }

// HasName compares the field name case-insensitively.
func (f *Field) HasName(name string) bool {
	a, ok := f.attrs.Find(attribute.KindName)
	return ok && a.TextEquals(name)
}

func (f *Field) IsRequired() bool { return f.attrs.Contains(attribute.KindRequired) }
func (f *Field) IsDisabled() bool { return f.attrs.Contains(attribute.KindDisabled) }
func (f *Field) IsReadOnly() bool { return f.attrs.Contains(attribute.KindReadOnly) }

// State returns the current lifecycle state.
func (f *Field) State() statemachine.State { return f.machine.Current() }

func (f *Field) Value() any            { return f.value }
func (f *Field) OriginalValue() any    { return f.original }
func (f *Field) InputGiven() bool      { return f.inputGiven }
func (f *Field) IsPrefilled() bool     { return f.prefilled }
func (f *Field) ValueHasChanged() bool { return f.valueHasChanged }
func (f *Field) ValueIsDefault() bool  { return !f.valueHasChanged }

// Errors returns a copy of the current validation messages.
func (f *Field) Errors() []string { return slices.Clone(f.errors) }
func (f *Field) HasErrors() bool  { return len(f.errors) > 0 }

// AddError appends a message, for checks that live outside the field type.
func (f *Field) AddError(msg string) *Field {
	f.errors = append(f.errors, msg)
	return f
}

func (f *Field) fire(e statemachine.Event, data any) error {
	if err := f.machine.Fire(e, data); err != nil {
		return fmt.Errorf("%w: %s field %q: %w", ErrInvalidTransition, e.Name(), f.Name(), err)
	}
	return nil
}

// Prefill sets the original value the field starts from, validated with the
// required marker suspended. A nil value un-prefills the field. Prefilling
// an already prefilled field is ignored; prefilling after input fails with
// ErrInvalidTransition.
func (f *Field) Prefill(v any) error {
	if v == nil {
		if f.machine.Is(StatePristine) {
			return nil
		}
		if err := f.fire(EventPrefill, nil); err != nil {
			return err
		}
		f.value, f.original, f.errors = nil, nil, nil
		f.prefilled, f.valueHasChanged = false, false
		f.commit(nil)
		return nil
	}
	if f.prefilled {
		return nil
	}
	if !f.machine.CanFire(EventPrefill, v) {
		return f.fire(EventPrefill, v)
	}

	if err := f.setValue(v, false); err != nil {
		return err
	}
	f.original = f.value
	f.prefilled = true
	f.valueHasChanged = false
	return f.fire(EventPrefill, v)
}

// DefaultTo is an alias of Prefill: the value used when no input is given.
func (f *Field) DefaultTo(v any) error { return f.Prefill(v) }

// Input applies a user supplied value. Disabled and read-only fields ignore
// input. Data problems are recorded as field errors; the returned error is
// reserved for misconfigured constraints.
func (f *Field) Input(v any) error {
	if f.IsDisabled() || f.IsReadOnly() {
		f.logger.Debug("input ignored", slog.Bool("disabled", f.IsDisabled()), slog.Bool("readonly", f.IsReadOnly()))
		return nil
	}
	if err := f.fire(EventInput, nil); err != nil {
		return err
	}
	f.inputGiven = true

	if err := f.setValue(v, f.IsRequired()); err != nil {
		_ = f.fire(EventReject, nil)
		return err
	}
	if f.HasErrors() {
		f.logger.Debug("input rejected", logger.Messages(f.errors))
		return f.fire(EventReject, nil)
	}
	return f.fire(EventAccept, nil)
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// setValue stores the validated candidate. Rejected values are kept for
// round-tripping but only accepted ones reach the value attribute.
func (f *Field) setValue(v any, required bool) error {
	if isEmpty(v) {
		f.value = nil
		f.errors = nil
		if required {
			f.errors = []string{RequiredMessage}
		} else {
			f.commit(nil)
		}
		f.valueHasChanged = f.original != nil
		return nil
	}

	res, err := f.validator.Validate(v, f.attrs.Constraints())
	if err != nil {
		return fmt.Errorf("field %q: %w", f.Name(), err)
	}
	f.value = res.Value
	f.errors = slices.Clone(res.Errors)
	f.valueHasChanged = !reflect.DeepEqual(f.value, f.original)
	if res.Valid && len(f.errors) == 0 {
		f.commit(f.value)
	}
	return nil
}

// commit replaces the value attribute with v, or removes it for nil.
// Values without a lossless text form, such as multi-select lists, are
// left out of the attribute set.
func (f *Field) commit(v any) {
	if v == nil {
		f.attrs.Remove(attribute.KindValue)
		return
	}
	a, ok, err := attribute.Parse(string(attribute.KindValue), v)
	if err != nil || !ok {
		f.attrs.Remove(attribute.KindValue)
		return
	}
	_ = f.attrs.Set(a)
}

// Reset returns the field to its prefilled value, or to pristine when it was never prefilled.
func (f *Field) Reset() *Field {
	// reset is defined from every state
	_ = f.fire(EventReset, f.original)
	return f
}

// restore runs as the action of every reset transition.
func (f *Field) restore(_, _ statemachine.State, _ statemachine.Event, _ any) error {
	f.value = f.original
	f.errors = nil
	f.inputGiven = false
	f.valueHasChanged = false
	f.prefilled = f.original != nil
	f.commit(f.original)
	return nil
}

// Clear drops the current value and validates the absence of one, which
// reports the required error on required fields. The original value is kept
// for Reset.
func (f *Field) Clear() *Field {
	required := f.IsRequired()
	_ = f.fire(EventClear, required)
	_ = f.setValue(nil, required)
	f.commit(nil)
	f.inputGiven = false
	return f
}

// IsValid reports whether the field can be submitted as is.
func (f *Field) IsValid() bool {
	if f.IsDisabled() {
		return true
	}
	if f.inputGiven {
		return !f.HasErrors() ||
			(f.prefilled && !f.valueHasChanged) ||
			(!f.IsRequired() && f.value == nil)
	}
	return !f.IsRequired()
}

// Constrain sets attributes on the field and re-checks its constraints.
// On failure the field is left unchanged.
func (f *Field) Constrain(attrs ...attribute.Attribute) error {
	next := f.attrs.Clone()
	if err := next.Set(attrs...); err != nil {
		return fmt.Errorf("field %q: %w", f.Name(), err)
	}
	if err := f.validator.CheckConstraints(next.Constraints()); err != nil {
		return fmt.Errorf("field %q: %w", f.Name(), err)
	}
	f.attrs = next
	return nil
}

// marker toggles a boolean attribute. The kinds used here are on every allow-list.
func (f *Field) marker(kind attribute.Kind, on bool) *Field {
	if on {
		_ = f.attrs.Add(attribute.Marker(kind))
	} else {
		f.attrs.Remove(kind)
	}
	return f
}

func (f *Field) Disable() *Field  { return f.marker(attribute.KindDisabled, true) }
func (f *Field) Enable() *Field   { return f.marker(attribute.KindDisabled, false) }
func (f *Field) ReadOnly() *Field { return f.marker(attribute.KindReadOnly, true) }
func (f *Field) Editable() *Field { return f.marker(attribute.KindReadOnly, false) }
func (f *Field) Require() *Field  { return f.marker(attribute.KindRequired, true) }
func (f *Field) Optional() *Field { return f.marker(attribute.KindRequired, false) }

func (f *Field) String() string {
	return fmt.Sprintf("%s %q (%s)", f.typ, f.Name(), f.machine.Current().Name())
}
