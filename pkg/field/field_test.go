package field_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/attribute"
	"github.com/dmitrymomot/formkit/pkg/field"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func newField(t *testing.T, typ string, attrs ...attribute.Attribute) *field.Field {
	t.Helper()
	f, err := field.New(typ, "subject", "Subject", attrs...)
	require.NoError(t, err)
	return f
}

func TestField_Required(t *testing.T) {
	t.Parallel()

	t.Run("empty input short circuits", func(t *testing.T) {
		f := newField(t, validator.TypeText, attribute.Required(), attribute.MinInt(3))
		for _, v := range []any{nil, ""} {
			require.NoError(t, f.Input(v))
			assert.Equal(t, []string{field.RequiredMessage}, f.Errors())
			assert.Nil(t, f.Value())
			assert.False(t, f.IsValid())
			assert.Equal(t, field.StateInvalid, f.State())
		}
	})

	t.Run("optional empty input is valid", func(t *testing.T) {
		f := newField(t, validator.TypeText, attribute.MinInt(3))
		require.NoError(t, f.Input(""))
		assert.Empty(t, f.Errors())
		assert.Nil(t, f.Value())
		assert.True(t, f.IsValid())
		assert.Equal(t, field.StateValid, f.State())
	})

	t.Run("no input", func(t *testing.T) {
		assert.True(t, newField(t, validator.TypeText).IsValid())
		assert.False(t, newField(t, validator.TypeText, attribute.Required()).IsValid())
	})

	t.Run("optional removes the marker", func(t *testing.T) {
		f := newField(t, validator.TypeText, attribute.Required())
		assert.True(t, f.IsRequired())
		f.Optional()
		assert.False(t, f.IsRequired())
		require.NoError(t, f.Input(nil))
		assert.True(t, f.IsValid())
		f.Require()
		assert.True(t, f.IsRequired())
	})
}

func TestField_Input(t *testing.T) {
	t.Parallel()

	t.Run("stores normalized values", func(t *testing.T) {
		f := newField(t, validator.TypeMoney, attribute.Currency("EUR"))
		require.NoError(t, f.Input("12.5"))
		assert.Equal(t, "12.50", f.Value())
		assert.True(t, f.IsValid())
		assert.True(t, f.InputGiven())
		assert.True(t, f.ValueHasChanged())
	})

	t.Run("keeps the attempted value on failure", func(t *testing.T) {
		f := newField(t, validator.TypeNumber, attribute.Min("10"))
		require.NoError(t, f.Input("5"))
		assert.Equal(t, "5", f.Value())
		assert.Equal(t, []string{"Number must be 10 or higher."}, f.Errors())
		assert.False(t, f.IsValid())

		require.NoError(t, f.Input("11"))
		assert.Empty(t, f.Errors())
		assert.Equal(t, field.StateValid, f.State())
	})

	t.Run("disabled and read-only fields ignore input", func(t *testing.T) {
		f := newField(t, validator.TypeText, attribute.Required())
		f.Disable()
		require.NoError(t, f.Input("ignored"))
		assert.Nil(t, f.Value())
		assert.False(t, f.InputGiven())
		assert.True(t, f.IsValid(), "disabled fields are always valid")

		f.Enable().ReadOnly()
		require.NoError(t, f.Input("ignored"))
		assert.Nil(t, f.Value())
		assert.False(t, f.IsValid())

		f.Editable()
		require.NoError(t, f.Input("accepted"))
		assert.Equal(t, "accepted", f.Value())
	})

	t.Run("add error", func(t *testing.T) {
		f := newField(t, validator.TypeText)
		require.NoError(t, f.Input("taken"))
		f.AddError("Username is taken.")
		assert.True(t, f.HasErrors())
		assert.False(t, f.IsValid())
	})
}

func TestField_Prefill(t *testing.T) {
	t.Parallel()

	t.Run("reset restores the prefilled value", func(t *testing.T) {
		f := newField(t, validator.TypeMoney)
		require.NoError(t, f.Prefill("10"))
		assert.Equal(t, "10.00", f.Value())
		assert.Equal(t, "10.00", f.OriginalValue())
		assert.True(t, f.IsPrefilled())
		assert.True(t, f.ValueIsDefault())
		assert.Equal(t, field.StatePrefilled, f.State())

		require.NoError(t, f.Input("abc"))
		assert.True(t, f.ValueHasChanged())
		assert.NotEmpty(t, f.Errors())

		f.Reset()
		assert.Equal(t, "10.00", f.Value())
		assert.Empty(t, f.Errors())
		assert.False(t, f.ValueHasChanged())
		assert.False(t, f.InputGiven())
		assert.Equal(t, field.StatePrefilled, f.State())
	})

	t.Run("reset without prefill goes back to pristine", func(t *testing.T) {
		f := newField(t, validator.TypeText)
		require.NoError(t, f.Input("x"))
		f.Reset()
		assert.Nil(t, f.Value())
		assert.Equal(t, field.StatePristine, f.State())
	})

	t.Run("required is suspended while prefilling", func(t *testing.T) {
		f := newField(t, validator.TypeText, attribute.Required())
		require.NoError(t, f.Prefill(""))
		assert.Empty(t, f.Errors())
		assert.True(t, f.IsRequired())
	})

	t.Run("unchanged prefilled input stays valid", func(t *testing.T) {
		f := newField(t, validator.TypeNumber, attribute.Min("10"))
		require.NoError(t, f.Prefill("5"))
		require.NoError(t, f.Input("5"))
		assert.NotEmpty(t, f.Errors())
		assert.False(t, f.ValueHasChanged())
		assert.True(t, f.IsValid())
	})

	t.Run("second prefill is ignored", func(t *testing.T) {
		f := newField(t, validator.TypeText)
		require.NoError(t, f.Prefill("first"))
		require.NoError(t, f.DefaultTo("second"))
		assert.Equal(t, "first", f.Value())
	})

	t.Run("nil un-prefills", func(t *testing.T) {
		f := newField(t, validator.TypeText)
		require.NoError(t, f.Prefill(nil))
		assert.Equal(t, field.StatePristine, f.State())

		require.NoError(t, f.Prefill("first"))
		require.NoError(t, f.Prefill(nil))
		assert.False(t, f.IsPrefilled())
		assert.Nil(t, f.OriginalValue())
		assert.Equal(t, field.StatePristine, f.State())

		require.NoError(t, f.Prefill("again"))
		assert.Equal(t, "again", f.Value())
	})

	t.Run("prefill after input", func(t *testing.T) {
		f := newField(t, validator.TypeText)
		require.NoError(t, f.Input("typed"))
		assert.ErrorIs(t, f.Prefill("late"), field.ErrInvalidTransition)
		assert.ErrorIs(t, f.Prefill(nil), field.ErrInvalidTransition)
		assert.Equal(t, "typed", f.Value())
	})
}

func TestField_Clear(t *testing.T) {
	t.Parallel()

	f := newField(t, validator.TypeText, attribute.Required())
	require.NoError(t, f.Prefill("original"))
	require.NoError(t, f.Input("typed"))

	f.Clear()
	assert.Nil(t, f.Value())
	assert.Equal(t, []string{field.RequiredMessage}, f.Errors())
	assert.False(t, f.IsValid())
	assert.Equal(t, field.StateInvalid, f.State())

	f.Reset()
	assert.Equal(t, "original", f.Value())

	opt := newField(t, validator.TypeText)
	require.NoError(t, opt.Input("typed"))
	opt.Clear()
	assert.Empty(t, opt.Errors())
	assert.True(t, opt.IsValid())
	assert.Equal(t, field.StateValid, opt.State())
}

func TestField_ValueAttribute(t *testing.T) {
	t.Parallel()

	valueOf := func(f *field.Field) (string, bool) {
		return f.Attributes().Text(attribute.KindValue)
	}

	f := newField(t, validator.TypeMoney, attribute.Max("100.00"))
	require.NoError(t, f.Prefill("10"))
	v, ok := valueOf(f)
	assert.True(t, ok)
	assert.Equal(t, "10.00", v)

	require.NoError(t, f.Input("12.5"))
	v, _ = valueOf(f)
	assert.Equal(t, "12.50", v, "accepted input replaces the attribute")

	require.NoError(t, f.Input("250"))
	assert.Equal(t, "250.00", f.Value())
	v, _ = valueOf(f)
	assert.Equal(t, "12.50", v, "rejected input keeps the last accepted value")

	f.Reset()
	v, _ = valueOf(f)
	assert.Equal(t, "10.00", v)

	f.Clear()
	_, ok = valueOf(f)
	assert.False(t, ok)
}

func TestField_Constrain(t *testing.T) {
	t.Parallel()

	f := newField(t, validator.TypeNumber, attribute.Max("10"))

	err := f.Constrain(attribute.Min("20"))
	assert.ErrorIs(t, err, validator.ErrMisconfigured)
	_, hasMin := f.Attributes().Find(attribute.KindMin)
	assert.False(t, hasMin, "failed constrain leaves the field unchanged")

	assert.ErrorIs(t, f.Constrain(attribute.Currency("EUR")), attribute.ErrNotAllowed)

	require.NoError(t, f.Constrain(attribute.Min("5")))
	require.NoError(t, f.Input("4"))
	assert.Equal(t, []string{"Number must be 5 or higher."}, f.Errors())
}

func TestField_Accessors(t *testing.T) {
	t.Parallel()

	f, err := field.New(validator.TypeEmail, "Contact", "Contact email")
	require.NoError(t, err)
	assert.Equal(t, validator.TypeEmail, f.Type())
	assert.Equal(t, "Contact", f.Name())
	assert.Equal(t, "Contact email", f.Label())
	assert.True(t, f.HasName("contact"))
	assert.True(t, f.HasName("CONTACT"))
	assert.False(t, f.HasName("name"), "matches the field name, not the attribute kind")
	assert.Equal(t, `email "Contact" (pristine)`, f.String())

	attrs := f.Attributes()
	attrs.Clear()
	assert.Equal(t, "Contact", f.Name(), "attributes are returned as a copy")
}

func TestField_LogsTransitions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug), logger.WithJSONFormatter())
	reg := field.NewRegistry(field.WithLogger(log))

	f, err := reg.New(validator.TypeNumber, "qty", "Quantity")
	require.NoError(t, err)
	require.NoError(t, f.Input("x"))

	out := buf.String()
	assert.Contains(t, out, `"field":"qty"`)
	assert.Contains(t, out, `"type":"number"`)
	assert.Contains(t, out, `"transition":{"from":"pristine","to":"dirty","event":"input"}`)
	assert.Contains(t, out, `"transition":{"from":"dirty","to":"invalid","event":"reject"}`)
	assert.Contains(t, out, `"messages":["Value is not a valid number."]`)
}
