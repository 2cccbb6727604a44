package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/attribute"
	"github.com/dmitrymomot/formkit/pkg/field"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestDefinitionFromMap(t *testing.T) {
	t.Parallel()

	def, err := field.DefinitionFromMap(map[string]any{
		"type":     "Money",
		"name":     "price",
		"label":    "Price",
		"value":    "5",
		"required": true,
		"min":      "0.00",
		"currency": "aud",
	})
	require.NoError(t, err)
	assert.Equal(t, "money", def.Type)
	assert.Equal(t, "5", def.Value)
	assert.Equal(t, []field.Property{
		{Key: "currency", Value: "aud"},
		{Key: "min", Value: "0.00"},
		{Key: "required", Value: true},
	}, def.Properties)

	_, err = field.DefinitionFromMap(map[string]any{"type": 42})
	assert.ErrorIs(t, err, field.ErrInvalidDefinition)
}

func TestFromDefinition(t *testing.T) {
	t.Parallel()

	t.Run("builds and prefills", func(t *testing.T) {
		def, err := field.DefinitionFromMap(map[string]any{
			"type": "money", "name": "price", "label": "Price",
			"value": "5", "required": true, "min": "0.00", "currency": "aud",
		})
		require.NoError(t, err)

		f, err := field.FromDefinition(def)
		require.NoError(t, err)
		assert.True(t, f.IsRequired())
		assert.True(t, f.IsPrefilled())
		assert.Equal(t, "5.00", f.Value())
		currency, _ := f.Attributes().Text(attribute.KindCurrency)
		assert.Equal(t, "AUD", currency)
	})

	t.Run("false markers remove defaults", func(t *testing.T) {
		f, err := field.FromDefinition(field.Definition{
			Type: validator.TypeLink, Name: "docs", Label: "Docs",
			Properties: []field.Property{{Key: "readonly", Value: false}, {Key: "disabled", Value: "off"}},
		})
		require.NoError(t, err)
		assert.False(t, f.IsReadOnly())
		assert.False(t, f.IsDisabled())
	})

	t.Run("custom data attributes", func(t *testing.T) {
		f, err := field.FromDefinition(field.Definition{
			Type: validator.TypeText, Name: "bio", Label: "Bio",
			Properties: []field.Property{{Key: "data-track", Value: "bio"}},
		})
		require.NoError(t, err)
		_, ok := f.Attributes().FindByName("data-track")
		assert.True(t, ok)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := field.FromDefinition(field.Definition{Type: validator.TypeText, Name: "bio"})
		assert.ErrorIs(t, err, field.ErrInvalidDefinition)
		assert.ErrorContains(t, err, "missing label")

		_, err = field.FromDefinition(field.Definition{Name: "bio"})
		assert.ErrorContains(t, err, "missing label, type")

		_, err = field.FromDefinition(field.Definition{
			Type: validator.TypeText, Name: "bio", Label: "Bio",
			Properties: []field.Property{{Key: "colour", Value: "red"}},
		})
		assert.ErrorIs(t, err, field.ErrInvalidDefinition)
		assert.ErrorIs(t, err, attribute.ErrUnknownKey)

		_, err = field.FromDefinition(field.Definition{Type: "address", Name: "home", Label: "Home"})
		assert.ErrorIs(t, err, field.ErrUnknownType)

		_, err = field.FromDefinition(field.Definition{
			Type: validator.TypeNumber, Name: "qty", Label: "Qty",
			Properties: []field.Property{{Key: "min", Value: "5"}, {Key: "max", Value: "1"}},
		})
		assert.ErrorIs(t, err, validator.ErrMisconfigured)
	})
}
