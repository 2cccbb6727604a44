package attribute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/attribute"
)

func TestCapabilities(t *testing.T) {
	t.Parallel()

	assert.True(t, attribute.KindRequired.Is(attribute.Boolean))
	assert.True(t, attribute.KindRequired.Is(attribute.Constraint))
	assert.True(t, attribute.KindRequired.Is(attribute.Boolean|attribute.Constraint))
	assert.True(t, attribute.KindDisabled.Is(attribute.Boolean))
	assert.False(t, attribute.KindDisabled.Is(attribute.Constraint))
	assert.True(t, attribute.KindMin.Is(attribute.Constraint))
	assert.False(t, attribute.KindMin.Is(attribute.Boolean))
	assert.False(t, attribute.KindLabel.Is(attribute.Constraint))
	assert.True(t, attribute.KindLabel.Known())
	assert.False(t, attribute.Kind("colour").Known())
}

func TestAttribute_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, attribute.Min("5").Equal(attribute.Min("5")))
	assert.False(t, attribute.Min("5").Equal(attribute.Max("5")), "different kind")
	assert.False(t, attribute.Min("5").Equal(attribute.Min("6")), "different value")
	assert.False(t, attribute.Min("5").Equal(attribute.MinInt(5)), "different value variant")

	a := attribute.Must(attribute.Custom("data-x", attribute.TextValue("1")))
	b := attribute.Must(attribute.Custom("data-y", attribute.TextValue("1")))
	assert.False(t, a.Equal(b), "different name")

	upper := attribute.Must(attribute.Custom("data-X", attribute.TextValue("1")))
	assert.True(t, a.Equal(upper), "names fold")
}

func TestAttribute_TextEquals(t *testing.T) {
	t.Parallel()

	name := attribute.Must(attribute.Name("Email"))
	assert.True(t, name.TextEquals("email"))
	assert.True(t, name.TextEquals("EMAIL"))
	assert.False(t, name.TextEquals("name"))
}

func TestAttribute_HasName(t *testing.T) {
	t.Parallel()

	a := attribute.Must(attribute.Custom("Data-Straße", attribute.Null()))
	assert.True(t, a.HasName("data-STRASSE"))
	assert.True(t, a.HasName("data-straße"))
	assert.False(t, a.HasName("data-strase"))
}

func TestCustom_EmptyName(t *testing.T) {
	t.Parallel()

	_, err := attribute.Custom("  ", attribute.Null())
	assert.ErrorIs(t, err, attribute.ErrEmptyName)
}

func TestAttribute_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "required", attribute.Required().String())
	assert.Equal(t, `min="0.50"`, attribute.Min("0.50").String())
	assert.Equal(t, `max="10"`, attribute.MaxInt(10).String())
	assert.Equal(t, "", attribute.New(attribute.KindDisabled, attribute.BoolValue(false)).String())
}

func TestValue_TextIsLossless(t *testing.T) {
	t.Parallel()

	d, err := attribute.DecimalValue("100.00")
	require.NoError(t, err)
	assert.Equal(t, "100.00", d.Text())
	assert.Equal(t, attribute.ValueDecimal, d.Kind())

	_, err = attribute.DecimalValue("1e5")
	assert.ErrorIs(t, err, attribute.ErrInvalidValue)

	assert.Equal(t, "-42", attribute.IntValue(-42).Text())
	assert.Equal(t, "true", attribute.BoolValue(true).Text())
	assert.Equal(t, "", attribute.Null().Text())
	assert.Equal(t, "a: 1; b: 2;", attribute.ListValue(
		attribute.Entry{Key: "a", Value: "1"},
		attribute.Entry{Key: "b", Value: "2"},
	).Text())
}

func TestValue_Int(t *testing.T) {
	t.Parallel()

	n, ok := attribute.TextValue(" 12 ").Int()
	assert.True(t, ok)
	assert.EqualValues(t, 12, n)

	_, ok = attribute.TextValue("1.5").Int()
	assert.False(t, ok)

	_, ok = attribute.Null().Int()
	assert.False(t, ok)
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	t.Run("precision", func(t *testing.T) {
		t.Parallel()
		p, err := attribute.Precision(2)
		require.NoError(t, err)
		n, ok := p.Value().Int()
		assert.True(t, ok)
		assert.EqualValues(t, 2, n)

		_, err = attribute.Precision(-1)
		assert.ErrorIs(t, err, attribute.ErrInvalidValue)
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()
		_, err := attribute.Version(9)
		assert.ErrorIs(t, err, attribute.ErrInvalidValue)
		_, err = attribute.Version(0)
		assert.ErrorIs(t, err, attribute.ErrInvalidValue)
		v, err := attribute.Version(5)
		require.NoError(t, err)
		assert.Equal(t, "5", v.Text())
		assert.Equal(t, "any", attribute.AnyVersion().Text())
	})

	t.Run("pattern", func(t *testing.T) {
		t.Parallel()
		_, err := attribute.Pattern("")
		assert.ErrorIs(t, err, attribute.ErrInvalidValue)
		_, err = attribute.Pattern("([a-z")
		assert.ErrorIs(t, err, attribute.ErrInvalidValue)
		p, err := attribute.Pattern(`^\d+$`)
		require.NoError(t, err)
		assert.Equal(t, `^\d+$`, p.Text())
	})

	t.Run("url type", func(t *testing.T) {
		t.Parallel()
		u, err := attribute.URLType(" Absolute ")
		require.NoError(t, err)
		assert.Equal(t, attribute.URLAbsolute, u.Text())
		_, err = attribute.URLType("ftp")
		assert.ErrorIs(t, err, attribute.ErrInvalidValue)
	})

	t.Run("first day of week", func(t *testing.T) {
		t.Parallel()
		_, err := attribute.FirstDayOfWeek(8)
		assert.ErrorIs(t, err, attribute.ErrInvalidValue)
		d, err := attribute.FirstDayOfWeek(1)
		require.NoError(t, err)
		assert.Equal(t, "1", d.Text())
	})

	t.Run("text kinds", func(t *testing.T) {
		t.Parallel()
		_, err := attribute.Name(" ")
		assert.ErrorIs(t, err, attribute.ErrInvalidValue)
		typ, err := attribute.Type(" Money ")
		require.NoError(t, err)
		assert.Equal(t, "money", typ.Text())
		assert.Equal(t, "AUD", attribute.Currency(" aud ").Text())
		assert.Equal(t, "given-name family-name", attribute.Autocomplete("given-name", "family-name").Text())
	})
}

func TestCompilePattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		input   string
		matches bool
		wantErr bool
	}{
		{name: "plain", expr: `^[a-z]+$`, input: "abc", matches: true},
		{name: "delimited", expr: `/^[a-z]+$/`, input: "abc", matches: true},
		{name: "case insensitive flag", expr: `/^[a-z]+$/i`, input: "ABC", matches: true},
		{name: "unicode flag ignored", expr: `/^\p{L}+$/u`, input: "Zo\u00eb", matches: true},
		{name: "unsupported flag", expr: `/abc/x`, wantErr: true},
		{name: "invalid expression", expr: `(`, wantErr: true},
		{name: "slash inside plain expression", expr: `^a/b$`, input: "a/b", matches: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			re, err := attribute.CompilePattern(tt.expr)
			if tt.wantErr {
				assert.ErrorIs(t, err, attribute.ErrInvalidValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.matches, re.MatchString(tt.input))
		})
	}
}
