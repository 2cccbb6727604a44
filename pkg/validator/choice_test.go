package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/attribute"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestEnum_Validate(t *testing.T) {
	t.Parallel()

	enum := validator.NewEnum()
	opts, err := attribute.NewOptions(attribute.Entry{Key: "dog", Value: "Dog"}, attribute.Entry{Key: "cat", Value: "Cat"})
	require.NoError(t, err)
	attrs := attribute.Of(attribute.OptionsOf(opts))

	r, err := enum.Validate("cat", attrs)
	require.NoError(t, err)
	assert.True(t, r.Valid)

	r, err = enum.Validate("fish", attrs)
	require.NoError(t, err)
	assert.Equal(t, []string{"Value 'fish' is not a valid option."}, r.Errors)

	r, err = enum.Validate("Dog", attrs)
	require.NoError(t, err)
	assert.False(t, r.Valid, "labels are not keys")

	r, err = enum.Validate(1, attrs)
	require.NoError(t, err)
	assert.Equal(t, []string{"Value is not a string."}, r.Errors)

	assert.ErrorIs(t, enum.CheckConstraints(nil), validator.ErrMisconfigured)
	_, err = enum.Validate("dog", nil)
	assert.ErrorIs(t, err, validator.ErrMisconfigured)
}

func TestUUID_Validate(t *testing.T) {
	t.Parallel()

	id := validator.NewUUID()
	const v4 = "eae149cb-79a3-41fa-9c70-2951fa3bdf00"

	t.Run("any version", func(t *testing.T) {
		r, err := id.Validate(v4, attribute.Of(attribute.AnyVersion()))
		require.NoError(t, err)
		assert.True(t, r.Valid)
		assert.Equal(t, v4, r.Value)

		r, err = id.Validate("EAE149CB-79A3-41FA-9C70-2951FA3BDF00", nil)
		require.NoError(t, err)
		assert.True(t, r.Valid)
		assert.Equal(t, v4, r.Value)
	})

	t.Run("version mismatch", func(t *testing.T) {
		attrs := attribute.Of(attribute.Must(attribute.Version(5)))
		r, err := id.Validate(v4, attrs)
		require.NoError(t, err)
		assert.Equal(t, []string{"A version 5 UUID is required: Version 4 UUID provided."}, r.Errors)

		r, err = id.Validate(uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://example.com")), attrs)
		require.NoError(t, err)
		assert.True(t, r.Valid)
	})

	t.Run("strict shape", func(t *testing.T) {
		for _, v := range []string{"eae149cb79a341fa9c702951fa3bdf00", "{eae149cb-79a3-41fa-9c70-2951fa3bdf00}", "urn:uuid:eae149cb-79a3-41fa-9c70-2951fa3bdf00", ""} {
			r, err := id.Validate(v, nil)
			require.NoError(t, err)
			assert.Equal(t, []string{"Invalid UUID format: expected 36 characters in the 8-4-4-4-12 form."}, r.Errors, v)
		}

		r, err := id.Validate("zae149cb-79a3-41fa-9c70-2951fa3bdf00", nil)
		require.NoError(t, err)
		require.Len(t, r.Errors, 1)
		assert.Contains(t, r.Errors[0], "Invalid UUID format: ")

		r, err = id.Validate(42, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"UUID must be a string."}, r.Errors)
	})

	t.Run("misconfigured", func(t *testing.T) {
		bad := attribute.New(attribute.KindVersion, attribute.TextValue("9"))
		assert.ErrorIs(t, id.CheckConstraints(attribute.Of(bad)), validator.ErrMisconfigured)
	})
}

func TestBoolean_Validate(t *testing.T) {
	t.Parallel()

	b := validator.NewBoolean()
	for in, want := range map[any]bool{
		true:    true,
		false:   false,
		1:       true,
		0:       false,
		"on":    true,
		"TRUE":  true,
		" 1 ":   true,
		"off":   false,
		"false": false,
		"0":     false,
	} {
		r, err := b.Validate(in, nil)
		require.NoError(t, err)
		assert.True(t, r.Valid, "%v", in)
		assert.Equal(t, want, r.Value, "%v", in)
	}

	for _, in := range []any{"yes", 2, nil, 1.0} {
		r, err := b.Validate(in, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Value must be a boolean."}, r.Errors, "%v", in)
	}
}

func TestLink_Validate(t *testing.T) {
	t.Parallel()

	link := validator.NewLink()
	r, err := link.Validate(stringer("https://example.com/docs"), nil)
	require.NoError(t, err)
	assert.True(t, r.Valid)
	assert.Equal(t, "https://example.com/docs", r.Value)

	r, err = link.Validate(3, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Value must be a string."}, r.Errors)
}
