package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/attribute"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestNumber_Validate(t *testing.T) {
	t.Parallel()

	number := validator.NewNumber()

	t.Run("accepts numeric text", func(t *testing.T) {
		for _, v := range []string{"1", "-1", "+2.5", ".5", "5.", "1e3", "-2.5E-3", "12345678901234567890.123"} {
			r, err := number.Validate(v, nil)
			require.NoError(t, err)
			assert.True(t, r.Valid, v)
			assert.Equal(t, v, r.Value)
		}
	})

	t.Run("coerces go numbers", func(t *testing.T) {
		for in, want := range map[any]string{42: "42", int64(-7): "-7", uint8(3): "3", 0.1: "0.1", float32(2.5): "2.5"} {
			r, err := number.Validate(in, nil)
			require.NoError(t, err)
			assert.True(t, r.Valid, "%v", in)
			assert.Equal(t, want, r.Value)
		}
	})

	t.Run("rejects everything else", func(t *testing.T) {
		for _, v := range []any{"", "abc", "1,5", "1e", "--1", true, nil} {
			r, err := number.Validate(v, nil)
			require.NoError(t, err)
			assert.Equal(t, []string{"Value is not a valid number."}, r.Errors, "%v", v)
		}
	})

	t.Run("range messages pad to the step precision", func(t *testing.T) {
		attrs := attribute.Of(attribute.Min("1"), attribute.Max("10"), attribute.Step("0.01"))

		r, err := number.Validate("0.50", attrs)
		require.NoError(t, err)
		assert.Equal(t, []string{"Number must be 1.00 or higher."}, r.Errors)

		r, err = number.Validate("10.01", attrs)
		require.NoError(t, err)
		assert.Equal(t, []string{"Number must be 10.00 or lower."}, r.Errors)
	})

	t.Run("step with inferred precision", func(t *testing.T) {
		attrs := attribute.Of(attribute.Step("0.01"))

		r, err := number.Validate("2.00", attrs)
		require.NoError(t, err)
		assert.True(t, r.Valid)

		r, err = number.Validate("2.005", attrs)
		require.NoError(t, err)
		assert.False(t, r.Valid)
		assert.Equal(t, []string{
			"Number must be in increments of 0.01.",
			"2 decimal places of precision required: got 3 decimal places.",
		}, r.Errors)
	})

	t.Run("precision mismatch even on an exact multiple", func(t *testing.T) {
		attrs := attribute.Of(attribute.Step("0.005"), attribute.Must(attribute.Precision(2)))
		r, err := number.Validate("2.005", attrs)
		require.NoError(t, err)
		assert.Equal(t, []string{"2 decimal places of precision required: got 3 decimal places."}, r.Errors)
	})

	t.Run("integer step", func(t *testing.T) {
		attrs := attribute.Of(attribute.Step("5"))
		r, err := number.Validate(15, attrs)
		require.NoError(t, err)
		assert.True(t, r.Valid)

		r, err = number.Validate("16", attrs)
		require.NoError(t, err)
		assert.Equal(t, []string{"Number must be in increments of 5."}, r.Errors)
	})

	t.Run("exact decimal arithmetic", func(t *testing.T) {
		attrs := attribute.Of(attribute.Step("0.1"))
		r, err := number.Validate("0.3", attrs)
		require.NoError(t, err)
		assert.True(t, r.Valid)
	})

	t.Run("steps on very large numbers", func(t *testing.T) {
		attrs := attribute.Of(attribute.Step("1"))
		huge := strings.Repeat("1234567890", 8)
		for _, v := range []string{huge, "1e70", "-" + huge} {
			r, err := number.Validate(v, attrs)
			require.NoError(t, err)
			assert.True(t, r.Valid, "%s: %v", v, r.Errors)
		}

		r, err := number.Validate(huge+".5", attrs)
		require.NoError(t, err)
		assert.Equal(t, []string{"Number must be in increments of 1."}, r.Errors)

		r, err = number.Validate("1e9999", attrs)
		require.NoError(t, err)
		assert.False(t, r.Valid)
	})
}

func TestNumber_CheckConstraints(t *testing.T) {
	t.Parallel()

	number := validator.NewNumber()
	for name, attrs := range map[string]*attribute.Set{
		"zero step":     attribute.Of(attribute.Step("0")),
		"negative step": attribute.Of(attribute.Step("-1")),
		"malformed min": attribute.Of(attribute.Min("ten")),
		"malformed max": attribute.Of(attribute.Max("1,5")),
		"min above max": attribute.Of(attribute.Min("5"), attribute.Max("1")),
	} {
		assert.ErrorIs(t, number.CheckConstraints(attrs), validator.ErrMisconfigured, name)
	}
	assert.NoError(t, number.CheckConstraints(attribute.Of(attribute.MinInt(0), attribute.Max("1e3"))))
}
