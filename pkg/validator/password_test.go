package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/attribute"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func policy(t *testing.T, s string) attribute.Attribute {
	t.Helper()
	a, err := attribute.PolicyNamed(s)
	require.NoError(t, err)
	return a
}

func TestPassword_Validate(t *testing.T) {
	t.Parallel()

	password := validator.NewPassword(validator.DefaultConfig())

	t.Run("strict preset on a weak password", func(t *testing.T) {
		r, err := password.Validate("password123", attribute.Of(policy(t, attribute.PolicyStrict)))
		require.NoError(t, err)
		assert.False(t, r.Valid)
		assert.Equal(t, []string{
			"Password must contain at least 1 uppercase letter(s).",
			"Password must contain at least 1 symbol(s).",
		}, r.Errors)
	})

	t.Run("strict preset on a strong password", func(t *testing.T) {
		r, err := password.Validate("Pa55word!", attribute.Of(policy(t, attribute.PolicyStrict)))
		require.NoError(t, err)
		assert.True(t, r.Valid)
	})

	t.Run("custom counts accumulate with length errors", func(t *testing.T) {
		attrs := attribute.Of(policy(t, "lowercase: 2; numbers: 3; symbols: 1"), attribute.MinInt(10))
		r, err := password.Validate("aB1", attrs)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"Password must be at least 10 characters long.",
			"Password must contain at least 2 lowercase letter(s).",
			"Password must contain at least 3 number(s).",
			"Password must contain at least 1 symbol(s).",
		}, r.Errors)
	})

	t.Run("max length counts characters", func(t *testing.T) {
		attrs := attribute.Of(attribute.MaxInt(4))
		r, err := password.Validate("äöüß", attrs)
		require.NoError(t, err)
		assert.True(t, r.Valid)

		r, err = password.Validate("äöüßx", attrs)
		require.NoError(t, err)
		assert.Equal(t, []string{"Password cannot be more than 4 characters long."}, r.Errors)
	})

	t.Run("unicode classes", func(t *testing.T) {
		attrs := attribute.Of(policy(t, "letters: 1; numbers: 1; symbols: 1"))
		r, err := password.Validate("Ωω٣€", attrs)
		require.NoError(t, err)
		assert.True(t, r.Valid, r.Errors)
	})

	t.Run("unrestricted by default", func(t *testing.T) {
		r, err := password.Validate("a", nil)
		require.NoError(t, err)
		assert.True(t, r.Valid)
	})

	t.Run("sequence rules are ignored unless enabled", func(t *testing.T) {
		r, err := password.Validate("aaaaB1!x", attribute.Of(policy(t, "consecutive: 3")))
		require.NoError(t, err)
		assert.True(t, r.Valid)
	})

	t.Run("rejects non strings", func(t *testing.T) {
		r, err := password.Validate(12345678, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Password must be a string."}, r.Errors)
	})
}

func TestPassword_SequenceRules(t *testing.T) {
	t.Parallel()

	cfg := validator.DefaultConfig()
	cfg.PasswordSequenceRules = true
	password := validator.NewPassword(cfg)

	t.Run("consecutive", func(t *testing.T) {
		attrs := attribute.Of(policy(t, "consecutive: 2"))
		r, err := password.Validate("baab", attrs)
		require.NoError(t, err)
		assert.True(t, r.Valid)

		r, err = password.Validate("baaab", attrs)
		require.NoError(t, err)
		assert.Equal(t, []string{"Password cannot contain more than 2 identical characters in a row."}, r.Errors)
	})

	t.Run("sequential runs in both directions", func(t *testing.T) {
		attrs := attribute.Of(policy(t, "sequential: 2"))
		for _, v := range []string{"xabcx", "x987x"} {
			r, err := password.Validate(v, attrs)
			require.NoError(t, err)
			assert.Equal(t, []string{"Password cannot contain more than 2 sequential characters."}, r.Errors, v)
		}
		r, err := password.Validate("xabx", attrs)
		require.NoError(t, err)
		assert.True(t, r.Valid)
	})

	t.Run("either needs one of its rules", func(t *testing.T) {
		attrs := attribute.Of(policy(t, attribute.PolicyBasic))

		for _, v := range []string{"Letters1", "Letters!"} {
			r, err := password.Validate(v, attrs)
			require.NoError(t, err)
			assert.True(t, r.Valid, v)
		}

		r, err := password.Validate("letters", attrs)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"Password must contain at least 1 uppercase letter(s).",
			"Password must satisfy at least one of: numbers, symbols.",
		}, r.Errors)
	})

	t.Run("strict either over run limits", func(t *testing.T) {
		attrs := attribute.Of(policy(t, attribute.PolicyStrict))

		// four repeats break consecutive but sequential still holds
		r, err := password.Validate("Paaaa5!", attrs)
		require.NoError(t, err)
		assert.True(t, r.Valid, r.Errors)

		r, err = password.Validate("Pbbbbabc5!", attrs)
		require.NoError(t, err)
		assert.Equal(t, []string{"Password must satisfy at least one of: consecutive, sequential."}, r.Errors)
	})
}

func TestPassword_CheckConstraints(t *testing.T) {
	t.Parallel()

	cfg := validator.DefaultConfig()
	cfg.PasswordPolicy = "paranoid"
	assert.ErrorIs(t, validator.NewPassword(cfg).CheckConstraints(nil), validator.ErrMisconfigured)

	password := validator.NewPassword(validator.DefaultConfig())
	assert.ErrorIs(t, password.CheckConstraints(attribute.Of(attribute.MinInt(8), attribute.MaxInt(4))), validator.ErrMisconfigured)
	assert.ErrorIs(t, password.CheckConstraints(attribute.Of(attribute.Min("eight"))), validator.ErrMisconfigured)
	assert.NoError(t, password.CheckConstraints(attribute.Of(attribute.MinInt(8))))
}

func TestPassphrase_Validate(t *testing.T) {
	t.Parallel()

	passphrase := validator.NewPassphrase(validator.DefaultConfig())

	t.Run("scores", func(t *testing.T) {
		tests := []struct {
			algorithm string
			in        string
			want      int
		}{
			{validator.AlgorithmShannon, "correct horse battery staple", 112},
			{validator.AlgorithmRenyi, "correct horse battery staple", 84},
			{validator.AlgorithmEnhanced, "correct horse battery staple", 28},
			{validator.AlgorithmShannon, "abcdefgh", 24},
			{validator.AlgorithmRenyi, "abcdefgh", 24},
			{validator.AlgorithmShannon, "aaaa", 0},
			{validator.AlgorithmEnhanced, "", 0},
			{"unknown", "abc", 0},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, validator.Entropy(tt.algorithm, tt.in), "%s %q", tt.algorithm, tt.in)
		}
	})

	t.Run("default shannon threshold", func(t *testing.T) {
		r, err := passphrase.Validate("correct horse battery staple", nil)
		require.NoError(t, err)
		assert.True(t, r.Valid)

		r, err = passphrase.Validate("password", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Passphrase is not strong enough. Required strength of: 76, got 24."}, r.Errors)
	})

	t.Run("algorithm attribute changes the threshold", func(t *testing.T) {
		attrs := attribute.Of(attribute.Must(attribute.Algorithm(validator.AlgorithmEnhanced)))
		r, err := passphrase.Validate("Tr0ub4dor&3", attrs)
		require.NoError(t, err)
		assert.Equal(t, []string{"Passphrase is not strong enough. Required strength of: 19, got 11."}, r.Errors)
	})

	t.Run("entropy attribute overrides the threshold", func(t *testing.T) {
		attrs := attribute.Of(attribute.Must(attribute.Entropy(20)))
		r, err := passphrase.Validate("password", attrs)
		require.NoError(t, err)
		assert.True(t, r.Valid)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		attrs := attribute.Of(attribute.Must(attribute.Algorithm("md5")))
		assert.ErrorIs(t, passphrase.CheckConstraints(attrs), validator.ErrMisconfigured)
		_, err := passphrase.Validate("x", attrs)
		assert.ErrorIs(t, err, validator.ErrMisconfigured)
	})
}
