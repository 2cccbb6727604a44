package attribute_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/attribute"
)

func TestSet_Add(t *testing.T) {
	t.Parallel()

	t.Run("ignores duplicates of the same kind", func(t *testing.T) {
		t.Parallel()
		s := attribute.NewSet()
		require.NoError(t, s.Add(attribute.Min("1"), attribute.Min("2")))
		assert.Equal(t, 1, s.Len())
		text, ok := s.Text(attribute.KindMin)
		assert.True(t, ok)
		assert.Equal(t, "1", text, "first one wins")
	})

	t.Run("custom attributes are unique by name", func(t *testing.T) {
		t.Parallel()
		s := attribute.NewSet()
		a := attribute.Must(attribute.Custom("data-a", attribute.TextValue("1")))
		b := attribute.Must(attribute.Custom("data-b", attribute.TextValue("2")))
		a2 := attribute.Must(attribute.Custom("DATA-A", attribute.TextValue("3")))
		require.NoError(t, s.Add(a, b, a2))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("rejects disallowed kinds before mutating", func(t *testing.T) {
		t.Parallel()
		s := attribute.NewSet(attribute.KindMin, attribute.KindMax)
		err := s.Add(attribute.Min("1"), attribute.Required(), attribute.Hidden())
		require.Error(t, err)
		assert.ErrorIs(t, err, attribute.ErrNotAllowed)
		assert.Contains(t, err.Error(), "required")
		assert.Contains(t, err.Error(), "hidden")
		assert.True(t, s.IsEmpty())
	})
}

func TestSet_Set(t *testing.T) {
	t.Parallel()

	s := attribute.NewSet()
	require.NoError(t, s.Add(attribute.Min("1"), attribute.Max("9")))
	require.NoError(t, s.Set(attribute.Min("5"), attribute.Step("2")))

	kinds := make([]attribute.Kind, 0, s.Len())
	for a := range s.All() {
		kinds = append(kinds, a.Kind())
	}
	assert.Equal(t, []attribute.Kind{attribute.KindMin, attribute.KindMax, attribute.KindStep}, kinds, "replacement keeps position")
	text, _ := s.Text(attribute.KindMin)
	assert.Equal(t, "5", text)

	restricted := attribute.NewSet(attribute.KindMin)
	assert.ErrorIs(t, restricted.Set(attribute.Max("1")), attribute.ErrNotAllowed)
}

func TestSet_Replace(t *testing.T) {
	t.Parallel()

	s := attribute.Of(attribute.Min("1"))
	assert.True(t, s.Replace(attribute.Min("2")))
	assert.False(t, s.Replace(attribute.Max("3")))
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Contains(attribute.KindMax))
}

func TestSet_FindAndGet(t *testing.T) {
	t.Parallel()

	s := attribute.Of(attribute.Min("1"), attribute.Must(attribute.Custom("data-role", attribute.TextValue("x"))))

	a, ok := s.Find(attribute.KindMin)
	assert.True(t, ok)
	assert.Equal(t, "1", a.Text())

	_, ok = s.Find(attribute.KindMax)
	assert.False(t, ok)

	_, err := s.Get(attribute.KindMax)
	require.Error(t, err)
	assert.ErrorIs(t, err, attribute.ErrNotFound)
	var nf *attribute.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, attribute.KindMax, nf.Kind)

	byName, ok := s.FindByName("DATA-ROLE")
	assert.True(t, ok)
	assert.Equal(t, "x", byName.Text())

	byName, ok = s.FindByName("min")
	assert.True(t, ok)
	assert.Equal(t, attribute.KindMin, byName.Kind())
}

func TestSet_FindOrCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates and stores a default", func(t *testing.T) {
		t.Parallel()
		s := attribute.NewSet()
		calls := 0
		create := func() (attribute.Attribute, error) {
			calls++
			return attribute.Pattern(`^x$`)
		}
		a, err := s.FindOrCreate(attribute.KindPattern, create)
		require.NoError(t, err)
		assert.Equal(t, `^x$`, a.Text())
		_, err = s.FindOrCreate(attribute.KindPattern, create)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.True(t, s.Contains(attribute.KindPattern))
	})

	t.Run("checks the allow-list first", func(t *testing.T) {
		t.Parallel()
		s := attribute.NewSet(attribute.KindMin)
		_, err := s.FindOrCreate(attribute.KindPattern, func() (attribute.Attribute, error) {
			t.Fatal("create must not run")
			return attribute.Attribute{}, nil
		})
		assert.ErrorIs(t, err, attribute.ErrNotAllowed)
	})
}

func TestSet_Indexes(t *testing.T) {
	t.Parallel()

	custom := attribute.Must(attribute.Custom("data-x", attribute.TextValue("1")))
	s := attribute.Of(attribute.Min("1"), custom, attribute.Max("2"))

	assert.Equal(t, 0, s.IndexByKind(attribute.KindMin))
	assert.Equal(t, 2, s.IndexByKind(attribute.KindMax))
	assert.Equal(t, -1, s.IndexByKind(attribute.KindStep))

	assert.Equal(t, 1, s.IndexByName("Data-X"))
	assert.Equal(t, -1, s.IndexByName("data-y"))

	assert.Equal(t, 2, s.IndexOf(attribute.Max("2")))
	assert.Equal(t, -1, s.IndexOf(attribute.Max("3")), "instance equality includes the value")

	assert.True(t, s.ContainsAttribute(custom))
	assert.True(t, s.ContainsName("max"))
}

func TestSet_Remove(t *testing.T) {
	t.Parallel()

	s := attribute.Of(
		attribute.Min("1"),
		attribute.Max("2"),
		attribute.Must(attribute.Custom("data-a", attribute.Null())),
		attribute.Must(attribute.Custom("data-b", attribute.Null())),
	)
	s.Remove(attribute.KindMin)
	assert.False(t, s.Contains(attribute.KindMin))
	s.RemoveByName("DATA-A")
	assert.False(t, s.ContainsName("data-a"))
	assert.True(t, s.ContainsName("data-b"))
	s.Remove(attribute.KindCustom)
	assert.Equal(t, 1, s.Len())
}

func TestSet_AllowDisallow(t *testing.T) {
	t.Parallel()

	s := attribute.NewSet()
	assert.True(t, s.IsAllowed(attribute.KindPolicy), "empty allow-list admits everything")

	require.NoError(t, s.Add(attribute.Min("1")))
	s.Allow(attribute.KindMax)
	assert.False(t, s.IsAllowed(attribute.KindMin))
	assert.True(t, s.Contains(attribute.KindMin), "allow never evicts")

	s.Allow(attribute.KindMin, attribute.KindStep)
	s.Disallow(attribute.KindMin)
	assert.True(t, s.Contains(attribute.KindMin), "disallow never evicts")
	assert.ErrorIs(t, s.Add(attribute.Min("2")), attribute.ErrNotAllowed)
	assert.True(t, s.IsAllowed(attribute.KindMax, attribute.KindStep))
	assert.False(t, s.IsAllowed(attribute.KindMax, attribute.KindMin))
}

func TestSet_SubsetAndConstraints(t *testing.T) {
	t.Parallel()

	s := attribute.NewSet(attribute.KindMin, attribute.KindMax, attribute.KindLabel, attribute.KindRequired)
	require.NoError(t, s.Add(
		attribute.Must(attribute.Label("Price")),
		attribute.Min("1"),
		attribute.Required(),
		attribute.Max("5"),
	))

	sub := s.Subset(attribute.KindMax, attribute.KindStep, attribute.KindMin)
	assert.Equal(t, 2, sub.Len())
	assert.Equal(t, s.Allowed(), sub.Allowed())
	assert.Equal(t, 0, sub.IndexByKind(attribute.KindMax), "subset follows requested order")

	c := s.Constraints()
	assert.Equal(t, 3, c.Len())
	assert.False(t, c.Contains(attribute.KindLabel))
	for a := range c.All() {
		assert.True(t, a.Is(attribute.Constraint))
	}
}

func TestSet_CloneAndClear(t *testing.T) {
	t.Parallel()

	s := attribute.NewSet(attribute.KindMin, attribute.KindMax)
	require.NoError(t, s.Add(attribute.Min("1")))
	c := s.Clone()
	require.NoError(t, c.Add(attribute.Max("2")))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, c.Len())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.False(t, c.IsAllowed(attribute.KindStep), "clear keeps the allow-list")
}

func TestSet_Int(t *testing.T) {
	t.Parallel()

	s := attribute.Of(attribute.Must(attribute.Precision(3)), attribute.Min("abc"))
	n, ok, err := s.Int(attribute.KindPrecision)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, 3, n)

	_, ok, err = s.Int(attribute.KindMax)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.Int(attribute.KindMin)
	assert.True(t, ok)
	assert.ErrorIs(t, err, attribute.ErrInvalidValue)
}

func TestSet_String(t *testing.T) {
	t.Parallel()

	s := attribute.Of(
		attribute.Must(attribute.Name("price")),
		attribute.Required(),
		attribute.New(attribute.KindDisabled, attribute.BoolValue(false)),
		attribute.Min("0.00"),
	)
	assert.Equal(t, `name="price" required min="0.00"`, s.String())
	assert.True(t, slices.ContainsFunc(s.Slice(), func(a attribute.Attribute) bool { return a.Kind() == attribute.KindDisabled }))
}
