package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestMessages(t *testing.T) {
	attr := logger.Messages([]string{"a", "b"})
	require.Equal(t, "messages", attr.Key)
	assert.Equal(t, []string{"a", "b"}, attr.Value.Any())

	assert.True(t, logger.Messages(nil).Equal(slog.Attr{}))
}

func TestFieldAttrs(t *testing.T) {
	assert.Equal(t, "field", logger.Field("price").Key)
	assert.Equal(t, "money", logger.FieldType("money").Value.String())

	tr := logger.Transition("pristine", "dirty", "input")
	require.Equal(t, "transition", tr.Key)
	g := tr.Value.Group()
	require.Len(t, g, 3)
	assert.Equal(t, "pristine", g[0].Value.String())
	assert.Equal(t, "dirty", g[1].Value.String())
	assert.Equal(t, "input", g[2].Value.String())
}
