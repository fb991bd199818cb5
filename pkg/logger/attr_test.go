package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/utilkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("call", slog.String("op", "parse"), slog.Int("pairs", 2))
	require.Equal(t, "call", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "op", g[0].Key)
	assert.Equal(t, "pairs", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestCallAttributes(t *testing.T) {
	tests := []struct {
		attr  slog.Attr
		key   string
		value any
	}{
		{attr: logger.Component("timefmt"), key: "component", value: "timefmt"},
		{attr: logger.Command("query parse"), key: "command", value: "query parse"},
		{attr: logger.Input("a=1"), key: "input", value: "a=1"},
		{attr: logger.Output("yaml"), key: "output", value: "yaml"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.attr.Key)
		assert.Equal(t, tt.value, tt.attr.Value.Any())
	}
}
