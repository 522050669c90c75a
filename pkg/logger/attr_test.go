package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hyphenkit/pkg/dictionary"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
	"github.com/dmitrymomot/hyphenkit/pkg/logger"
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

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
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

func TestDictionaryAttrs(t *testing.T) {
	cases := []struct {
		got, want slog.Attr
	}{
		{logger.Language(language.EnglishUS), slog.String("language", "en-us")},
		{logger.Variant(dictionary.VariantExtended), slog.String("variant", "extended")},
		{logger.Key("a/b"), slog.String("key", "a/b")},
		{logger.Path("/tmp/x"), slog.String("path", "/tmp/x")},
		{logger.Bytes(42), slog.Int64("bytes", 42)},
		{logger.Duration(time.Second), slog.Duration("duration", time.Second)},
		{logger.Component("store"), slog.String("component", "store")},
	}
	for _, tc := range cases {
		assert.True(t, tc.got.Equal(tc.want), "%v != %v", tc.got, tc.want)
	}
}
