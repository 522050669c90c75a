package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hyphenkit/pkg/logger"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		entry := decodeEntry(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("json formatter overrides text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")
		assert.Equal(t, "hello", decodeEntry(t, buf)["msg"])
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decodeEntry(t, buf)["svc"])
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("warn"))
		log.Info("dropped")
		assert.Zero(t, buf.Len())
		log.Warn("kept")
		assert.Equal(t, "kept", decodeEntry(t, buf)["msg"])
	})
}

func TestContextExtraction(t *testing.T) {
	type key string
	k := key("id")

	t.Run("extractor", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(k).(string); ok {
					return slog.String("id", v), true
				}
				return slog.Attr{}, false
			}),
		)
		log.InfoContext(context.WithValue(context.Background(), k, "abc"), "msg")
		assert.Equal(t, "abc", decodeEntry(t, buf)["id"])
	})

	t.Run("context value", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("source", k))
		log.InfoContext(context.WithValue(context.Background(), k, "s3"), "msg")
		assert.Equal(t, "s3", decodeEntry(t, buf)["source"])
	})

	t.Run("missing value is skipped", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("source", k))
		log.InfoContext(context.Background(), "msg")
		assert.NotContains(t, decodeEntry(t, buf), "source")
	})

	t.Run("preserved through With", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("source", k)).
			With(slog.String("a", "b")).WithGroup("g")
		log.InfoContext(context.WithValue(context.Background(), k, "r-2"), "msg", slog.Int("n", 1))
		entry := decodeEntry(t, buf)
		assert.Equal(t, "b", entry["a"])
		assert.Contains(t, entry, "g")
	})
}

func TestEnvironmentOptions(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("dev", "svc"), logger.WithOutput(buf))
		log.Debug("msg")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "service=svc")
		assert.Contains(t, buf.String(), "env=development")
	})

	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", "svc"), logger.WithOutput(buf))
		log.Debug("dropped")
		assert.Zero(t, buf.Len())
		log.Info("msg")
		entry := decodeEntry(t, buf)
		assert.Equal(t, "svc", entry["service"])
		assert.Equal(t, logger.EnvProduction, entry["env"])
	})
}

func TestWithFormat_Invalid(t *testing.T) {
	assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	assert.Panics(t, func() { logger.WithLevelName("loud") })
}

func TestParseLevel(t *testing.T) {
	l, err := logger.ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	_, err = logger.ParseLevel("verbose")
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf), logger.WithAttr(logger.Component("cli"))))
	slog.Info("msg")

	entry := decodeEntry(t, buf)
	assert.Equal(t, "msg", entry["msg"])
	assert.Equal(t, "cli", entry["component"])
}
