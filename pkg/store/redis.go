package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient defines the Redis commands used by RedisStore.
// *redis.Client and redis.UniversalClient satisfy it.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisStore implements Store for dictionaries kept as Redis string values.
// It is safe for concurrent use.
type RedisStore struct {
	client RedisClient
	prefix string
}

// NewRedisStore returns a store reading keys from client. A non-empty prefix
// is prepended to every key, e.g. "hyphen:".
func NewRedisStore(client RedisClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// Close closes the underlying client when it implements io.Closer.
// *redis.Client does.
func (s *RedisStore) Close() error {
	if c, ok := s.client.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Open fetches the value stored under key.
func (s *RedisStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, classifyContextError(err, "get")
	}

	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.prefix+key)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, classifyContextError(err, "get")
	case err != nil:
		return nil, fmt.Errorf("redis get %s: %w", s.prefix+key, err)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// RedisConfig holds connection settings for ConnectRedis.
type RedisConfig struct {
	URL            string // e.g. "redis://:password@localhost:6379/0"
	RetryAttempts  int
	RetryInterval  time.Duration
	ConnectTimeout time.Duration
}

// ConnectRedis opens a client for cfg.URL and pings it until it answers,
// trying at most cfg.RetryAttempts times.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Join(ErrInvalidRedisURL, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	attempts := max(cfg.RetryAttempts, 1)
	for attempt := 1; ; attempt++ {
		client := redis.NewClient(opts)
		if err = client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		if attempt >= attempts {
			return nil, errors.Join(ErrRedisNotReady, err)
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}
}
