package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/hyphenkit/pkg/dictionary"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "HYPHENDICT_"

// Config holds the hyphendict settings.
type Config struct {
	Language language.Language  `env:"LANGUAGE" envDefault:"en-us"`
	Variant  dictionary.Variant `env:"VARIANT" envDefault:"standard"`
	Dir      string             `env:"DIR"`
	S3       S3Config           `envPrefix:"S3_"`
	Redis    RedisConfig        `envPrefix:"REDIS_"`
	Log      LogConfig          `envPrefix:"LOG_"`
}

// S3Config configures the S3 dictionary source.
type S3Config struct {
	Bucket         string        `env:"BUCKET"`
	Region         string        `env:"REGION" envDefault:"us-east-1"`
	Prefix         string        `env:"PREFIX"`
	Endpoint       string        `env:"ENDPOINT"`
	AccessKeyID    string        `env:"ACCESS_KEY_ID"`
	SecretKey      string        `env:"SECRET_ACCESS_KEY"`
	ForcePathStyle bool          `env:"FORCE_PATH_STYLE"`
	Timeout        time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Enabled reports whether an S3 bucket is configured.
func (c S3Config) Enabled() bool { return c.Bucket != "" }

// RedisConfig configures the Redis dictionary source.
type RedisConfig struct {
	URL            string        `env:"URL"`
	Prefix         string        `env:"PREFIX"`
	RetryAttempts  int           `env:"RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"RETRY_INTERVAL" envDefault:"1s"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
}

// Enabled reports whether a Redis URL is configured.
func (c RedisConfig) Enabled() bool { return c.URL != "" }

// LogConfig configures logging. Env selects a preset ("development" or
// "production"); Level and Format override it when set.
type LogConfig struct {
	Env    string `env:"ENV"`
	Level  string `env:"LEVEL"`
	Format string `env:"FORMAT"`
}

// LoadEnv loads the given .env files, or ".env" in the working directory when
// none are given. A missing default file is not an error; a missing named
// file is.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses EnvPrefix-prefixed environment variables into v.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.ParseWithOptions(v, env.Options{Prefix: EnvPrefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// Parse returns the Config described by the environment.
func Parse() (Config, error) {
	var cfg Config
	if err := Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
