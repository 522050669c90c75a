// Command hyphendict loads a hyphenation dictionary and prints a summary of it.
//
// Settings come from HYPHENDICT_* environment variables (see package config);
// flags override them. The dictionary is read from -file when given, otherwise
// from the local directory, otherwise from Redis, otherwise from the
// configured S3 bucket.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dmitrymomot/hyphenkit/pkg/config"
	"github.com/dmitrymomot/hyphenkit/pkg/dictionary"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
	"github.com/dmitrymomot/hyphenkit/pkg/load"
	"github.com/dmitrymomot/hyphenkit/pkg/logger"
	"github.com/dmitrymomot/hyphenkit/pkg/store"
)

var errUsage = errors.New("usage")

// sourceKey carries the name of the dictionary source for log records.
type sourceKey struct{}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "hyphendict:", err)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	case errors.Is(err, load.ErrLanguageMismatch):
		return 3
	default:
		return 1
	}
}

type options struct {
	envFile   string
	file      string
	dir       string
	lang      string
	variant   string
	any       bool
	logLevel  string
	logFormat string
	logEnv    string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("hyphendict", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.envFile, "env", "", "load variables from this .env file")
	fs.StringVar(&o.file, "file", "", "dictionary file (.bincode or .bincode.zst)")
	fs.StringVar(&o.dir, "dir", "", "directory of dictionaries named <lang>.<variant>.bincode[.zst]")
	fs.StringVar(&o.lang, "lang", "", "expected language code, e.g. en-us")
	fs.StringVar(&o.variant, "variant", "", "standard or extended")
	fs.BoolVar(&o.any, "any", false, "skip the language check (requires -file)")
	fs.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&o.logFormat, "log-format", "", "text or json")
	fs.StringVar(&o.logEnv, "log-env", "", "development or production logging preset")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return o, err
		}
		return o, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("%w: unexpected arguments %s", errUsage, strings.Join(fs.Args(), " "))
	}
	return o, nil
}

// settings merges flags over the environment.
func settings(o options) (config.Config, error) {
	if o.envFile != "" {
		if err := config.LoadEnv(o.envFile); err != nil {
			return config.Config{}, err
		}
	} else if err := config.LoadEnv(); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Parse()
	if err != nil {
		return config.Config{}, err
	}
	if o.lang != "" {
		if cfg.Language, err = language.Parse(o.lang); err != nil {
			return config.Config{}, fmt.Errorf("%w: %v", errUsage, err)
		}
	}
	if o.variant != "" {
		if cfg.Variant, err = dictionary.ParseVariant(o.variant); err != nil {
			return config.Config{}, fmt.Errorf("%w: %v", errUsage, err)
		}
	}
	if o.dir != "" {
		cfg.Dir = o.dir
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	if o.logEnv != "" {
		cfg.Log.Env = o.logEnv
	}
	return cfg, nil
}

// newLogger builds the CLI logger. Without an environment preset it logs
// text at info level.
func newLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithAttr(logger.Component("hyphendict")),
		logger.WithContextValue("source", sourceKey{}),
	}

	switch env := strings.ToLower(cfg.Env); env {
	case "":
		opts = append(opts, logger.WithLevel(slog.LevelInfo), logger.WithTextFormatter())
	case logger.EnvDevelopment, logger.EnvProduction:
		opts = append(opts, logger.WithEnvironment(env, "hyphendict"))
	default:
		return nil, fmt.Errorf("%w: invalid log environment %q", errUsage, cfg.Env)
	}

	if cfg.Level != "" {
		level, err := logger.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.Format != "" {
		format := logger.Format(strings.ToLower(cfg.Format))
		if format != logger.FormatJSON && format != logger.FormatText {
			return nil, fmt.Errorf("%w: invalid log format %q", errUsage, cfg.Format)
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := settings(o)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	dict, err := fetch(ctx, o, cfg, log)
	if err != nil {
		return err
	}
	return describe(stdout, dict)
}

func fetch(ctx context.Context, o options, cfg config.Config, log *slog.Logger) (dictionary.Dictionary, error) {
	if o.any {
		if o.file == "" || strings.HasSuffix(o.file, load.ZstdExt) {
			return nil, fmt.Errorf("%w: -any requires an uncompressed -file", errUsage)
		}
		return fromFileUnverified(context.WithValue(ctx, sourceKey{}, "file"), o.file, cfg.Variant, log)
	}
	if o.file != "" {
		return fromFile(context.WithValue(ctx, sourceKey{}, "file"), o.file, cfg, log)
	}

	src, name, err := source(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return fromStore(context.WithValue(ctx, sourceKey{}, name), src, cfg, log)
}

// fromStore loads the configured dictionary from src and closes src
// afterwards when it is an io.Closer.
func fromStore(ctx context.Context, src store.Store, cfg config.Config, log *slog.Logger) (dictionary.Dictionary, error) {
	if c, ok := src.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				log.WarnContext(ctx, "closing dictionary source", logger.Error(err))
			}
		}()
	}

	ld := store.NewLoader(src, store.WithLogger(log))
	if cfg.Variant == dictionary.VariantExtended {
		return ld.Extended(ctx, cfg.Language)
	}
	return ld.Standard(ctx, cfg.Language)
}

// source picks the configured store and names it.
func source(ctx context.Context, cfg config.Config) (store.Store, string, error) {
	switch {
	case cfg.Dir != "":
		s, err := store.NewLocalStore(cfg.Dir)
		return s, "local", err
	case cfg.Redis.Enabled():
		client, err := store.ConnectRedis(ctx, store.RedisConfig{
			URL:            cfg.Redis.URL,
			RetryAttempts:  cfg.Redis.RetryAttempts,
			RetryInterval:  cfg.Redis.RetryInterval,
			ConnectTimeout: cfg.Redis.ConnectTimeout,
		})
		if err != nil {
			return nil, "", err
		}
		return store.NewRedisStore(client, cfg.Redis.Prefix), "redis", nil
	case cfg.S3.Enabled():
		s, err := store.NewS3Store(ctx, store.S3Config{
			Bucket:         cfg.S3.Bucket,
			Region:         cfg.S3.Region,
			Prefix:         cfg.S3.Prefix,
			AccessKeyID:    cfg.S3.AccessKeyID,
			SecretKey:      cfg.S3.SecretKey,
			Endpoint:       cfg.S3.Endpoint,
			ForcePathStyle: cfg.S3.ForcePathStyle,
		}, store.WithS3Timeout(cfg.S3.Timeout))
		return s, "s3", err
	default:
		return nil, "", fmt.Errorf("%w: no dictionary source; set -file, -dir, HYPHENDICT_DIR, HYPHENDICT_REDIS_URL or HYPHENDICT_S3_BUCKET", errUsage)
	}
}

func fromFile(ctx context.Context, path string, cfg config.Config, log *slog.Logger) (dictionary.Dictionary, error) {
	log = log.With(logger.Path(path), logger.Language(cfg.Language), logger.Variant(cfg.Variant))

	var (
		dict dictionary.Dictionary
		err  error
	)
	if cfg.Variant == dictionary.VariantExtended {
		dict, err = load.ExtendedFromPath(cfg.Language, path)
	} else {
		dict, err = load.StandardFromPath(cfg.Language, path)
	}
	if err != nil {
		log.WarnContext(ctx, "dictionary load failed", logger.Error(err))
		return nil, err
	}
	log.DebugContext(ctx, "dictionary loaded")
	return dict, nil
}

func fromFileUnverified(ctx context.Context, path string, v dictionary.Variant, log *slog.Logger) (dictionary.Dictionary, error) {
	log = log.With(logger.Path(path), logger.Variant(v))

	f, err := os.Open(path)
	if err != nil {
		return nil, load.FromIOError(err)
	}
	defer f.Close()

	var dict dictionary.Dictionary
	if v == dictionary.VariantExtended {
		dict, err = load.AnyExtended(f)
	} else {
		dict, err = load.AnyStandard(f)
	}
	if err != nil {
		log.WarnContext(ctx, "dictionary load failed", logger.Error(err))
		return nil, err
	}
	log.DebugContext(ctx, "dictionary loaded", logger.Language(dict.Lang()))
	return dict, nil
}

func describe(w io.Writer, dict dictionary.Dictionary) error {
	var patterns, exceptions int
	var minima dictionary.Minima
	switch d := dict.(type) {
	case *dictionary.Standard:
		patterns, exceptions, minima = len(d.Patterns), len(d.Exceptions), d.Minima
	case *dictionary.Extended:
		patterns, exceptions, minima = len(d.Patterns), len(d.Exceptions), d.Minima
	}
	_, err := fmt.Fprintf(w,
		"language:   %s (%s)\nvariant:    %s\npatterns:   %d\nexceptions: %d\nminima:     %d/%d\n",
		dict.Lang(), dict.Lang().Code(), dict.Variant(), patterns, exceptions, minima.Left, minima.Right,
	)
	return err
}
