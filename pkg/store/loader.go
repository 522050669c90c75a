package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/hyphenkit/pkg/dictionary"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
	"github.com/dmitrymomot/hyphenkit/pkg/load"
	"github.com/dmitrymomot/hyphenkit/pkg/logger"
)

const defaultConcurrency = 4

// Loader loads dictionaries from a Store and logs each attempt.
// It is safe for concurrent use.
type Loader struct {
	store       Store
	logger      *slog.Logger
	concurrency int
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) LoaderOption {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithConcurrency limits how many dictionaries LoadMany fetches at once.
// Values below 1 are ignored.
func WithConcurrency(n int) LoaderOption {
	return func(ld *Loader) {
		if n > 0 {
			ld.concurrency = n
		}
	}
}

// NewLoader returns a Loader reading from s.
func NewLoader(s Store, opts ...LoaderOption) *Loader {
	ld := &Loader{
		store:       s,
		logger:      logger.Discard(),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// Standard loads the standard dictionary for lang.
func (ld *Loader) Standard(ctx context.Context, lang language.Language) (*dictionary.Standard, error) {
	return loadLogged[dictionary.Standard](ctx, ld, lang)
}

// Extended loads the extended dictionary for lang.
func (ld *Loader) Extended(ctx context.Context, lang language.Language) (*dictionary.Extended, error) {
	return loadLogged[dictionary.Extended](ctx, ld, lang)
}

// LoadMany loads the v dictionaries of langs, at most WithConcurrency at a
// time. Results are in the order of langs. The first failure cancels the
// remaining loads and is returned. Unknown variants fail with
// dictionary.ErrUnknownVariant before anything is read.
func (ld *Loader) LoadMany(ctx context.Context, v dictionary.Variant, langs ...language.Language) ([]dictionary.Dictionary, error) {
	if v != dictionary.VariantStandard && v != dictionary.VariantExtended {
		return nil, fmt.Errorf("%w: %s", dictionary.ErrUnknownVariant, v)
	}
	out := make([]dictionary.Dictionary, len(langs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(ld.concurrency)
	for i, lang := range langs {
		g.Go(func() error {
			var (
				dict dictionary.Dictionary
				err  error
			)
			if v == dictionary.VariantExtended {
				dict, err = ld.Extended(ctx, lang)
			} else {
				dict, err = ld.Standard(ctx, lang)
			}
			if err != nil {
				return err
			}
			out[i] = dict
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func loadLogged[T any, PT load.Dict[T]](ctx context.Context, ld *Loader, lang language.Language) (*T, error) {
	var zero T
	v := PT(&zero).Variant()

	start := time.Now()
	dict, err := Load[T, PT](ctx, ld.store, lang)
	ld.report(ctx, lang, v, start, err)
	return dict, err
}

func (ld *Loader) report(ctx context.Context, lang language.Language, v dictionary.Variant, start time.Time, err error) {
	attrs := []any{
		logger.Component("store"),
		logger.Language(lang),
		logger.Variant(v),
		logger.Duration(time.Since(start)),
	}
	if err != nil {
		ld.logger.WarnContext(ctx, "dictionary load failed", append(attrs, logger.Error(err))...)
		return
	}
	ld.logger.DebugContext(ctx, "dictionary loaded", attrs...)
}
