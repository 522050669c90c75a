package store

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/dmitrymomot/hyphenkit/pkg/dictionary"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
	"github.com/dmitrymomot/hyphenkit/pkg/load"
)

// Store opens dictionary objects by key.
type Store interface {
	// Open returns a stream for key. Missing objects yield an error matching ErrNotFound.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// Load fetches the dictionary of type T for lang from s and verifies its
// language. The plain object is preferred; its ".zst" sibling is the fallback.
func Load[T any, PT load.Dict[T]](ctx context.Context, s Store, lang language.Language) (*T, error) {
	var zero T
	key := dictionary.FileName(lang, PT(&zero).Variant())

	rc, err := s.Open(ctx, key)
	compressed := false
	if errors.Is(err, ErrNotFound) {
		zrc, zerr := s.Open(ctx, key+load.ZstdExt)
		switch {
		case zerr == nil:
			rc, err, compressed = zrc, nil, true
		case !errors.Is(zerr, ErrNotFound):
			err = zerr
		}
	}
	if err != nil {
		return nil, load.FromIOError(err)
	}
	defer rc.Close()

	if compressed {
		return load.FromZstdReader[T, PT](lang, rc)
	}
	return load.FromReader[T, PT](lang, bufio.NewReader(rc))
}

// LoadStandard loads the standard dictionary for lang from s.
func LoadStandard(ctx context.Context, s Store, lang language.Language) (*dictionary.Standard, error) {
	return Load[dictionary.Standard](ctx, s, lang)
}

// LoadExtended loads the extended dictionary for lang from s.
func LoadExtended(ctx context.Context, s Store, lang language.Language) (*dictionary.Extended, error) {
	return Load[dictionary.Extended](ctx, s, lang)
}
