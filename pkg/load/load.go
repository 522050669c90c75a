package load

import (
	"io"

	"github.com/dmitrymomot/hyphenkit/pkg/bincode"
	"github.com/dmitrymomot/hyphenkit/pkg/dictionary"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
)

// Limit is the largest encoded dictionary, in bytes, any loader will decode.
const Limit = bincode.DefaultLimit

// Dict constrains the type parameters of the generic loaders to the
// dictionary variants: T is dictionary.Standard or dictionary.Extended and
// PT is its pointer type.
type Dict[T any] interface {
	*T
	dictionary.Dictionary
}

// FromReader decodes a dictionary of type T from r and verifies that it was
// built for lang. A dictionary for any other language is discarded and an
// ErrLanguageMismatch error is returned.
func FromReader[T any, PT Dict[T]](lang language.Language, r io.Reader) (*T, error) {
	dict, err := decode[T, PT](r)
	if err != nil {
		return nil, err
	}
	if found := PT(dict).Lang(); found != lang {
		return nil, mismatch(lang, found)
	}
	return dict, nil
}

// AnyFromReader decodes a dictionary of type T from r without checking its language.
func AnyFromReader[T any, PT Dict[T]](r io.Reader) (*T, error) {
	return decode[T, PT](r)
}

func decode[T any, PT Dict[T]](r io.Reader) (*T, error) {
	dict := new(T)
	if err := PT(dict).DecodeFrom(bincode.NewDecoder(r, bincode.WithLimit(Limit))); err != nil {
		return nil, classify(err)
	}
	return dict, nil
}

// Standard loads a standard dictionary for lang from r.
func Standard(lang language.Language, r io.Reader) (*dictionary.Standard, error) {
	return FromReader[dictionary.Standard](lang, r)
}

// AnyStandard loads a standard dictionary for whichever language r holds.
func AnyStandard(r io.Reader) (*dictionary.Standard, error) {
	return AnyFromReader[dictionary.Standard](r)
}

// Extended loads an extended dictionary for lang from r.
func Extended(lang language.Language, r io.Reader) (*dictionary.Extended, error) {
	return FromReader[dictionary.Extended](lang, r)
}

// AnyExtended loads an extended dictionary for whichever language r holds.
func AnyExtended(r io.Reader) (*dictionary.Extended, error) {
	return AnyFromReader[dictionary.Extended](r)
}
