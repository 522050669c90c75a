package load

import (
	"bufio"
	"errors"
	"io/fs"
	"slices"

	"github.com/dmitrymomot/hyphenkit/pkg/dictionary"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
)

// Bundle serves dictionaries stored in a file system, typically an embed.FS,
// under the names produced by dictionary.FileName. A Bundle is read-only and
// safe for concurrent use.
type Bundle struct {
	fsys fs.FS
}

// NewBundle returns a Bundle over the root of fsys.
func NewBundle(fsys fs.FS) *Bundle {
	return &Bundle{fsys: fsys}
}

// FromBundle loads the dictionary of type T for lang from b. A dictionary the
// bundle does not contain is an ErrResource error.
func FromBundle[T any, PT Dict[T]](b *Bundle, lang language.Language) (*T, error) {
	var zero T
	name := dictionary.FileName(lang, PT(&zero).Variant())

	f, err := b.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, missingResource(name, err)
		}
		return nil, FromIOError(err)
	}
	defer f.Close()

	return FromReader[T, PT](lang, bufio.NewReader(f))
}

// StandardFromBundle loads the standard dictionary for lang from b.
func StandardFromBundle(b *Bundle, lang language.Language) (*dictionary.Standard, error) {
	return FromBundle[dictionary.Standard](b, lang)
}

// ExtendedFromBundle loads the extended dictionary for lang from b.
func ExtendedFromBundle(b *Bundle, lang language.Language) (*dictionary.Extended, error) {
	return FromBundle[dictionary.Extended](b, lang)
}

// Has reports whether b contains a dictionary for lang in variant v.
func (b *Bundle) Has(lang language.Language, v dictionary.Variant) bool {
	_, err := fs.Stat(b.fsys, dictionary.FileName(lang, v))
	return err == nil
}

// Languages lists the languages b holds a dictionary for in variant v,
// in wire order. Files with unrecognised names are ignored.
func (b *Bundle) Languages(v dictionary.Variant) ([]language.Language, error) {
	entries, err := fs.ReadDir(b.fsys, ".")
	if err != nil {
		return nil, FromIOError(err)
	}
	var out []language.Language
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lang, variant, ok := dictionary.ParseFileName(e.Name())
		if ok && variant == v {
			out = append(out, lang)
		}
	}
	slices.Sort(out)
	return out, nil
}
