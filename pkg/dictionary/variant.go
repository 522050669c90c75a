package dictionary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/hyphenkit/pkg/bincode"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
)

// ErrUnknownVariant is returned by ParseVariant for unrecognised names.
var ErrUnknownVariant = errors.New("unknown dictionary variant")

// Variant names one of the two dictionary shapes.
type Variant uint8

const (
	VariantStandard Variant = iota
	VariantExtended
)

// String returns the name used in dictionary file names.
func (v Variant) String() string {
	switch v {
	case VariantStandard:
		return "standard"
	case VariantExtended:
		return "extended"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// ParseVariant parses "standard" or "extended".
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "standard":
		return VariantStandard, nil
	case "extended":
		return VariantExtended, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if v > VariantExtended {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, uint8(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(strings.ToLower(strings.TrimSpace(string(text))))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Dictionary is implemented by *Standard and *Extended.
type Dictionary interface {
	bincode.Marshaler
	bincode.Unmarshaler

	// Lang returns the embedded language tag.
	Lang() language.Language
	// Variant reports which shape the dictionary has.
	Variant() Variant
}

var (
	_ Dictionary = (*Standard)(nil)
	_ Dictionary = (*Extended)(nil)
)

// FileExt is the extension of encoded dictionary files.
const FileExt = ".bincode"

// FileName returns the conventional file name of a dictionary, for example
// "en-us.standard.bincode".
func FileName(lang language.Language, v Variant) string {
	return lang.Code() + "." + v.String() + FileExt
}

// ParseFileName is the inverse of FileName. Compression suffixes such as
// ".zst" are not accepted.
func ParseFileName(name string) (language.Language, Variant, bool) {
	base, ok := strings.CutSuffix(name, FileExt)
	if !ok {
		return 0, 0, false
	}
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return 0, 0, false
	}
	lang, err := language.Parse(base[:i])
	if err != nil {
		return 0, 0, false
	}
	v, err := ParseVariant(base[i+1:])
	if err != nil {
		return 0, 0, false
	}
	return lang, v, true
}
