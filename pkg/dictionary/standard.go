package dictionary

import (
	"bytes"

	"github.com/dmitrymomot/hyphenkit/pkg/bincode"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
)

// Standard is a dictionary of plain Liang patterns and exceptions.
type Standard struct {
	Language language.Language
	// Patterns maps a pattern's letters to its tallies.
	Patterns map[string][]Tally
	// Exceptions maps whole words to their break indices.
	Exceptions map[string][]int
	Minima     Minima
}

func (d *Standard) Lang() language.Language { return d.Language }

func (d *Standard) Variant() Variant { return VariantStandard }

// EncodeTo writes the dictionary: language, patterns, exceptions, minima.
func (d *Standard) EncodeTo(enc *bincode.Encoder) error {
	encodeLanguage(enc, d.Language)

	enc.Len(len(d.Patterns))
	for _, k := range bincode.SortedKeys(d.Patterns) {
		enc.String(k)
		encodeTallies(enc, d.Patterns[k])
	}

	enc.Len(len(d.Exceptions))
	for _, k := range bincode.SortedKeys(d.Exceptions) {
		enc.String(k)
		encodeBreaks(enc, d.Exceptions[k])
	}

	encodeMinima(enc, d.Minima)
	return enc.Err()
}

// DecodeFrom replaces d with the dictionary read from dec.
// On error d is left unchanged.
func (d *Standard) DecodeFrom(dec *bincode.Decoder) error {
	var (
		out Standard
		err error
	)
	if out.Language, err = decodeLanguage(dec); err != nil {
		return err
	}

	// a map entry is at least a key length and an element count
	n, err := dec.Len(16)
	if err != nil {
		return err
	}
	if n > 0 {
		out.Patterns = make(map[string][]Tally, n)
		for range n {
			k, err := dec.String()
			if err != nil {
				return err
			}
			if out.Patterns[k], err = decodeTallies(dec); err != nil {
				return err
			}
		}
	}

	if n, err = dec.Len(16); err != nil {
		return err
	}
	if n > 0 {
		out.Exceptions = make(map[string][]int, n)
		for range n {
			k, err := dec.String()
			if err != nil {
				return err
			}
			if out.Exceptions[k], err = decodeBreaks(dec); err != nil {
				return err
			}
		}
	}

	if out.Minima, err = decodeMinima(dec); err != nil {
		return err
	}

	*d = out
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d *Standard) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.EncodeTo(bincode.NewEncoder(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler under bincode.DefaultLimit.
func (d *Standard) UnmarshalBinary(data []byte) error {
	return bincode.Unmarshal(data, d)
}
