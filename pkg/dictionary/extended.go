package dictionary

import (
	"bytes"

	"github.com/dmitrymomot/hyphenkit/pkg/bincode"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
)

// ExtendedPattern is a pattern whose break may rewrite the surrounding letters.
type ExtendedPattern struct {
	Tallies   []Tally
	Subregion *Subregion
}

// ExtendedException is an exception word with an optional non-standard break.
type ExtendedException struct {
	Breaks    []int
	Subregion *Subregion
}

// Extended is a dictionary supporting non-standard hyphenation.
type Extended struct {
	Language   language.Language
	Patterns   map[string]ExtendedPattern
	Exceptions map[string]ExtendedException
	Minima     Minima
}

func (d *Extended) Lang() language.Language { return d.Language }

func (d *Extended) Variant() Variant { return VariantExtended }

// EncodeTo writes the dictionary: language, patterns, exceptions, minima.
func (d *Extended) EncodeTo(enc *bincode.Encoder) error {
	encodeLanguage(enc, d.Language)

	enc.Len(len(d.Patterns))
	for _, k := range bincode.SortedKeys(d.Patterns) {
		p := d.Patterns[k]
		enc.String(k)
		encodeTallies(enc, p.Tallies)
		encodeSubregion(enc, p.Subregion)
	}

	enc.Len(len(d.Exceptions))
	for _, k := range bincode.SortedKeys(d.Exceptions) {
		e := d.Exceptions[k]
		enc.String(k)
		encodeBreaks(enc, e.Breaks)
		encodeSubregion(enc, e.Subregion)
	}

	encodeMinima(enc, d.Minima)
	return enc.Err()
}

// DecodeFrom replaces d with the dictionary read from dec.
// On error d is left unchanged.
func (d *Extended) DecodeFrom(dec *bincode.Decoder) error {
	var (
		out Extended
		err error
	)
	if out.Language, err = decodeLanguage(dec); err != nil {
		return err
	}

	// key length, element count and subregion flag
	n, err := dec.Len(17)
	if err != nil {
		return err
	}
	if n > 0 {
		out.Patterns = make(map[string]ExtendedPattern, n)
		for range n {
			k, err := dec.String()
			if err != nil {
				return err
			}
			var p ExtendedPattern
			if p.Tallies, err = decodeTallies(dec); err != nil {
				return err
			}
			if p.Subregion, err = decodeSubregion(dec); err != nil {
				return err
			}
			out.Patterns[k] = p
		}
	}

	if n, err = dec.Len(17); err != nil {
		return err
	}
	if n > 0 {
		out.Exceptions = make(map[string]ExtendedException, n)
		for range n {
			k, err := dec.String()
			if err != nil {
				return err
			}
			var e ExtendedException
			if e.Breaks, err = decodeBreaks(dec); err != nil {
				return err
			}
			if e.Subregion, err = decodeSubregion(dec); err != nil {
				return err
			}
			out.Exceptions[k] = e
		}
	}

	if out.Minima, err = decodeMinima(dec); err != nil {
		return err
	}

	*d = out
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d *Extended) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.EncodeTo(bincode.NewEncoder(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler under bincode.DefaultLimit.
func (d *Extended) UnmarshalBinary(data []byte) error {
	return bincode.Unmarshal(data, d)
}
