package dictionary

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/hyphenkit/pkg/bincode"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
)

// Tally is one hyphenation score inside a pattern: Value applies at the
// inter-letter position Index.
type Tally struct {
	Index uint8
	Value uint8
}

// Minima are the shortest prefix and suffix, in characters, that hyphenation
// may leave on either side of a break.
type Minima struct {
	Left  int
	Right int
}

// Subregion describes a non-standard break: Left and Right characters around
// the break are replaced by Substitution, and the break falls Shift
// characters into the substitution.
type Subregion struct {
	Left         int
	Right        int
	Substitution string
	Shift        int
}

func encodeLanguage(enc *bincode.Encoder, lang language.Language) {
	if !lang.Valid() {
		enc.Fail(fmt.Errorf("%w: language discriminant %d", bincode.ErrInvalidValue, uint8(lang)))
		return
	}
	enc.Uint8(uint8(lang))
}

func decodeLanguage(dec *bincode.Decoder) (language.Language, error) {
	v, err := dec.Uint8()
	if err != nil {
		return 0, err
	}
	lang := language.Language(v)
	if !lang.Valid() {
		return 0, dec.Invalid("language discriminant %d", v)
	}
	return lang, nil
}

// encodeUint writes v as a u32. Values outside [0, MaxUint32] fail the encoder.
func encodeUint(enc *bincode.Encoder, v int) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		enc.Fail(fmt.Errorf("%w: integer %d out of range", bincode.ErrInvalidValue, v))
		return
	}
	enc.Uint32(uint32(v))
}

func decodeUint(dec *bincode.Decoder) (int, error) {
	v, err := dec.Uint32()
	if err != nil {
		return 0, err
	}
	if uint64(v) > math.MaxInt {
		return 0, dec.Invalid("integer %d out of range", v)
	}
	return int(v), nil
}

func encodeMinima(enc *bincode.Encoder, m Minima) {
	encodeUint(enc, m.Left)
	encodeUint(enc, m.Right)
}

func decodeMinima(dec *bincode.Decoder) (Minima, error) {
	var (
		m   Minima
		err error
	)
	if m.Left, err = decodeUint(dec); err != nil {
		return m, err
	}
	if m.Right, err = decodeUint(dec); err != nil {
		return m, err
	}
	return m, nil
}

func encodeTallies(enc *bincode.Encoder, tallies []Tally) {
	enc.Len(len(tallies))
	for _, t := range tallies {
		enc.Uint8(t.Index)
		enc.Uint8(t.Value)
	}
}

func decodeTallies(dec *bincode.Decoder) ([]Tally, error) {
	n, err := dec.Len(2)
	if err != nil || n == 0 {
		return nil, err
	}
	out := make([]Tally, n)
	for i := range out {
		if out[i].Index, err = dec.Uint8(); err != nil {
			return nil, err
		}
		if out[i].Value, err = dec.Uint8(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func encodeBreaks(enc *bincode.Encoder, breaks []int) {
	enc.Len(len(breaks))
	for _, b := range breaks {
		encodeUint(enc, b)
	}
}

func decodeBreaks(dec *bincode.Decoder) ([]int, error) {
	n, err := dec.Len(4)
	if err != nil || n == 0 {
		return nil, err
	}
	out := make([]int, n)
	for i := range out {
		if out[i], err = decodeUint(dec); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// encodeSubregion writes an optional subregion as a presence flag followed by its fields.
func encodeSubregion(enc *bincode.Encoder, s *Subregion) {
	if s == nil {
		enc.Bool(false)
		return
	}
	enc.Bool(true)
	encodeUint(enc, s.Left)
	encodeUint(enc, s.Right)
	enc.String(s.Substitution)
	encodeUint(enc, s.Shift)
}

func decodeSubregion(dec *bincode.Decoder) (*Subregion, error) {
	present, err := dec.Bool()
	if err != nil || !present {
		return nil, err
	}
	s := &Subregion{}
	if s.Left, err = decodeUint(dec); err != nil {
		return nil, err
	}
	if s.Right, err = decodeUint(dec); err != nil {
		return nil, err
	}
	if s.Substitution, err = dec.String(); err != nil {
		return nil, err
	}
	if s.Shift, err = decodeUint(dec); err != nil {
		return nil, err
	}
	return s, nil
}
