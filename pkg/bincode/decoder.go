package bincode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"unicode/utf8"
)

// DefaultLimit is the maximum number of bytes a Decoder consumes unless
// configured otherwise.
const DefaultLimit int64 = 5_000_000

// Decoder reads values from an io.Reader under a byte budget.
// A Decoder is not safe for concurrent use.
type Decoder struct {
	r        io.Reader
	limit    int64
	consumed int64
	buf      [8]byte
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLimit sets the byte budget. Non-positive values are ignored.
func WithLimit(n int64) Option {
	return func(d *Decoder) {
		if n > 0 {
			d.limit = n
		}
	}
}

// NewDecoder returns a Decoder reading from r. The reader is consumed
// sequentially and never seeked.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	d := &Decoder{r: r, limit: DefaultLimit}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Limit returns the configured byte budget.
func (d *Decoder) Limit() int64 { return d.limit }

// Consumed returns the number of bytes read so far.
func (d *Decoder) Consumed() int64 { return d.consumed }

// Remaining returns the unused part of the byte budget.
func (d *Decoder) Remaining() int64 { return d.limit - d.consumed }

// Invalid returns a *DecodeError for a value rejected by a type's own decoding
// logic, for example an unknown enum discriminant.
func (d *Decoder) Invalid(format string, args ...any) error {
	return &DecodeError{
		Offset: d.consumed,
		Err:    fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...)),
	}
}

// charge reserves n bytes of budget.
func (d *Decoder) charge(n int64) error {
	if n < 0 || n > d.Remaining() {
		return &DecodeError{Offset: d.consumed, Err: ErrSizeLimit}
	}
	return nil
}

// fill reads exactly len(p) bytes after charging them against the budget.
func (d *Decoder) fill(p []byte) error {
	if err := d.charge(int64(len(p))); err != nil {
		return err
	}
	n, err := io.ReadFull(d.r, p)
	offset := d.consumed
	d.consumed += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return &DecodeError{Offset: offset, Err: ErrTruncated}
		}
		return &ReadError{Offset: offset, Err: err}
	}
	return nil
}

func (d *Decoder) Uint8() (uint8, error) {
	if err := d.fill(d.buf[:1]); err != nil {
		return 0, err
	}
	return d.buf[0], nil
}

func (d *Decoder) Uint16() (uint16, error) {
	if err := d.fill(d.buf[:2]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(d.buf[:2]), nil
}

func (d *Decoder) Uint32() (uint32, error) {
	if err := d.fill(d.buf[:4]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(d.buf[:4]), nil
}

func (d *Decoder) Uint64() (uint64, error) {
	if err := d.fill(d.buf[:8]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(d.buf[:8]), nil
}

// Bool decodes a single byte that must be 0 or 1.
func (d *Decoder) Bool() (bool, error) {
	v, err := d.Uint8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, d.Invalid("bool byte %d", v)
	}
}

// Len decodes a u64 element count. minSize is the smallest number of bytes a
// single element can occupy; a count whose elements could not fit in the
// remaining budget fails with ErrSizeLimit before the caller allocates.
func (d *Decoder) Len(minSize int) (int, error) {
	offset := d.consumed
	n, err := d.Uint64()
	if err != nil {
		return 0, err
	}
	if minSize < 1 {
		minSize = 1
	}
	if n > math.MaxInt64/uint64(minSize) || int64(n)*int64(minSize) > d.Remaining() {
		return 0, &DecodeError{Offset: offset, Err: ErrSizeLimit}
	}
	return int(n), nil
}

// Bytes decodes a length-prefixed byte slice.
func (d *Decoder) Bytes() ([]byte, error) {
	n, err := d.Len(1)
	if err != nil {
		return nil, err
	}
	p := make([]byte, n)
	if err := d.fill(p); err != nil {
		return nil, err
	}
	return p, nil
}

// String decodes a length-prefixed UTF-8 string.
func (d *Decoder) String() (string, error) {
	offset := d.consumed
	p, err := d.Bytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(p) {
		return "", &DecodeError{Offset: offset, Err: ErrInvalidUTF8}
	}
	return string(p), nil
}
