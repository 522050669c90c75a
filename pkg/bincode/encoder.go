package bincode

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"io"
	"slices"
)

// Encoder writes values to an io.Writer. The first write error is kept and
// every later call becomes a no-op; check Err once at the end.
type Encoder struct {
	w       io.Writer
	written int64
	err     error
	buf     [8]byte
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Err returns the first error encountered.
func (e *Encoder) Err() error { return e.err }

// Fail records err as the encoder's error unless one is already set.
// Later writes become no-ops.
func (e *Encoder) Fail(err error) {
	if e.err == nil && err != nil {
		e.err = err
	}
}

// Written returns the number of bytes written.
func (e *Encoder) Written() int64 { return e.written }

func (e *Encoder) write(p []byte) {
	if e.err != nil {
		return
	}
	n, err := e.w.Write(p)
	e.written += int64(n)
	e.err = err
}

func (e *Encoder) Uint8(v uint8) {
	e.buf[0] = v
	e.write(e.buf[:1])
}

func (e *Encoder) Uint16(v uint16) {
	binary.LittleEndian.PutUint16(e.buf[:2], v)
	e.write(e.buf[:2])
}

func (e *Encoder) Uint32(v uint32) {
	binary.LittleEndian.PutUint32(e.buf[:4], v)
	e.write(e.buf[:4])
}

func (e *Encoder) Uint64(v uint64) {
	binary.LittleEndian.PutUint64(e.buf[:8], v)
	e.write(e.buf[:8])
}

func (e *Encoder) Bool(v bool) {
	if v {
		e.Uint8(1)
		return
	}
	e.Uint8(0)
}

// Len writes an element count.
func (e *Encoder) Len(n int) {
	e.Uint64(uint64(n))
}

func (e *Encoder) Bytes(p []byte) {
	e.Len(len(p))
	e.write(p)
}

func (e *Encoder) String(s string) {
	e.Len(len(s))
	if e.err != nil {
		return
	}
	n, err := io.WriteString(e.w, s)
	e.written += int64(n)
	e.err = err
}

// SortedKeys returns the keys of m in ascending order, for deterministic map encoding.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Marshaler is implemented by types that know how to encode themselves.
type Marshaler interface {
	EncodeTo(enc *Encoder) error
}

// Unmarshaler is implemented by types that know how to decode themselves.
type Unmarshaler interface {
	DecodeFrom(dec *Decoder) error
}

// Marshal encodes v into a new byte slice.
func Marshal(v Marshaler) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.EncodeTo(NewEncoder(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes data into v under the given decoder options.
func Unmarshal(data []byte, v Unmarshaler, opts ...Option) error {
	return v.DecodeFrom(NewDecoder(bytes.NewReader(data), opts...))
}
