package bincode

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeLimit is returned when decoding would consume more bytes than the limit allows.
	ErrSizeLimit = errors.New("size limit exceeded")

	// ErrTruncated is returned when the input ends in the middle of a value.
	ErrTruncated = errors.New("unexpected end of input")

	// ErrInvalidUTF8 is returned when a decoded string is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 string")

	// ErrInvalidValue is returned when a value is outside its allowed range.
	ErrInvalidValue = errors.New("invalid value")
)

// DecodeError reports malformed encoded data.
type DecodeError struct {
	Offset int64 // bytes consumed before the failing value
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("bincode: decode at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ReadError reports a failure of the underlying reader.
type ReadError struct {
	Offset int64
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("bincode: read at offset %d: %v", e.Offset, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
