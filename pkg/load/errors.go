package load

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/hyphenkit/pkg/bincode"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
)

// Failure kinds. Compare with errors.Is.
var (
	ErrDeserialization  = errors.New("dictionary could not be deserialized")
	ErrIO               = errors.New("dictionary could not be read")
	ErrLanguageMismatch = errors.New("dictionary language mismatch")
	ErrResource         = errors.New("the embedded dictionary could not be retrieved")
)

// Error is returned by every load function.
type Error struct {
	kind error

	// Expected and Found are set for ErrLanguageMismatch only.
	Expected language.Language
	Found    language.Language

	// Name is the missing resource for ErrResource.
	Name string

	// Err is the underlying cause, if any.
	Err error
}

// Kind returns one of ErrDeserialization, ErrIO, ErrLanguageMismatch or ErrResource.
func (e *Error) Kind() error { return e.kind }

func (e *Error) Error() string {
	switch e.kind {
	case ErrLanguageMismatch:
		return fmt.Sprintf("language mismatch: attempted to load a dictionary for `%s`, but found a dictionary for `%s` instead",
			e.Expected, e.Found)
	case ErrResource:
		if e.Name != "" {
			return fmt.Sprintf("%s: %s", ErrResource, e.Name)
		}
		return ErrResource.Error()
	case ErrDeserialization:
		return e.withCause("deserialize dictionary")
	case ErrIO:
		return e.withCause("read dictionary")
	default:
		return e.withCause("load dictionary")
	}
}

func (e *Error) withCause(prefix string) string {
	if e.Err == nil {
		return prefix + ": " + e.kind.Error()
	}
	return prefix + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool { return e.kind != nil && target == e.kind }

// FromIOError wraps a failure to open or read a dictionary source.
// It returns nil for a nil error.
func FromIOError(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{kind: ErrIO, Err: err}
}

// FromDecodeError wraps a failure to decode dictionary bytes.
// It returns nil for a nil error.
func FromDecodeError(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{kind: ErrDeserialization, Err: err}
}

func mismatch(expected, found language.Language) *Error {
	return &Error{kind: ErrLanguageMismatch, Expected: expected, Found: found}
}

func missingResource(name string, cause error) *Error {
	return &Error{kind: ErrResource, Name: name, Err: cause}
}

// classify maps a codec error onto the taxonomy: reader failures are I/O,
// everything else is a decoding failure.
func classify(err error) error {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr
	}
	var rerr *bincode.ReadError
	if errors.As(err, &rerr) {
		return FromIOError(err)
	}
	return FromDecodeError(err)
}
