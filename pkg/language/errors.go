package language

import "errors"

var (
	// ErrUnknownLanguage is returned when a code does not name a supported language.
	ErrUnknownLanguage = errors.New("unknown language")
)
