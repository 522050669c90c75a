package logger

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/hyphenkit/pkg/dictionary"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Language records a language under the key "language" using its code.
func Language(lang language.Language) slog.Attr {
	return slog.String("language", lang.Code())
}

// Variant records a dictionary variant under the key "variant".
func Variant(v dictionary.Variant) slog.Attr {
	return slog.String("variant", v.String())
}

// Key records a storage object key under the key "key".
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// Path records a filesystem path under the key "path".
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Bytes records a byte count under the key "bytes".
func Bytes(n int64) slog.Attr {
	return slog.Int64("bytes", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
