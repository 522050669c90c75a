// Package logger provides a context-aware wrapper around Go's slog package
// with functional options and attribute helpers for dictionary loading.
//
// New creates a *slog.Logger configured by Option functions:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//   - WithLevel / WithLevelName set the minimum level.
//   - WithAttr attaches static attributes to every record.
//   - WithContextExtractors / WithContextValue inject attributes pulled from
//     the context passed to the *Context logging methods.
//   - WithDevelopment / WithProduction apply sensible defaults per environment.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler and wraps it with
// LogHandlerDecorator, which runs the registered ContextExtractor callbacks
// before delegating each record.
//
// Helpers in attr.go (Language, Variant, Key, Path, Error, ...) keep
// attribute names consistent across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("hyphendict"),
//	    logger.WithContextValue("source", sourceKey{}),
//	)
//	log.InfoContext(ctx, "dictionary loaded",
//	    logger.Language(lang),
//	    logger.Variant(dictionary.VariantStandard),
//	    logger.Duration(time.Since(start)),
//	)
//
// Libraries that accept an optional logger default to Discard.
package logger
