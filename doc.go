// Package hyphenkit loads pre-compiled hyphenation dictionaries.
//
// A dictionary holds the Liang patterns, exceptions and minimum margins for
// one language and comes in two shapes: standard and extended (patterns with
// non-standard subregion substitutions). Dictionaries are stored in a
// compact little-endian binary encoding and embed the language they were
// compiled for.
//
// The module is organised in layers:
//
//   - pkg/language: the closed set of supported languages and their codes.
//   - pkg/bincode: the binary codec with a hard decode budget.
//   - pkg/dictionary: the Standard and Extended dictionary types.
//   - pkg/load: verified and unverified loading from readers, files and
//     embedded bundles, with a typed error taxonomy.
//   - pkg/store: local, Redis and S3 backends, plus a logging Loader.
//   - pkg/config and pkg/logger: environment configuration and slog setup.
//
// Basic Usage:
//
//	dict, err := load.StandardFromPath(language.EnglishUS, "dicts/en-us.standard.bincode")
//	switch {
//	case errors.Is(err, load.ErrLanguageMismatch):
//		// the file was compiled for another language
//	case errors.Is(err, load.ErrIO):
//		// the file could not be read
//	case err != nil:
//		// corrupt or oversized input
//	}
//
// The hyphendict command in cmd/hyphendict loads a dictionary from any of the
// supported sources and prints a summary.
package hyphenkit
