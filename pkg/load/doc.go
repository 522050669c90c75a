// Package load reads hyphenation dictionaries from byte streams and verifies
// that they belong to the language the caller expects.
//
// A dictionary is loaded atomically: it is fully decoded and checked, or the
// call fails and nothing is returned. Decoding is bounded by Limit
// (5,000,000 bytes); a payload that needs more fails instead of allocating.
//
// # Usage
//
// Verified loads assert the language up front:
//
//	f, err := os.Open("en-us.standard.bincode")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	dict, err := load.Standard(language.EnglishUS, bufio.NewReader(f))
//
// or, using the path shorthand, which also understands zstd-compressed files:
//
//	dict, err := load.StandardFromPath(language.EnglishUS, "dicts/en-us.standard.bincode.zst")
//
// When the language is discovered from the data, use the unverified form:
//
//	dict, err := load.AnyExtended(r)
//	fmt.Println(dict.Language)
//
// Dictionaries compiled into the binary are served by a Bundle:
//
//	//go:embed dictionaries
//	var dictionaries embed.FS
//
//	sub, _ := fs.Sub(dictionaries, "dictionaries")
//	dict, err := load.StandardFromBundle(load.NewBundle(sub), language.French)
//
// The generic FromReader, AnyFromReader, FromPath and FromBundle functions
// accept either dictionary variant as a type parameter.
//
// # Error Handling
//
// Every failure is an *Error whose kind can be tested with errors.Is:
//
//   - ErrDeserialization: malformed, truncated or oversized data.
//   - ErrIO: the stream or file could not be read.
//   - ErrLanguageMismatch: a valid dictionary for another language; the
//     Expected and Found fields name both languages.
//   - ErrResource: a Bundle does not contain the requested dictionary.
//
//	var lerr *load.Error
//	if errors.As(err, &lerr) && errors.Is(err, load.ErrLanguageMismatch) {
//	    log.Printf("wanted %s, file holds %s", lerr.Expected, lerr.Found)
//	}
//
// # Concurrency
//
// The package holds no mutable state. Independent loads may run concurrently.
package load
