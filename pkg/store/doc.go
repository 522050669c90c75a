// Package store fetches encoded hyphenation dictionaries from a storage
// backend and hands the stream to package load.
//
// A Store only knows how to open an object by key. Two backends are
// provided:
//
//   - LocalStore reads files below a base directory; keys cannot escape it.
//   - S3Store reads objects from Amazon S3 or an S3-compatible service.
//
// Keys follow dictionary.FileName, e.g. "en-us.standard.bincode". When that
// object does not exist, the zstd-compressed "<key>.zst" is tried.
//
// # Usage
//
//	s3store, err := store.NewS3Store(ctx, store.S3Config{
//	    Bucket: "dictionaries",
//	    Region: "eu-central-1",
//	    Prefix: "hyphenation/v2",
//	})
//	if err != nil {
//	    return err
//	}
//
//	loader := store.NewLoader(s3store, store.WithLogger(log))
//	dict, err := loader.Standard(ctx, language.German1996)
//
// # Loading Several Languages
//
// LoadMany fetches the dictionaries of several languages concurrently,
// bounded by WithConcurrency:
//
//	dicts, err := loader.LoadMany(ctx, dictionary.VariantStandard, language.French, language.Dutch)
//
// # Error Handling
//
// Loader methods return *load.Error values. A failure to open the object is
// an ErrIO error wrapping the backend error, so both checks work:
//
//	errors.Is(err, load.ErrIO)
//	errors.Is(err, store.ErrNotFound)
package store
