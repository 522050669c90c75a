package load

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/dmitrymomot/hyphenkit/pkg/dictionary"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
)

// ZstdExt marks dictionary files compressed with zstd.
const ZstdExt = ".zst"

// maxWindow caps the zstd window size accepted from a frame header.
const maxWindow = 8 << 20

// FromPath opens the file at path and loads a dictionary of type T for lang
// from it. Files ending in ".zst" are decompressed on the fly. Failing to
// open or read the file is an ErrIO error.
func FromPath[T any, PT Dict[T]](lang language.Language, path string) (*T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, FromIOError(err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if strings.HasSuffix(path, ZstdExt) {
		return FromZstdReader[T, PT](lang, r)
	}
	return FromReader[T, PT](lang, r)
}

// StandardFromPath loads a standard dictionary for lang from the file at path.
func StandardFromPath(lang language.Language, path string) (*dictionary.Standard, error) {
	return FromPath[dictionary.Standard](lang, path)
}

// ExtendedFromPath loads an extended dictionary for lang from the file at path.
func ExtendedFromPath(lang language.Language, path string) (*dictionary.Extended, error) {
	return FromPath[dictionary.Extended](lang, path)
}

// FromZstdReader is FromReader for a zstd-compressed stream. The limit
// applies to the decompressed bytes. Failures of r are ErrIO errors; a
// corrupt or truncated frame is an ErrDeserialization error.
func FromZstdReader[T any, PT Dict[T]](lang language.Language, r io.Reader) (*T, error) {
	src := &sourceReader{r: r}

	// concurrency 1 decodes synchronously on the calling goroutine
	zr, err := zstd.NewReader(src,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxWindow(maxWindow),
	)
	if err != nil {
		if src.err != nil {
			return nil, FromIOError(src.err)
		}
		return nil, FromDecodeError(err)
	}
	defer zr.Close()

	dict, err := FromReader[T, PT](lang, zr)
	if err != nil {
		return nil, settleCompressed(err, src)
	}
	return dict, nil
}

// sourceReader remembers the first failure of the underlying stream so that
// it can be told apart from errors produced by the decompressor on top.
type sourceReader struct {
	r   io.Reader
	err error
}

func (s *sourceReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF && s.err == nil {
		s.err = err
	}
	return n, err
}

// settleCompressed reclassifies I/O errors surfaced by the zstd reader: only
// failures of the source itself stay ErrIO.
func settleCompressed(err error, src *sourceReader) error {
	if !errors.Is(err, ErrIO) {
		return err
	}
	if src.err != nil {
		return FromIOError(src.err)
	}
	var lerr *Error
	if errors.As(err, &lerr) {
		return FromDecodeError(lerr.Err)
	}
	return FromDecodeError(err)
}
