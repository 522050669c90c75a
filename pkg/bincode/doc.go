// Package bincode implements the compact, length-aware binary encoding used by
// hyphenation dictionaries.
//
// The layout is deliberately simple:
//
//   - unsigned integers are fixed width, little-endian (u8, u16, u32, u64)
//   - booleans are a single byte, 0 or 1
//   - strings and byte slices are a u64 length followed by the raw bytes
//   - sequences and maps are a u64 element count followed by the elements;
//     map keys are written in sorted order so encoding is deterministic
//
// # Size Limit
//
// A Decoder charges every byte it consumes against a budget (DefaultLimit,
// 5,000,000 bytes, unless overridden with WithLimit). Declared lengths are
// checked against the remaining budget before anything is allocated, so a
// hostile or corrupt payload fails with ErrSizeLimit instead of exhausting
// memory.
//
// # Error Handling
//
// Failures are split by origin:
//
//   - *DecodeError: the bytes do not form a valid value (truncated input,
//     size limit, invalid UTF-8, out-of-range values).
//   - *ReadError: the underlying io.Reader failed for a reason other than
//     end of input.
//
// Both wrap their cause, so errors.Is works against the sentinel values:
//
//	var rerr *bincode.ReadError
//	switch {
//	case errors.As(err, &rerr):
//	    // storage or network problem
//	case errors.Is(err, bincode.ErrSizeLimit):
//	    // payload too large
//	}
//
// # Usage
//
//	enc := bincode.NewEncoder(w)
//	enc.String("hyph")
//	enc.Uint8(2)
//	if err := enc.Err(); err != nil {
//	    return err
//	}
//
//	dec := bincode.NewDecoder(r, bincode.WithLimit(1<<20))
//	s, err := dec.String()
package bincode
