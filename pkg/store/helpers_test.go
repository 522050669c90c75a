package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hyphenkit/pkg/bincode"
	"github.com/dmitrymomot/hyphenkit/pkg/dictionary"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
)

func newStandard(lang language.Language) *dictionary.Standard {
	return &dictionary.Standard{
		Language:   lang,
		Patterns:   map[string][]dictionary.Tally{"2b1": {{Index: 0, Value: 2}, {Index: 1, Value: 1}}},
		Exceptions: map[string][]int{"rebus": {2}},
		Minima:     dictionary.Minima{Left: 2, Right: 2},
	}
}

func newExtended(lang language.Language) *dictionary.Extended {
	return &dictionary.Extended{
		Language: lang,
		Patterns: map[string]dictionary.ExtendedPattern{
			"l1l": {Tallies: []dictionary.Tally{{Index: 1, Value: 1}}, Subregion: &dictionary.Subregion{Left: 1, Substitution: "l·", Shift: 1}},
		},
		Minima: dictionary.Minima{Left: 2, Right: 2},
	}
}

func encode(t *testing.T, d dictionary.Dictionary) []byte {
	t.Helper()
	data, err := bincode.Marshal(d)
	require.NoError(t, err)
	return data
}

func compress(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}
