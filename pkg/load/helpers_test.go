package load_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hyphenkit/pkg/bincode"
	"github.com/dmitrymomot/hyphenkit/pkg/dictionary"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
)

func newStandard(lang language.Language) *dictionary.Standard {
	return &dictionary.Standard{
		Language: lang,
		Patterns: map[string][]dictionary.Tally{
			"1ba":  {{Index: 0, Value: 1}},
			"ab4c": {{Index: 2, Value: 4}},
		},
		Exceptions: map[string][]int{"abacus": {2, 4}},
		Minima:     dictionary.Minima{Left: 2, Right: 2},
	}
}

func newExtended(lang language.Language) *dictionary.Extended {
	return &dictionary.Extended{
		Language: lang,
		Patterns: map[string]dictionary.ExtendedPattern{
			"ck1": {
				Tallies:   []dictionary.Tally{{Index: 2, Value: 1}},
				Subregion: &dictionary.Subregion{Left: 1, Right: 0, Substitution: "k", Shift: 1},
			},
		},
		Exceptions: map[string]dictionary.ExtendedException{"zucker": {Breaks: []int{3}}},
		Minima:     dictionary.Minima{Left: 2, Right: 3},
	}
}

func encode(t *testing.T, d dictionary.Dictionary) []byte {
	t.Helper()
	data, err := bincode.Marshal(d)
	require.NoError(t, err)
	return data
}
