package load_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hyphenkit/pkg/bincode"
	"github.com/dmitrymomot/hyphenkit/pkg/dictionary"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
	"github.com/dmitrymomot/hyphenkit/pkg/load"
)

func TestFromReader_EveryLanguage(t *testing.T) {
	t.Parallel()

	for _, lang := range language.All() {
		std, err := load.Standard(lang, bytes.NewReader(encode(t, newStandard(lang))))
		require.NoError(t, err, lang.String())
		assert.Equal(t, lang, std.Language)

		ext, err := load.Extended(lang, bytes.NewReader(encode(t, newExtended(lang))))
		require.NoError(t, err, lang.String())
		assert.Equal(t, lang, ext.Language)
	}
}

func TestFromReader_RoundTripContent(t *testing.T) {
	t.Parallel()

	t.Run("standard", func(t *testing.T) {
		t.Parallel()
		orig := newStandard(language.Italian)
		got, err := load.FromReader[dictionary.Standard](language.Italian, bytes.NewReader(encode(t, orig)))
		require.NoError(t, err)
		assert.Equal(t, orig, got)
	})

	t.Run("extended", func(t *testing.T) {
		t.Parallel()
		orig := newExtended(language.German1996)
		got, err := load.FromReader[dictionary.Extended](language.German1996, bytes.NewReader(encode(t, orig)))
		require.NoError(t, err)
		assert.Equal(t, orig, got)
	})
}

func TestFromReader_LanguageMismatch(t *testing.T) {
	t.Parallel()

	all := language.All()
	for _, found := range all {
		data := encode(t, newStandard(found))
		for _, expected := range all {
			if expected == found {
				continue
			}
			dict, err := load.Standard(expected, bytes.NewReader(data))
			require.Nil(t, dict)
			require.ErrorIs(t, err, load.ErrLanguageMismatch)

			var lerr *load.Error
			require.True(t, errors.As(err, &lerr))
			require.Equal(t, expected, lerr.Expected)
			require.Equal(t, found, lerr.Found)
		}
	}

	dict, err := load.Extended(language.French, bytes.NewReader(encode(t, newExtended(language.Dutch))))
	assert.Nil(t, dict)
	require.ErrorIs(t, err, load.ErrLanguageMismatch)
	assert.NotErrorIs(t, err, load.ErrDeserialization)
	assert.Equal(t,
		"language mismatch: attempted to load a dictionary for `French`, but found a dictionary for `Dutch` instead",
		err.Error())
}

func TestAnyFromReader_NoVerification(t *testing.T) {
	t.Parallel()

	std, err := load.AnyStandard(bytes.NewReader(encode(t, newStandard(language.Thai))))
	require.NoError(t, err)
	assert.Equal(t, language.Thai, std.Language)

	ext, err := load.AnyExtended(bytes.NewReader(encode(t, newExtended(language.Welsh))))
	require.NoError(t, err)
	assert.Equal(t, language.Welsh, ext.Language)
}

func TestFromReader_Truncated(t *testing.T) {
	t.Parallel()

	data := encode(t, newExtended(language.Basque))
	for _, cut := range []int{0, 1, 5, len(data) / 2, len(data) - 1} {
		dict, err := load.Extended(language.Basque, bytes.NewReader(data[:cut]))
		assert.Nil(t, dict)
		require.ErrorIs(t, err, load.ErrDeserialization, "cut at %d", cut)
		assert.NotErrorIs(t, err, load.ErrIO)
		assert.ErrorIs(t, err, bincode.ErrTruncated)
	}

	_, err := load.AnyStandard(bytes.NewReader(nil))
	assert.ErrorIs(t, err, load.ErrDeserialization)
}

func TestFromReader_SizeLimit(t *testing.T) {
	t.Parallel()

	t.Run("well-formed but oversized", func(t *testing.T) {
		t.Parallel()
		big := &dictionary.Standard{
			Language:   language.EnglishGB,
			Exceptions: map[string][]int{strings.Repeat("a", int(load.Limit)): {1}},
		}
		data := encode(t, big)
		require.Greater(t, int64(len(data)), load.Limit)

		dict, err := load.Standard(language.EnglishGB, bytes.NewReader(data))
		assert.Nil(t, dict)
		require.ErrorIs(t, err, load.ErrDeserialization)
		assert.ErrorIs(t, err, bincode.ErrSizeLimit)
	})

	t.Run("declared length without data", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		enc := bincode.NewEncoder(&buf)
		enc.Uint8(uint8(language.EnglishUS))
		enc.Len(1 << 40)
		require.NoError(t, enc.Err())

		_, err := load.Standard(language.EnglishUS, &buf)
		require.ErrorIs(t, err, load.ErrDeserialization)
		assert.ErrorIs(t, err, bincode.ErrSizeLimit)
	})
}

func TestFromReader_ReadFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	data := encode(t, newStandard(language.Spanish))
	r := io.MultiReader(bytes.NewReader(data[:7]), iotest.ErrReader(boom))

	dict, err := load.Standard(language.Spanish, r)
	assert.Nil(t, dict)
	require.ErrorIs(t, err, load.ErrIO)
	assert.NotErrorIs(t, err, load.ErrDeserialization)
	assert.ErrorIs(t, err, boom)
}

func TestFromReader_InvalidLanguageTag(t *testing.T) {
	t.Parallel()

	data := encode(t, newStandard(language.Latin))
	data[0] = 0xee

	_, err := load.AnyStandard(bytes.NewReader(data))
	require.ErrorIs(t, err, load.ErrDeserialization)
	assert.ErrorIs(t, err, bincode.ErrInvalidValue)
}

func TestFromReader_ConsumesOnlyOneDictionary(t *testing.T) {
	t.Parallel()

	var stream bytes.Buffer
	stream.Write(encode(t, newStandard(language.Danish)))
	stream.Write(encode(t, newStandard(language.Swedish)))

	first, err := load.Standard(language.Danish, &stream)
	require.NoError(t, err)
	assert.Equal(t, language.Danish, first.Language)

	second, err := load.Standard(language.Swedish, &stream)
	require.NoError(t, err)
	assert.Equal(t, language.Swedish, second.Language)
}
