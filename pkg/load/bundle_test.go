package load_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hyphenkit/pkg/dictionary"
	"github.com/dmitrymomot/hyphenkit/pkg/language"
	"github.com/dmitrymomot/hyphenkit/pkg/load"
)

func newBundle(t *testing.T) *load.Bundle {
	t.Helper()
	// es.standard.bincode is mislabelled: it holds an English dictionary.
	fsys := fstest.MapFS{
		"fr.standard.bincode":        {Data: encode(t, newStandard(language.French))},
		"de-1996.extended.bincode":   {Data: encode(t, newExtended(language.German1996))},
		"en-us.standard.bincode":     {Data: encode(t, newStandard(language.EnglishUS))},
		"es.standard.bincode":        {Data: encode(t, newStandard(language.EnglishGB))},
		"README.md":                  {Data: []byte("not a dictionary")},
		"nested/it.standard.bincode": {Data: encode(t, newStandard(language.Italian))},
	}
	return load.NewBundle(fsys)
}

func TestBundle_Load(t *testing.T) {
	t.Parallel()
	b := newBundle(t)

	std, err := load.StandardFromBundle(b, language.French)
	require.NoError(t, err)
	assert.Equal(t, newStandard(language.French), std)

	ext, err := load.ExtendedFromBundle(b, language.German1996)
	require.NoError(t, err)
	assert.Equal(t, newExtended(language.German1996), ext)
}

func TestBundle_MissingResource(t *testing.T) {
	t.Parallel()
	b := newBundle(t)

	_, err := load.StandardFromBundle(b, language.Polish)
	require.ErrorIs(t, err, load.ErrResource)
	assert.NotErrorIs(t, err, load.ErrIO)
	assert.Equal(t, "the embedded dictionary could not be retrieved: pl.standard.bincode", err.Error())

	// the variant is part of the resource name
	_, err = load.ExtendedFromBundle(b, language.French)
	assert.ErrorIs(t, err, load.ErrResource)
}

func TestBundle_Mislabelled(t *testing.T) {
	t.Parallel()
	b := newBundle(t)

	_, err := load.StandardFromBundle(b, language.Spanish)
	require.ErrorIs(t, err, load.ErrLanguageMismatch)

	var lerr *load.Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, language.Spanish, lerr.Expected)
	assert.Equal(t, language.EnglishGB, lerr.Found)
}

func TestBundle_Languages(t *testing.T) {
	t.Parallel()
	b := newBundle(t)

	std, err := b.Languages(dictionary.VariantStandard)
	require.NoError(t, err)
	assert.Equal(t, []language.Language{language.EnglishUS, language.French, language.Spanish}, std)

	ext, err := b.Languages(dictionary.VariantExtended)
	require.NoError(t, err)
	assert.Equal(t, []language.Language{language.German1996}, ext)

	assert.True(t, b.Has(language.French, dictionary.VariantStandard))
	assert.False(t, b.Has(language.French, dictionary.VariantExtended))
	assert.False(t, b.Has(language.Italian, dictionary.VariantStandard))
}
