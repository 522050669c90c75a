package load_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hyphenkit/pkg/load"
)

func TestFromIOError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, load.FromIOError(nil))

	err := load.FromIOError(fs.ErrPermission)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, load.ErrIO)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.NotErrorIs(t, err, load.ErrDeserialization)
	assert.Equal(t, load.ErrIO, err.Kind())
	assert.Equal(t, "read dictionary: permission denied", err.Error())
}

func TestFromDecodeError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, load.FromDecodeError(nil))

	cause := errors.New("bad varint")
	err := load.FromDecodeError(cause)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, load.ErrDeserialization)
	assert.NotErrorIs(t, err, load.ErrIO)
	assert.Same(t, cause, errors.Unwrap(err))
	assert.Equal(t, "deserialize dictionary: bad varint", err.Error())
}

func TestError_MessagesDistinguishStages(t *testing.T) {
	t.Parallel()

	cause := errors.New("same cause")
	ioErr := load.FromIOError(cause)
	decErr := load.FromDecodeError(cause)
	assert.NotEqual(t, ioErr.Error(), decErr.Error())
}

func TestError_Kinds(t *testing.T) {
	t.Parallel()

	kinds := []error{load.ErrDeserialization, load.ErrIO, load.ErrLanguageMismatch, load.ErrResource}
	for i, a := range kinds {
		for j, b := range kinds {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}
