package lattice

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticelearn/lattice-go/pkg/lattice/internal/backend"
)

func TestRemapError(t *testing.T) {
	assert.NoError(t, RemapError(nil))

	assert.ErrorIs(t, RemapError(backend.ErrRunFailed), ErrNativeFailure)
	assert.ErrorIs(t, RemapError(backend.ErrNotBuilt), ErrNotBuilt)

	wrapped := errors.Wrap(backend.ErrRunFailed, "kmeans")
	assert.ErrorIs(t, RemapError(wrapped), ErrNativeFailure)

	other := errors.New("something else")
	assert.Equal(t, other, RemapError(other))
}

func TestLibraryCloseIsIdempotentOnce(t *testing.T) {
	lib := &Library{}
	require.NoError(t, lib.Close())
	assert.ErrorIs(t, lib.Close(), ErrLibraryClosed)

	var nilLib *Library
	assert.NoError(t, nilLib.Close())
}

func TestOptionalHelpers(t *testing.T) {
	assert.Equal(t, 5, *Int(5))
	assert.Equal(t, 0.25, *Float(0.25))
	assert.True(t, *Bool(true))
	assert.Equal(t, "gaussian", *Str("gaussian"))
}
