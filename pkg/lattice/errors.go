package lattice

import (
	"github.com/cockroachdb/errors"

	"github.com/latticelearn/lattice-go/pkg/lattice/internal/backend"
)

// ErrNativeFailure reports that a native routine returned its failure flag.
// liblattice communicates diagnostics through its own output channel before
// returning; this error carries no structured payload beyond the algorithm
// name the caller wrapped it with.
var ErrNativeFailure = errors.New("native invocation failed")

// ErrNotBuilt reports that the native bindings were not linked into this
// binary (built without cgo, or on an unsupported platform).
var ErrNotBuilt = errors.New("lattice bindings not built")

// ErrLibraryClosed reports a second Close of the library handle.
var ErrLibraryClosed = errors.New("library already closed")

// RemapError translates backend-layer errors into the public sentinels so
// callers can test with errors.Is without importing internal packages.
// It is exported for use by the algorithm subpackages.
func RemapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, backend.ErrRunFailed):
		return ErrNativeFailure
	case errors.Is(err, backend.ErrNotBuilt):
		return ErrNotBuilt
	default:
		return err
	}
}
