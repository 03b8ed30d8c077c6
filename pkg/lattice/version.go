package lattice

import "github.com/latticelearn/lattice-go/pkg/lattice/internal/backend"

var (
	// Version is the wrapper version, populated at build time via ldflags.
	Version = "v0.0.0-dev"
)

// WrapperVersion returns the semantic version of the Go bindings.
func WrapperVersion() string {
	return Version
}

// NativeVersion returns the version string reported by liblattice, or an
// empty string when the bindings are not linked in.
func NativeVersion() string {
	return backend.Version()
}
