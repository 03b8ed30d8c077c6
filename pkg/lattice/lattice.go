package lattice

import "github.com/latticelearn/lattice-go/pkg/lattice/internal/backend"

// Config holds the process-wide knobs applied when the native library is
// first initialized. All fields are forwarded verbatim; liblattice picks
// its own defaults for zero values.
type Config struct {
	// Verbose enables liblattice's own diagnostic output channel. Failure
	// details are only visible there; the Go layer reports a single
	// invocation-failed error.
	Verbose bool

	// Seed seeds the native random number generator. Zero leaves the
	// native default (time-based) in place.
	Seed uint64
}

// Library is an opened handle to liblattice. Opening is idempotent on the
// native side; the handle exists so callers can scope the one-time
// initialization and release it deterministically.
type Library struct {
	cfg    Config
	closed bool
}

// Open initializes the native library. It must complete before the first
// algorithm invocation; there are no other ordering requirements.
func Open(cfg Config) (*Library, error) {
	if err := backend.Init(cfg.Verbose, cfg.Seed); err != nil {
		return nil, RemapError(err)
	}
	return &Library{cfg: cfg}, nil
}

// Close releases the library handle. It is safe to call once; a second
// Close returns ErrLibraryClosed.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}
	if l.closed {
		return ErrLibraryClosed
	}
	l.closed = true
	return nil
}
