package backend

import "errors"

// ErrRunFailed is the single error kind for a native routine returning its
// failure flag. liblattice reports details through its own channel; nothing
// structured crosses the boundary.
var ErrRunFailed = errors.New("native routine reported failure")

// ErrNotBuilt reports that this binary was built without the native
// bindings (no cgo, or an unsupported platform).
var ErrNotBuilt = errors.New("native bindings not built")
