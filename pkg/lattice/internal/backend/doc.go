// Package backend isolates every cgo call into liblattice. It compiles in
// two flavors: the real bindings under `cgo && !windows`, and stubs that
// return ErrNotBuilt everywhere else, so the public packages build
// identically on all platforms.
//
// Ownership rules at the boundary:
//   - Dataset buffers passed in are Go memory, borrowed only for the
//     duration of one synchronous native call; the native side copies.
//   - Buffers returned by liblattice are C memory; the conversion helpers
//     copy them into Go memory and free the C allocation immediately.
//   - Model handles are C allocations freed exactly once, tracked through
//     a process-wide owned-pointer set.
package backend
