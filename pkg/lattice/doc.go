// Package lattice exposes the Go API surface shared by all liblattice
// algorithm bindings: the library handle, error remapping, matrix
// marshaling helpers, and optional-argument helpers. The algorithm
// entry points themselves live in subpackages (decisiontree, kmeans,
// kde, linearregression, pca), each wrapping one native routine.
//
// All cgo complexity is isolated in pkg/lattice/internal/backend so
// that callers never touch the foreign boundary directly.
package lattice
