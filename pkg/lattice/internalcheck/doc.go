// Package internalcheck contains repository-level tests that enforce the
// cgo isolation boundary: only pkg/lattice/internal/backend may touch the
// foreign interface.
package internalcheck
