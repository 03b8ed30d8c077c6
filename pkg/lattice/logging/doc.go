// Package logging provides the structured logger used by the lattice
// bindings. The interface is intentionally small so applications can
// substitute their own implementation; the default is backed by zerolog.
package logging
