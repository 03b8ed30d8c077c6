// Package param describes the parameters forwarded to one native routine
// invocation as an ordered, presence-tracked list of typed entries.
//
// Algorithm packages build a Table from their Params struct and hand it to
// the backend, which copies each entry into the native parameter table. An
// optional argument the caller never set produces no entry and is therefore
// never forwarded. Keeping this representation in pure Go makes the
// forwarding behavior testable without the native library.
package param
