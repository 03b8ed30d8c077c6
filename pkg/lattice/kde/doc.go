// Package kde wraps liblattice's kernel density estimation entry point.
// A fitted estimator (reference set plus tree structure) lives in native
// memory behind the Model type and can be reused across queries.
package kde
