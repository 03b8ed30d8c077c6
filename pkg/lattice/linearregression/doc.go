// Package linearregression wraps liblattice's ordinary least squares /
// ridge regression entry point.
package linearregression
