// Package pca wraps liblattice's principal component analysis entry
// point. The routine is stateless: it returns the transformed dataset and
// keeps no native model.
package pca
