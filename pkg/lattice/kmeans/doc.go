// Package kmeans wraps liblattice's k-means clustering entry point. The
// routine is stateless: it returns cluster assignments and centroids and
// keeps no native model.
package kmeans
