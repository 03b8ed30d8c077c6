// Package decisiontree wraps liblattice's decision-tree classifier entry
// point. One Run call trains a tree, classifies a test set, or both,
// depending on which arguments are passed; the tree itself lives in
// opaque native memory behind the Model type.
package decisiontree
