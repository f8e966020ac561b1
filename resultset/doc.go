// Package resultset implements the two sinks the query engine writes
// matched points into (spec.md §4.4): a flat append-only sequence, and an
// adapter that re-inserts each match into a caller-supplied tree so proximity
// queries can be chained over the filtered subset without rescanning the
// original index.
//
// The root neartree package depends on this package; this package does not
// depend back on neartree, so TreeSink takes a plain insertion callback
// rather than a *neartree.Tree, the same inversion-of-control builder uses
// for its idFn/weightFn hooks (builder/config.go).
package resultset
