// Package neartree implements a metric-space nearest-neighbor binary tree:
// store points from a space with a triangle-inequality-respecting distance
// function, then answer nearest, farthest, in-sphere, out-sphere, in-annulus,
// k-nearest, and k-farthest queries by pruning subtrees the triangle
// inequality proves cannot contain a better answer.
//
// What is neartree?
//
//	A small, zero-hidden-dependency library built around one idea: every
//	node remembers the farthest any of its descendants ever strayed from
//	its pivot, and that single number is enough to skip whole subtrees
//	during a search.
//
//	  - Pluggable element type: fixed-width integer/float vectors, or
//	    fixed-length strings.
//	  - Pluggable metric: Euclidean (L2), Manhattan (L1), Chebyshev (L∞),
//	    spherical (great-circle angle on the unit hypersphere), Hamming.
//	  - Deferred insertion: queue points and flush them in a randomized
//	    order to keep the tree balanced under adversarial input order.
//
// Organized under three subpackages:
//
//	metric/             — the distance dispatch layer (L1/L2/L∞/Spherical/Hamming)
//	resultset/          — the two query sinks: flat sequence, and re-insert-into-tree
//	internal/heapsel/   — the bounded top-k selector behind find_k_nearest/find_k_farthest
//
// Quick example:
//
//	t, _ := neartree.Create(2, neartree.NewConfig(neartree.KindFloating, metric.L2))
//	_ = t.InsertImmediate([]float64{0, 0}, "origin")
//	_ = t.InsertImmediate([]float64{3, 4}, "far")
//	res, _ := t.Nearest([]float64{1, 1}, 1e9)
//	// res.Point == []float64{0, 0}, res.Payload == "origin"
//
//	go get github.com/katalvlaran/neartree
package neartree
