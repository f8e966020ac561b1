package neartree

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/neartree/metric"
)

// newFloatTree builds a *tree[[]float64] for the given dimension, metric,
// and flip setting. All four numeric metrics are reachable here;
// Create rejects Hamming before this constructor is ever called.
func newFloatTree(dim int, mkind metric.Kind, flip bool, rng *rand.Rand) *tree[[]float64] {
	ops := elementOps[[]float64]{
		distance: func(a, b []float64) float64 {
			d, err := metric.Vector(mkind, a, b, dim)
			if err != nil {
				return distanceError(err)
			}
			return d
		},
		clone: func(e []float64) []float64 {
			out := make([]float64, len(e))
			copy(out, e)
			return out
		},
		convert: func(v any) ([]float64, bool) {
			return toFloatVector(v, dim)
		},
	}
	return &tree[[]float64]{dim: dim, flip: flip, ops: ops, rng: rng}
}

// newIntTree builds a *tree[[]int64] for the given dimension, metric, and
// flip setting. Integer points are widened to float64 before being handed
// to the shared metric.Vector dispatch — Spherical and Hamming are
// unreachable here because Create rejects them for KindInteger.
func newIntTree(dim int, mkind metric.Kind, flip bool, rng *rand.Rand) *tree[[]int64] {
	ops := elementOps[[]int64]{
		distance: func(a, b []int64) float64 {
			fa := intsToFloats(a)
			fb := intsToFloats(b)
			d, err := metric.Vector(mkind, fa, fb, dim)
			if err != nil {
				return distanceError(err)
			}
			return d
		},
		clone: func(e []int64) []int64 {
			out := make([]int64, len(e))
			copy(out, e)
			return out
		},
		convert: func(v any) ([]int64, bool) {
			return toIntVector(v, dim)
		},
	}
	return &tree[[]int64]{dim: dim, flip: flip, ops: ops, rng: rng}
}

// newStringTree builds a *tree[string] of fixed width dim, always under the
// Hamming metric — the only metric Create allows for KindString.
func newStringTree(dim int, flip bool, rng *rand.Rand) *tree[string] {
	ops := elementOps[string]{
		distance: func(a, b string) float64 {
			d, err := metric.String(metric.Hamming, a, b, dim)
			if err != nil {
				return distanceError(err)
			}
			return d
		},
		clone: func(e string) string { return e }, // strings are immutable: safe to share
		convert: func(v any) (string, bool) {
			return toStringPoint(v)
		},
	}
	return &tree[string]{dim: dim, flip: flip, ops: ops, rng: rng}
}

// intsToFloats widens an []int64 to []float64 for the shared vector metrics.
func intsToFloats(v []int64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

// distanceError maps an internal metric-dispatch error to +Inf rather than
// panicking or returning NaN, since elementOps.distance has no error return
// (it is only ever called with already-validated, already-converted
// operands, so this path is unreached in practice; it exists so a future
// caller cannot turn a dimension bug into an incorrect "close" verdict).
func distanceError(_ error) float64 {
	return math.Inf(1)
}
