package neartree

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/neartree/metric"
	"github.com/katalvlaran/neartree/resultset"
)

// elementOps bundles the three operations the generic tree[E] needs on its
// element type E but cannot express directly, because E ranges over
// []float64, []int64, and string — types with no common element-indexing
// shape. Each of newFloatTree/newIntTree/newStringTree builds the closures
// that make its E concrete (spec.md §9: "prefer a generic over an element
// trait plus a metric trait").
type elementOps[E any] struct {
	// distance returns d(a,b) for this tree's fixed dimension and metric.
	distance func(a, b E) float64

	// clone returns an independent copy of e, so storing e in a node slot
	// never aliases caller-owned memory (spec.md §3: "Points are owned by
	// value (copied into node slots on insert)").
	clone func(e E) E

	// convert coerces an arbitrary point/probe value into E, or reports
	// false if the value's shape or length doesn't match this tree.
	convert func(v any) (E, bool)
}

// pendingItem is one (point, payload) pair waiting in the deferred-insert
// queue (spec.md §3, §4.2).
type pendingItem[E any] struct {
	point   E
	payload any
}

// treeImpl is the narrow surface *tree[E] must satisfy so the non-generic
// Tree facade can hold one of three concrete instantiations behind a single
// interface (spec.md §9: "Retain the runtime-tag constructor API for tests
// but lower it to the generic instantiation internally"). Nearest/Farthest
// are named unexported because Tree re-shapes their tuple return into a
// Result before exposing it; every other method's signature already matches
// the public Tree method 1:1 and is promoted by embedding.
type treeImpl interface {
	InsertImmediate(point, payload any) error
	InsertDeferred(point, payload any) error
	Flush() error
	Size() int
	Depth() int
	IsEmpty() bool
	PendingCount() int
	Distance(a, b any) (float64, error)
	FindInSphere(probe any, radius float64, sink resultset.Sink) error
	FindOutSphere(probe any, radius float64, sink resultset.Sink) error
	FindInAnnulus(probe any, rLo, rHi float64, sink resultset.Sink) error
	FindKNearest(probe any, k int, radius float64, sink resultset.Sink) error
	FindKFarthest(probe any, k int, radius float64, sink resultset.Sink) error

	nearest(probe any, initialRadius float64) (point, payload any, found bool, err error)
	farthest(probe any) (point, payload any, found bool, err error)
}

// tree is the generic implementation shared by all three element kinds.
// E is []float64, []int64, or string, fixed for the tree's lifetime.
type tree[E any] struct {
	dim  int
	flip bool
	ops  elementOps[E]
	rng  *rand.Rand

	root    *node[E]
	count   int
	pending []pendingItem[E]
}

// Tree is the opaque, handle-shaped public type every neartree operation is
// a method on (spec.md §9: "preserve the opacity but express ownership
// explicitly: the tree value owns all its nodes"). It wraps exactly one of
// *tree[[]float64], *tree[[]int64], or *tree[string], selected at Create
// time by the ConfigFlags element tag.
type Tree struct {
	treeImpl

	dim         int
	elementKind ElementKind
	metricKind  metric.Kind
	flip        bool
}

// Create builds an empty Tree of the given dimension under the given
// configuration word. dim must be positive, and flags must name a
// recognized element/metric combination (L1/L2/LInf for numeric kinds,
// Spherical for floating only, Hamming for strings only) or Create returns
// ErrBadConfig.
//
// Complexity: O(1).
func Create(dim int, flags ConfigFlags, opts ...CreateOption) (*Tree, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("neartree.Create: dim=%d must be positive: %w", dim, ErrBadConfig)
	}

	kind := flags.ElementKind()
	mkind := flags.MetricKind()
	if !validCombination(kind, mkind) {
		return nil, fmt.Errorf("neartree.Create: %s/%s is not a recognized combination: %w", kind, mkind, ErrBadConfig)
	}

	cfg := newCreateConfig(opts...)
	flip := flags.Flip()

	var impl treeImpl
	switch kind {
	case KindFloating:
		impl = newFloatTree(dim, mkind, flip, cfg.rng)
	case KindInteger:
		impl = newIntTree(dim, mkind, flip, cfg.rng)
	case KindString:
		impl = newStringTree(dim, flip, cfg.rng)
	}

	return &Tree{treeImpl: impl, dim: dim, elementKind: kind, metricKind: mkind, flip: flip}, nil
}

// validCombination reports whether kind/mkind is a creatable pairing:
// numeric kinds support L1/L2/LInf, floating additionally supports
// Spherical, and only strings support Hamming.
func validCombination(kind ElementKind, mkind metric.Kind) bool {
	switch kind {
	case KindInteger:
		return mkind == metric.L1 || mkind == metric.L2 || mkind == metric.LInf
	case KindFloating:
		return mkind == metric.L1 || mkind == metric.L2 || mkind == metric.LInf || mkind == metric.Spherical
	case KindString:
		return mkind == metric.Hamming
	default:
		return false
	}
}

// Free releases no resources beyond what the garbage collector already
// reclaims once t becomes unreferenced: Go's tree[E] owns no handles beyond
// Go memory (no file descriptors, no cgo allocations). Free is kept for API
// parity with spec.md §4.5 and the original source's CNearTreeFree, and to
// give callers an explicit point to stop using a tree at.
func (t *Tree) Free() error {
	return nil
}

// ElementKind reports the element type this tree was created with.
func (t *Tree) ElementKind() ElementKind { return t.elementKind }

// MetricKind reports the metric this tree was created with.
func (t *Tree) MetricKind() metric.Kind { return t.metricKind }

// Dim reports the tree's fixed dimension.
func (t *Tree) Dim() int { return t.dim }

// Flip reports whether this tree was created with the flip tie-break bit
// set (spec.md §4.2).
func (t *Tree) Flip() bool { return t.flip }

// Result is one (point, payload) pair returned by Nearest or Farthest.
type Result struct {
	Point   any
	Payload any
}

// Nearest returns the stored point closest to probe, provided its distance
// is strictly less than initialRadius; otherwise ErrNotFound. Callers
// unsure of a bound should pass a large initialRadius (spec.md §4.3).
//
// Complexity: O(log n) average, O(n) worst case on an adversarial tree.
func (t *Tree) Nearest(probe any, initialRadius float64) (Result, error) {
	point, payload, found, err := t.treeImpl.nearest(probe, initialRadius)
	if err != nil {
		return Result{}, err
	}
	if !found {
		return Result{}, ErrNotFound
	}
	return Result{Point: point, Payload: payload}, nil
}

// Farthest returns the stored point farthest from probe. Tie-breaks among
// equally-far points are insertion-order-dependent and unspecified
// (spec.md §4.3).
//
// Complexity: O(log n) average, O(n) worst case.
func (t *Tree) Farthest(probe any) (Result, error) {
	point, payload, found, err := t.treeImpl.farthest(probe)
	if err != nil {
		return Result{}, err
	}
	if !found {
		return Result{}, ErrNotFound
	}
	return Result{Point: point, Payload: payload}, nil
}
