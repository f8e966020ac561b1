package neartree

import (
	"fmt"

	"github.com/katalvlaran/neartree/resultset"
)

// FrozenView is a read-only handle onto a Tree that had no pending deferred
// inserts when it was frozen. The view has no mutating methods, and while
// the tree's deferred queue stays empty its queries do not mutate the tree
// (the flush every query starts with is then a no-op), so concurrent reads
// through a FrozenView from multiple goroutines are safe — the one
// thread-safe read path the default, single-threaded Tree API does not
// offer (spec.md §5; grounded on core/view.go's non-mutating view
// convention). Freeze does not lock the Tree: inserts made through the Tree
// handle afterwards still change the shared tree, and a query through the
// view then flushes them, so concurrent reads are no longer safe.
type FrozenView struct {
	tree *Tree
}

// Freeze returns a FrozenView over t. It fails with ErrNotFlushed if t has
// any pending deferred inserts — Freeze never flushes on the caller's
// behalf, since flushing is itself a mutation.
func (t *Tree) Freeze() (*FrozenView, error) {
	if t.PendingCount() > 0 {
		return nil, fmt.Errorf("neartree: Freeze: %w", ErrNotFlushed)
	}
	return &FrozenView{tree: t}, nil
}

// Nearest delegates to the underlying Tree. Safe for concurrent use.
func (v *FrozenView) Nearest(probe any, initialRadius float64) (Result, error) {
	return v.tree.Nearest(probe, initialRadius)
}

// Farthest delegates to the underlying Tree. Safe for concurrent use.
func (v *FrozenView) Farthest(probe any) (Result, error) {
	return v.tree.Farthest(probe)
}

// FindInSphere delegates to the underlying Tree. Safe for concurrent use
// provided each caller supplies its own sink.
func (v *FrozenView) FindInSphere(probe any, radius float64, sink resultset.Sink) error {
	return v.tree.FindInSphere(probe, radius, sink)
}

// FindOutSphere delegates to the underlying Tree. Safe for concurrent use.
func (v *FrozenView) FindOutSphere(probe any, radius float64, sink resultset.Sink) error {
	return v.tree.FindOutSphere(probe, radius, sink)
}

// FindInAnnulus delegates to the underlying Tree. Safe for concurrent use.
func (v *FrozenView) FindInAnnulus(probe any, rLo, rHi float64, sink resultset.Sink) error {
	return v.tree.FindInAnnulus(probe, rLo, rHi, sink)
}

// FindKNearest delegates to the underlying Tree. Safe for concurrent use.
func (v *FrozenView) FindKNearest(probe any, k int, radius float64, sink resultset.Sink) error {
	return v.tree.FindKNearest(probe, k, radius, sink)
}

// FindKFarthest delegates to the underlying Tree. Safe for concurrent use.
func (v *FrozenView) FindKFarthest(probe any, k int, radius float64, sink resultset.Sink) error {
	return v.tree.FindKFarthest(probe, k, radius, sink)
}

// Size returns the underlying tree's point count.
func (v *FrozenView) Size() int { return v.tree.Size() }

// Depth returns the underlying tree's current depth.
func (v *FrozenView) Depth() int { return v.tree.Depth() }
