package neartree

import (
	"fmt"
	"math"
)

// tieEpsilon is the relative tolerance used to decide whether two candidate
// distances are "equal within machine epsilon" for insertion tie-breaking
// (spec.md §4.2).
const tieEpsilon = 1e-9

// closeEnough reports whether a and b are equal to within tieEpsilon,
// scaled by their magnitude so the comparison stays meaningful across the
// wide range of distances a tree can hold.
func closeEnough(a, b float64) bool {
	diff := math.Abs(a - b)
	if diff == 0 {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	scale :=math.Max(math.Abs(a), math.Abs(b))
	return diff <= tieEpsilon*scale
}

// InsertImmediate places point into the tree without consulting the
// deferred queue (spec.md §4.2). payload is stored alongside the point but
// not copied or validated.
//
// Complexity: O(log n) average, O(n) worst case on an adversarial tree.
func (t *tree[E]) InsertImmediate(point, payload any) error {
	value, ok := t.ops.convert(point)
	if !ok {
		return fmt.Errorf("neartree: InsertImmediate: %w", ErrBadArgument)
	}
	t.insertValue(value, payload)
	t.count++
	return nil
}

// InsertDeferred appends (point, payload) to the pending queue without
// touching the tree (spec.md §4.2). A later Flush, or any query, drains it.
//
// Complexity: O(1) amortized.
func (t *tree[E]) InsertDeferred(point, payload any) error {
	value, ok := t.ops.convert(point)
	if !ok {
		return fmt.Errorf("neartree: InsertDeferred: %w", ErrBadArgument)
	}
	t.pending = append(t.pending, pendingItem[E]{point: t.ops.clone(value), payload: payload})
	return nil
}

// Flush drains the deferred queue in a randomized order and performs
// InsertImmediate for each element (spec.md §4.2:
// complete_delayed_insert). Randomization is the construction-balancing
// mechanism; the tree's rng (seeded deterministically by default, see
// WithSeed) makes the resulting shape reproducible per seed.
//
// Complexity: O(m log m) average over the m pending items, plus the
// O(m) Fisher-Yates shuffle.
func (t *tree[E]) Flush() error {
	if len(t.pending) == 0 {
		return nil
	}

	t.rng.Shuffle(len(t.pending), func(i, j int) {
		t.pending[i], t.pending[j] = t.pending[j], t.pending[i]
	})

	items := t.pending
	t.pending = nil
	for _, item := range items {
		t.insertValue(item.point, item.payload)
		t.count++
	}

	return nil
}

// flushBeforeQuery is called at the top of every query method, so queries
// behave as if the deferred queue were always empty (spec.md §3: "Query
// safety").
func (t *tree[E]) flushBeforeQuery() error {
	return t.Flush()
}

// insertValue descends from the root, creating it on first use, following
// the insertion algorithm of spec.md §4.2.
func (t *tree[E]) insertValue(value E, payload any) {
	if t.root == nil {
		t.root = &node[E]{}
	}
	t.descendInsert(t.root, value, payload)
}

// descendInsert implements the per-node insertion algorithm:
//  1. an empty left slot takes the new point outright;
//  2. otherwise an empty right slot takes it;
//  3. otherwise the point descends into whichever side goesLeft selects,
//     updating that side's max-radius witness (spec.md §4.2).
func (t *tree[E]) descendInsert(n *node[E], value E, payload any) {
	if n.leftPoint == nil {
		stored := t.ops.clone(value)
		n.leftPoint = &stored
		n.leftPayload = payload
		n.leftRadius = 0
		return
	}

	dL := t.ops.distance(value, *n.leftPoint)

	if n.rightPoint == nil {
		stored := t.ops.clone(value)
		n.rightPoint = &stored
		n.rightPayload = payload
		n.rightRadius = 0
		return
	}

	dR := t.ops.distance(value, *n.rightPoint)

	if t.goesLeft(dL, dR, n.leftChild != nil, n.rightChild != nil) {
		if dL > n.leftRadius {
			n.leftRadius = dL
		}
		if n.leftChild == nil {
			n.leftChild = &node[E]{}
		}
		t.descendInsert(n.leftChild, value, payload)
		return
	}

	if dR > n.rightRadius {
		n.rightRadius = dR
	}
	if n.rightChild == nil {
		n.rightChild = &node[E]{}
	}
	t.descendInsert(n.rightChild, value, payload)
}

// goesLeft decides which side a new point descends into at a node with
// both pivots occupied.
//
// Exact ties (within tieEpsilon) go left by default, or right when flip
// mode is set (spec.md §4.2 and §9's GLOSSARY entry for "Flip").
//
// Away from ties, the default rule is the nearest-pivot greedy descent:
// the closer side wins. On strictly monotone input (spec.md §8 invariant
// 8's 1,2,4,8,... doublings) that greedy rule never ties — each arriving
// value is always closer to whichever pivot was inserted more recently —
// so it always deepens the same side, producing one long chain regardless
// of flip. Flip mode therefore adds a second, coarser signal ahead of the
// distance comparison: whenever exactly one side already has a child
// subtree and the other does not, grow the side that doesn't, so a node's
// two children start filling out before either one deepens further. Once
// both sides have children (or neither does), flip mode falls back to the
// same nearest-pivot rule as default. This is what actually lets flip mode
// keep branching instead of chaining on monotone input, while leaving
// default-mode structure — and every query's correctness, which depends
// only on leftRadius/rightRadius being updated for whichever side is
// chosen, never on which side that is — untouched.
func (t *tree[E]) goesLeft(dL, dR float64, hasLeftChild, hasRightChild bool) bool {
	if closeEnough(dL, dR) {
		return !t.flip
	}
	if t.flip && hasLeftChild != hasRightChild {
		return !hasLeftChild
	}
	return dL < dR
}

// Size returns the total inserted point count, including pending deferred
// items not yet flushed (spec.md §4.5).
func (t *tree[E]) Size() int {
	return t.count + len(t.pending)
}

// Depth returns the length of the longest root-to-leaf path, measured
// against the tree's current structure — it does not flush first, matching
// the original source's before/after-flush depth assertions.
func (t *tree[E]) Depth() int {
	return t.root.depth()
}

// IsEmpty reports whether the tree holds no points at all, counting
// pending deferred items (spec.md §4.5: zero_if_empty).
func (t *tree[E]) IsEmpty() bool {
	return t.count == 0 && len(t.pending) == 0
}

// PendingCount returns the number of deferred inserts not yet flushed.
func (t *tree[E]) PendingCount() int {
	return len(t.pending)
}
