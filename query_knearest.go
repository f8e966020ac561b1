package neartree

import (
	"fmt"

	"github.com/katalvlaran/neartree/internal/heapsel"
	"github.com/katalvlaran/neartree/resultset"
)

// FindKNearest collects up to k stored points closest to probe among those
// within radius, into sink (spec.md §4.3). If fewer than k points qualify,
// all qualifying points are returned. A negative k is a bad argument.
//
// Complexity: O(log n + m log k) average, where m is the number of nodes
// visited.
func (t *tree[E]) FindKNearest(probe any, k int, radius float64, sink resultset.Sink) error {
	return t.findK(probe, k, radius, sink, true)
}

// FindKFarthest collects up to k stored points farthest from probe among
// those beyond radius, into sink (spec.md §4.3).
//
// Complexity: O(log n + m log k) average.
func (t *tree[E]) FindKFarthest(probe any, k int, radius float64, sink resultset.Sink) error {
	return t.findK(probe, k, radius, sink, false)
}

func (t *tree[E]) findK(probe any, k int, radius float64, sink resultset.Sink, keepSmallest bool) error {
	if sink == nil {
		return fmt.Errorf("neartree: findK: %w", ErrBadArgument)
	}
	if k < 0 {
		return fmt.Errorf("neartree: findK: k=%d: %w", k, ErrBadArgument)
	}
	if err := t.flushBeforeQuery(); err != nil {
		return err
	}
	if k == 0 {
		return nil
	}

	probeVal, ok := t.ops.convert(probe)
	if !ok {
		return fmt.Errorf("neartree: findK: %w", ErrBadArgument)
	}

	selector := heapsel.NewSelector(k, keepSmallest)
	t.kRecurse(t.root, probeVal, radius, selector, keepSmallest)

	for _, c := range selector.Drain() {
		if err := sink.Collect(c.Point, c.Payload); err != nil {
			return err
		}
	}
	return nil
}

// kRecurse is the shared bounded-radius traversal for k-nearest
// (keepSmallest=true) and k-farthest (keepSmallest=false). The effective
// search bound is selector.Bound(radius): the user-supplied radius bound
// until the selector fills to k candidates, then the k-th best admitted
// distance so far, tightening monotonically (spec.md §4.3).
func (t *tree[E]) kRecurse(n *node[E], probe E, radius float64, selector *heapsel.Selector, keepSmallest bool) {
	if n == nil {
		return
	}

	var dL, dR float64
	if n.leftPoint != nil {
		dL = t.ops.distance(probe, *n.leftPoint)
		t.offerIfQualifies(selector, dL, *n.leftPoint, n.leftPayload, radius, keepSmallest)
	}
	if n.rightPoint != nil {
		dR = t.ops.distance(probe, *n.rightPoint)
		t.offerIfQualifies(selector, dR, *n.rightPoint, n.rightPayload, radius, keepSmallest)
	}

	bound := selector.Bound(radius)
	if keepSmallest {
		if n.leftChild != nil && dL-n.leftRadius <= bound {
			t.kRecurse(n.leftChild, probe, radius, selector, keepSmallest)
		}
		bound = selector.Bound(radius)
		if n.rightChild != nil && dR-n.rightRadius <= bound {
			t.kRecurse(n.rightChild, probe, radius, selector, keepSmallest)
		}
		return
	}

	if n.leftChild != nil && dL+n.leftRadius >= bound {
		t.kRecurse(n.leftChild, probe, radius, selector, keepSmallest)
	}
	bound = selector.Bound(radius)
	if n.rightChild != nil && dR+n.rightRadius >= bound {
		t.kRecurse(n.rightChild, probe, radius, selector, keepSmallest)
	}
}

// offerIfQualifies admits (point, payload) at distance d to selector only
// if it satisfies the caller's radius bound: inside radius (inclusive) for
// k-nearest, beyond radius (inclusive) for k-farthest, and always at least
// as good as the selector's current worst admitted candidate once full.
func (t *tree[E]) offerIfQualifies(selector *heapsel.Selector, d float64, point E, payload any, radius float64, keepSmallest bool) {
	bound := selector.Bound(radius)
	if keepSmallest {
		if d <= bound {
			selector.Offer(heapsel.Candidate{Distance: d, Point: point, Payload: payload})
		}
		return
	}
	if d >= bound {
		selector.Offer(heapsel.Candidate{Distance: d, Point: point, Payload: payload})
	}
}
