package neartree

import (
	"fmt"

	"github.com/katalvlaran/neartree/resultset"
)

// FindInSphere collects every stored point within radius of probe into
// sink (spec.md §4.3). A negative radius yields an empty result; radius
// zero yields the (typically singleton) set of points equal to probe under
// the tree's metric.
//
// Complexity: O(log n + m) average, where m is the match count.
func (t *tree[E]) FindInSphere(probe any, radius float64, sink resultset.Sink) error {
	if sink == nil {
		return fmt.Errorf("neartree: FindInSphere: %w", ErrBadArgument)
	}
	if err := t.flushBeforeQuery(); err != nil {
		return err
	}
	if radius < 0 {
		return nil
	}

	probeVal, ok := t.ops.convert(probe)
	if !ok {
		return fmt.Errorf("neartree: FindInSphere: %w", ErrBadArgument)
	}

	return t.inSphereRecurse(t.root, probeVal, radius, sink)
}

func (t *tree[E]) inSphereRecurse(n *node[E], probe E, r float64, sink resultset.Sink) error {
	if n == nil {
		return nil
	}

	if n.leftPoint != nil {
		dL := t.ops.distance(probe, *n.leftPoint)
		if dL <= r {
			if err := sink.Collect(*n.leftPoint, n.leftPayload); err != nil {
				return err
			}
		}
		if n.leftChild != nil && dL-n.leftRadius <= r {
			if err := t.inSphereRecurse(n.leftChild, probe, r, sink); err != nil {
				return err
			}
		}
	}

	if n.rightPoint != nil {
		dR := t.ops.distance(probe, *n.rightPoint)
		if dR <= r {
			if err := sink.Collect(*n.rightPoint, n.rightPayload); err != nil {
				return err
			}
		}
		if n.rightChild != nil && dR-n.rightRadius <= r {
			if err := t.inSphereRecurse(n.rightChild, probe, r, sink); err != nil {
				return err
			}
		}
	}

	return nil
}

// FindOutSphere collects every stored point at distance ≥ radius from
// probe (spec.md §4.3). A negative radius matches every point (every
// distance is ≥ a negative number).
//
// Complexity: O(log n + m) average.
func (t *tree[E]) FindOutSphere(probe any, radius float64, sink resultset.Sink) error {
	if sink == nil {
		return fmt.Errorf("neartree: FindOutSphere: %w", ErrBadArgument)
	}
	if err := t.flushBeforeQuery(); err != nil {
		return err
	}

	probeVal, ok := t.ops.convert(probe)
	if !ok {
		return fmt.Errorf("neartree: FindOutSphere: %w", ErrBadArgument)
	}

	return t.outSphereRecurse(t.root, probeVal, radius, sink)
}

func (t *tree[E]) outSphereRecurse(n *node[E], probe E, r float64, sink resultset.Sink) error {
	if n == nil {
		return nil
	}

	if n.leftPoint != nil {
		dL := t.ops.distance(probe, *n.leftPoint)
		if dL >= r {
			if err := sink.Collect(*n.leftPoint, n.leftPayload); err != nil {
				return err
			}
		}
		if n.leftChild != nil && dL+n.leftRadius >= r {
			if err := t.outSphereRecurse(n.leftChild, probe, r, sink); err != nil {
				return err
			}
		}
	}

	if n.rightPoint != nil {
		dR := t.ops.distance(probe, *n.rightPoint)
		if dR >= r {
			if err := sink.Collect(*n.rightPoint, n.rightPayload); err != nil {
				return err
			}
		}
		if n.rightChild != nil && dR+n.rightRadius >= r {
			if err := t.outSphereRecurse(n.rightChild, probe, r, sink); err != nil {
				return err
			}
		}
	}

	return nil
}

// FindInAnnulus collects every stored point whose distance to probe lies
// in [rLo, rHi], applying both the in-sphere and out-sphere pruning rules
// (spec.md §4.3).
//
// Complexity: O(log n + m) average.
func (t *tree[E]) FindInAnnulus(probe any, rLo, rHi float64, sink resultset.Sink) error {
	if sink == nil {
		return fmt.Errorf("neartree: FindInAnnulus: %w", ErrBadArgument)
	}
	if err := t.flushBeforeQuery(); err != nil {
		return err
	}
	if rHi < 0 || rHi < rLo {
		return nil
	}

	probeVal, ok := t.ops.convert(probe)
	if !ok {
		return fmt.Errorf("neartree: FindInAnnulus: %w", ErrBadArgument)
	}

	return t.inAnnulusRecurse(t.root, probeVal, rLo, rHi, sink)
}

func (t *tree[E]) inAnnulusRecurse(n *node[E], probe E, rLo, rHi float64, sink resultset.Sink) error {
	if n == nil {
		return nil
	}

	if n.leftPoint != nil {
		dL := t.ops.distance(probe, *n.leftPoint)
		if dL >= rLo && dL <= rHi {
			if err := sink.Collect(*n.leftPoint, n.leftPayload); err != nil {
				return err
			}
		}
		if n.leftChild != nil && dL-n.leftRadius <= rHi && dL+n.leftRadius >= rLo {
			if err := t.inAnnulusRecurse(n.leftChild, probe, rLo, rHi, sink); err != nil {
				return err
			}
		}
	}

	if n.rightPoint != nil {
		dR := t.ops.distance(probe, *n.rightPoint)
		if dR >= rLo && dR <= rHi {
			if err := sink.Collect(*n.rightPoint, n.rightPayload); err != nil {
				return err
			}
		}
		if n.rightChild != nil && dR-n.rightRadius <= rHi && dR+n.rightRadius >= rLo {
			if err := t.inAnnulusRecurse(n.rightChild, probe, rLo, rHi, sink); err != nil {
				return err
			}
		}
	}

	return nil
}
