package neartree

import "fmt"

// Distance returns d(a,b) under this tree's metric and dimension
// (spec.md §4.1, §6). Both operands must match the tree's element shape
// and dimension, or ErrBadArgument is returned. A valid computation never
// returns NaN — degenerate cases (e.g. normalizing the zero vector under
// the spherical metric) map to +Inf instead.
//
// Complexity: O(dim).
func (t *tree[E]) Distance(a, b any) (float64, error) {
	va, ok := t.ops.convert(a)
	if !ok {
		return 0, fmt.Errorf("neartree: Distance: %w", ErrBadArgument)
	}
	vb, ok := t.ops.convert(b)
	if !ok {
		return 0, fmt.Errorf("neartree: Distance: %w", ErrBadArgument)
	}
	return t.ops.distance(va, vb), nil
}
