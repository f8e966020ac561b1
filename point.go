package neartree

// toFloatVector coerces an arbitrary point/probe value into a []float64 of
// exactly dim elements. []float64 is accepted as-is; []int and []int64 are
// widened. Any other shape, or a mismatched length, fails.
func toFloatVector(v any, dim int) ([]float64, bool) {
	switch p := v.(type) {
	case []float64:
		if len(p) != dim {
			return nil, false
		}
		out := make([]float64, dim)
		copy(out, p)
		return out, true
	case []int64:
		if len(p) != dim {
			return nil, false
		}
		out := make([]float64, dim)
		for i, x := range p {
			out[i] = float64(x)
		}
		return out, true
	case []int:
		if len(p) != dim {
			return nil, false
		}
		out := make([]float64, dim)
		for i, x := range p {
			out[i] = float64(x)
		}
		return out, true
	default:
		return nil, false
	}
}

// toIntVector coerces an arbitrary point/probe value into a []int64 of
// exactly dim elements. []int64 and []int are accepted as-is/widened.
func toIntVector(v any, dim int) ([]int64, bool) {
	switch p := v.(type) {
	case []int64:
		if len(p) != dim {
			return nil, false
		}
		out := make([]int64, dim)
		copy(out, p)
		return out, true
	case []int:
		if len(p) != dim {
			return nil, false
		}
		out := make([]int64, dim)
		for i, x := range p {
			out[i] = int64(x)
		}
		return out, true
	default:
		return nil, false
	}
}

// toStringPoint coerces an arbitrary point/probe value into a string. The
// declared dimension is the fixed width; shorter strings are accepted here
// and padded later by metric.String, matching the source's truncate/pad
// semantics (spec.md §4.1).
func toStringPoint(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
