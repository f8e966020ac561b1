package heapsel_test

import (
	"testing"

	"github.com/katalvlaran/neartree/internal/heapsel"
	"github.com/stretchr/testify/assert"
)

func TestSelector_KeepsKSmallest(t *testing.T) {
	s := heapsel.NewSelector(3, true)
	for _, d := range []float64{5, 1, 9, 2, 8, 0, 4} {
		s.Offer(heapsel.Candidate{Distance: d})
	}
	got := drainDistances(s)
	assert.ElementsMatch(t, []float64{0, 1, 2}, got)
}

func TestSelector_KeepsKLargest(t *testing.T) {
	s := heapsel.NewSelector(3, false)
	for _, d := range []float64{5, 1, 9, 2, 8, 0, 4} {
		s.Offer(heapsel.Candidate{Distance: d})
	}
	got := drainDistances(s)
	assert.ElementsMatch(t, []float64{9, 8, 5}, got)
}

func TestSelector_FewerThanKQualify(t *testing.T) {
	s := heapsel.NewSelector(10, true)
	s.Offer(heapsel.Candidate{Distance: 3})
	s.Offer(heapsel.Candidate{Distance: 1})
	assert.Equal(t, 2, s.Len())
	assert.ElementsMatch(t, []float64{1, 3}, drainDistances(s))
}

func TestSelector_ZeroKAdmitsNothing(t *testing.T) {
	s := heapsel.NewSelector(0, true)
	s.Offer(heapsel.Candidate{Distance: 1})
	assert.Equal(t, 0, s.Len())
}

func TestSelector_BoundTightensOnceFull(t *testing.T) {
	s := heapsel.NewSelector(2, true)
	assert.Equal(t, 100.0, s.Bound(100.0))
	s.Offer(heapsel.Candidate{Distance: 10})
	assert.Equal(t, 100.0, s.Bound(100.0), "not full yet, bound stays at initial radius")
	s.Offer(heapsel.Candidate{Distance: 20})
	assert.Equal(t, 20.0, s.Bound(100.0), "full: bound is the current worst admitted distance")
	s.Offer(heapsel.Candidate{Distance: 5})
	assert.Equal(t, 10.0, s.Bound(100.0), "bound tightens monotonically as better candidates arrive")
}

func drainDistances(s *heapsel.Selector) []float64 {
	cands := s.Drain()
	out := make([]float64, len(cands))
	for i, c := range cands {
		out[i] = c.Distance
	}
	return out
}
