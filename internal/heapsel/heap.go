package heapsel

import "container/heap"

// Candidate is one admitted point in a bounded top-k selection.
type Candidate struct {
	Distance float64
	Point    any
	Payload  any
}

// candidateHeap implements container/heap.Interface over a slice of
// Candidate. When keepSmallest is true the root is the largest admitted
// distance (a max-heap, used by k-nearest to evict the worst of the k
// smallest); when false the root is the smallest (a min-heap, used by
// k-farthest to evict the worst of the k largest).
type candidateHeap struct {
	items        []Candidate
	keepSmallest bool
}

func (h candidateHeap) Len() int { return len(h.items) }

func (h candidateHeap) Less(i, j int) bool {
	if h.keepSmallest {
		return h.items[i].Distance > h.items[j].Distance
	}
	return h.items[i].Distance < h.items[j].Distance
}

func (h candidateHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *candidateHeap) Push(x any) { h.items = append(h.items, x.(Candidate)) }

func (h *candidateHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

// Selector keeps the best ≤k Candidates seen so far, "best" meaning smallest
// distance (k-nearest) or largest distance (k-farthest) depending on how it
// was constructed.
type Selector struct {
	k int
	h *candidateHeap
}

// NewSelector returns an empty Selector bounded to k candidates. keepSmallest
// selects k-nearest semantics (retain the k smallest distances); false
// selects k-farthest semantics (retain the k largest).
func NewSelector(k int, keepSmallest bool) *Selector {
	h := &candidateHeap{keepSmallest: keepSmallest}
	heap.Init(h)
	return &Selector{k: k, h: h}
}

// Len reports how many candidates are currently admitted.
func (s *Selector) Len() int { return s.h.Len() }

// Full reports whether the Selector already holds k candidates.
func (s *Selector) Full() bool { return s.k > 0 && s.h.Len() >= s.k }

// WorstDistance returns the distance of the candidate Offer would evict
// next, and false if the Selector is empty.
func (s *Selector) WorstDistance() (float64, bool) {
	if s.h.Len() == 0 {
		return 0, false
	}
	return s.h.items[0].Distance, true
}

// Bound returns the effective search bound: the user-supplied initial bound
// until the Selector fills to k candidates, then the current worst admitted
// distance, tightening monotonically from there (spec.md §4.3).
func (s *Selector) Bound(initial float64) float64 {
	if w, ok := s.WorstDistance(); ok && s.Full() {
		return w
	}
	return initial
}

// Offer proposes a candidate for admission. If the Selector has fewer than k
// entries, c is admitted unconditionally. Once full, c is admitted only if
// it strictly improves on the current worst admitted distance, which is
// then evicted.
func (s *Selector) Offer(c Candidate) {
	if s.k <= 0 {
		return
	}
	if s.h.Len() < s.k {
		heap.Push(s.h, c)
		return
	}

	worst := s.h.items[0].Distance
	var improves bool
	if s.h.keepSmallest {
		improves = c.Distance < worst
	} else {
		improves = c.Distance > worst
	}
	if !improves {
		return
	}
	heap.Pop(s.h)
	heap.Push(s.h, c)
}

// Drain empties the Selector and returns its admitted candidates. Order is
// unspecified — ties at the boundary were kept or dropped arbitrarily
// (spec.md §4.3), and this is not a sorted result.
func (s *Selector) Drain() []Candidate {
	out := make([]Candidate, len(s.h.items))
	copy(out, s.h.items)
	s.h.items = s.h.items[:0]
	return out
}
