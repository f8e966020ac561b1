// Package heapsel implements a bounded top-k selection structure used by
// find_k_nearest and find_k_farthest.
//
// It keeps at most k Candidates ordered by Distance, backed by
// container/heap the same way dijkstra's priority queue is — a lazy,
// push/pop driven frontier rather than a sorted slice. A Selector
// configured to keep the k smallest distances is a max-heap (the worst
// admitted candidate, the one evicted first, sits at the root); one
// configured to keep the k largest distances is a min-heap.
//
// Complexity: Offer is O(log k); Drain is O(k log k).
package heapsel
