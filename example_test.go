package neartree_test

import (
	"fmt"

	"github.com/katalvlaran/neartree"
	"github.com/katalvlaran/neartree/metric"
	"github.com/katalvlaran/neartree/resultset"
)

// ExampleCreate_nearest
//
// Scenario: a 2-D Euclidean tree holding two landmarks, queried for the
// landmark nearest an arbitrary probe point.
//
// Options: KindFloating element storage, metric.L2 distance, default
// (seed-0) deferred-insert randomization — irrelevant here since every
// insert is immediate.
//
// Use case: point-of-interest lookup, e.g. "which saved location is
// closest to the user".
//
// Complexity: O(log n) average per Nearest call.
func ExampleCreate_nearest() {
	tr, err := neartree.Create(2, neartree.NewConfig(neartree.KindFloating, metric.L2))
	if err != nil {
		fmt.Println("create error:", err)
		return
	}

	_ = tr.InsertImmediate([]float64{0, 0}, "origin")
	_ = tr.InsertImmediate([]float64{3, 4}, "far")

	res, err := tr.Nearest([]float64{1, 1}, 1e9)
	if err != nil {
		fmt.Println("nearest error:", err)
		return
	}
	fmt.Println(res.Point, res.Payload)
	// Output:
	// [0 0] origin
}

// ExampleTree_FindInSphere
//
// Scenario: a 1-D integer tree holding 1..9, queried for every point
// within a generous radius of the origin.
//
// Options: KindInteger element storage, metric.L2 distance (collapses to
// absolute difference in one dimension).
//
// Use case: range queries, e.g. "every sensor reading within 100 units of
// baseline".
//
// Complexity: O(log n + m) average, m the match count.
func ExampleTree_FindInSphere() {
	tr, _ := neartree.Create(1, neartree.NewConfig(neartree.KindInteger, metric.L2))
	for i := int64(1); i <= 9; i++ {
		_ = tr.InsertImmediate([]int64{i}, nil)
	}

	sink := resultset.NewSliceSink()
	_ = tr.FindInSphere([]int64{0}, 100, sink)
	fmt.Println(sink.Len())
	// Output:
	// 9
}

// ExampleTree_FindKNearest
//
// Scenario: a 1-D float tree holding 1..100, queried for the (up to) 13
// points nearest 50 that also lie within 3.5 of it.
//
// Options: KindFloating, metric.L2; the radius bound (3.5) ends up more
// restrictive than k (13), so the result set is 7, not 13.
//
// Use case: bounded k-nearest-neighbor search, e.g. "up to 13 candidates,
// but never farther than 3.5 units away".
//
// Complexity: O(log n + m log k) average.
func ExampleTree_FindKNearest() {
	tr, _ := neartree.Create(1, neartree.NewConfig(neartree.KindFloating, metric.L2))
	for i := 1; i <= 100; i++ {
		_ = tr.InsertImmediate([]float64{float64(i)}, nil)
	}

	sink := resultset.NewSliceSink()
	_ = tr.FindKNearest([]float64{50}, 13, 3.5, sink)
	fmt.Println(sink.Len())
	// Output:
	// 7
}
