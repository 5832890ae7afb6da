package cluster_test

import (
	"fmt"

	"github.com/katalvlaran/chronocluster/cluster"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleReduce
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Reduce four one-dimensional periods [0, 1, 2, 10] to two typical
//	periods. The first three values sit close together, the last one is an
//	outlier, so the reduction keeps the outlier as its own cluster and
//	averages the rest.
//
// Use case:
//
//	The smallest end-to-end demonstration of centroids, weights and the
//	preserved chronological ranges.
//
// Complexity: O(n log n) merges, O(n·D) arithmetic.
func ExampleReduce() {
	periods := [][]float64{{0}, {1}, {2}, {10}}

	clusters, err := cluster.Reduce(periods, 2, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, c := range clusters {
		fmt.Printf("%d: range=[%d,%d) weight=%d centroid=%v\n", i, c.Start, c.End, c.Weight, c.Centroid)
	}
	// Output:
	// 0: range=[0,3) weight=3 centroid=[1]
	// 1: range=[3,4) weight=1 centroid=[10]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleReduce_progress
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Observe every merge through Options.OnMerge, the structured replacement
//	for progress printing: each event carries the merged pair's start
//	indices, its Ward score and the remaining cluster count.
//
// Use case:
//
//	Progress bars or structured logs around long reductions, kept entirely
//	outside the engine's contract.
func ExampleReduce_progress() {
	periods := [][]float64{{0}, {1}, {2}, {10}}

	opts := cluster.DefaultOptions()
	opts.OnMerge = func(ev cluster.MergeEvent) {
		fmt.Printf("merged %d+%d, %d clusters left\n", ev.LeftStart, ev.RightStart, ev.Remaining)
	}

	if _, err := cluster.Reduce(periods, 2, &opts); err != nil {
		fmt.Println("error:", err)

		return
	}
	// Output:
	// merged 0+1, 3 clusters left
	// merged 0+2, 2 clusters left
}
