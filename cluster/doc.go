// Package cluster implements chronological-adjacency-constrained
// hierarchical clustering: it compresses an ordered sequence of numeric
// feature vectors (one per time period) into a requested number of
// representative clusters, each reported as a centroid plus an integer
// duration weight, without ever breaking the original time ordering.
//
// 🚀 What does it do?
//
//	Classical Ward clustering may merge any two clusters; here only
//	*chronologically adjacent* clusters are allowed to merge, so every
//	output cluster always covers one contiguous run of input periods.
//	This is the standard reduction step for long operational time
//	series, e.g. collapsing 8760 hours of load and renewable capacity
//	factors into a few hundred weighted "typical periods" consumed by
//	duration-weighted optimization models.
//
// ✨ Key features:
//   - Ward-linkage merge cost restricted to adjacent pairs:
//     D(I,J) = 2·|I|·|J| / (|I|+|J|) · ‖centroid(I) − centroid(J)‖²
//   - exact centroids: running componentwise sums of the raw member
//     vectors, divided once at read time (never averages of averages)
//   - deterministic leftmost-first tie-break on equal merge scores
//   - incremental min-heap over adjacent-pair scores with lazy
//     invalidation — O(n log n) total instead of O(n²) rescans
//   - optional per-merge progress callback (Options.OnMerge)
//   - optional cancellation via ReduceContext
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/chronocluster/cluster"
//
//	// periods: one D-dimensional feature vector per time step
//	clusters, err := cluster.Reduce(periods, 672, nil)
//	if err != nil {
//	  // handle ErrEmptyInput / ErrTargetCount /
//	  // ErrDimensionMismatch / ErrNonFinite
//	}
//	for _, c := range clusters {
//	  // c.Centroid, c.Weight, original index range [c.Start, c.End)
//	}
//
// Guarantees (for every valid input):
//   - exactly targetCount clusters are returned, in chronological order
//   - the [Start, End) ranges partition [0, len(periods)) with no gaps
//   - the weights sum to len(periods) exactly
//   - repeated invocations on identical input are byte-identical
//
// Performance:
//
//   - Time:   O(n log n) merges + O(n·D) centroid arithmetic
//   - Memory: O(n·D) for the cluster arena, O(n) for the score heap
//
// See reduce.go for the algorithm walkthrough and example_test.go for
// worked scenarios.
package cluster
