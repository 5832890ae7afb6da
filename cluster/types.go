// Package cluster defines the public result and option types for the
// chronological clustering engine.
package cluster

// Cluster is one reduced typical period: the centroid of a contiguous run
// of original periods together with its duration weight.
//
// Fields:
//   - Centroid — componentwise arithmetic mean of the member feature
//     vectors (length D, the input dimensionality).
//   - Weight   — number of original periods the cluster represents.
//     Summed over all clusters this always equals len(periods).
//   - Start    — index of the first original period in the cluster.
//   - End      — one past the index of the last original period, so the
//     cluster covers the half-open range [Start, End) and
//     Weight == End − Start.
//
// Successive clusters returned by Reduce satisfy prev.End == next.Start:
// the ranges partition the full input with no gaps and no overlaps.
type Cluster struct {
	Centroid []float64
	Weight   int
	Start    int
	End      int
}

// MergeEvent describes one completed merge of two adjacent clusters.
// It is delivered synchronously to Options.OnMerge, replacing ad-hoc
// progress printing with a structured hook the caller can route anywhere.
//
// Fields:
//   - LeftStart    — Start index of the left cluster of the merged pair.
//   - RightStart   — Start index of the right cluster of the merged pair.
//   - Score        — Ward dissimilarity of the pair at merge time.
//   - MergedWeight — period count of the resulting cluster.
//   - Remaining    — clusters remaining after this merge.
type MergeEvent struct {
	LeftStart    int
	RightStart   int
	Score        float64
	MergedWeight int
	Remaining    int
}

// Options configures a reduction.
//
// Fields:
//   - OnMerge — optional progress hook invoked once per merge, on the
//     calling goroutine, in merge order. nil disables reporting.
//     The hook must not mutate engine state; it observes only.
//
// A nil *Options is equivalent to DefaultOptions().
type Options struct {
	OnMerge func(MergeEvent)
}

// DefaultOptions returns the default reduction policy: no progress hook.
func DefaultOptions() Options {
	return Options{}
}
