package cluster

import (
	"container/heap"
	"context"
	"fmt"
)

// Reduce — Chronological Agglomerative Clustering (Ward linkage)
//
// Description:
//
//	Reduce compresses periods — an ordered sequence of D-dimensional
//	feature vectors — into exactly targetCount clusters by repeatedly
//	merging the pair of *chronologically adjacent* clusters with the
//	smallest Ward dissimilarity. Each output cluster is the centroid of
//	one contiguous run of input periods plus that run's length as an
//	integer weight, so downstream consumers can use the weights for
//	duration-weighted aggregation.
//
// Algorithm Outline:
//  1. Validate the whole input up front (fail fast, no partial work):
//     non-empty periods, 1 ≤ targetCount ≤ len(periods), one shared
//     dimensionality D > 0, every value finite.
//  2. Build the arena: one singleton cluster per period carrying the raw
//     vector as its running sum, linked prev/next in chronological order.
//  3. Score every initial adjacent pair
//     D(I,J) = 2·|I|·|J| / (|I|+|J|) · ‖centroid(I) − centroid(J)‖²
//     and seed a min-heap keyed by (score, left start index).
//  4. While more than targetCount clusters remain:
//     a. Pop heap entries until one matches a live, unchanged pair; the
//        tie-break key makes this the leftmost minimal pair, exactly as a
//        deterministic left-to-right scan would pick.
//     b. Merge the pair: sums and sizes add, the right node unlinks, the
//        left node keeps its id, start index and sequence position.
//     c. Re-score only the ≤2 adjacent pairs the merge disturbed (new
//        left neighbor pair, new right neighbor pair) and push them.
//     d. Report a MergeEvent to Options.OnMerge when set.
//  5. Walk the surviving linked sequence and emit (centroid, weight,
//     range) per cluster in chronological order.
//
// Error Conditions:
//   - ErrEmptyInput         : len(periods) == 0.
//   - ErrTargetCount        : targetCount < 1 or targetCount > len(periods).
//   - ErrDimensionMismatch  : vectors of differing or zero length.
//   - ErrNonFinite          : any NaN or ±Inf feature value.
//
// Complexity: O(n·D) validation and arena setup, O(n log n) heap traffic,
// O(D) per merge — O(n·(D + log n)) total. Memory: O(n·D).
//
// Reduce is a pure function: it retains no state between calls and may be
// invoked concurrently from independent goroutines on independent inputs.
func Reduce(periods [][]float64, targetCount int, opts *Options) ([]Cluster, error) {
	return ReduceContext(context.Background(), periods, targetCount, opts)
}

// ReduceContext is Reduce with caller-supplied cancellation. The context is
// checked once per merge; on cancellation the call returns ErrCanceled
// (wrapping ctx.Err()) and no partial result. Cancellation does not apply
// to the validation pass, which is a single fast O(n·D) sweep.
func ReduceContext(ctx context.Context, periods [][]float64, targetCount int, opts *Options) ([]Cluster, error) {
	// 1. Validate everything before any merge work begins.
	dim, err := validateInput(periods, targetCount)
	if err != nil {
		return nil, err
	}

	var onMerge func(MergeEvent)
	if opts != nil {
		onMerge = opts.OnMerge
	}

	// 2. One singleton cluster per period, chronologically linked.
	a := newArena(periods, dim)

	// Scratch centroid buffers shared by every score computation; wardScore
	// overwrites them, so nothing observable escapes the call.
	scratchL := make([]float64, dim)
	scratchR := make([]float64, dim)

	// 3. Seed the heap with all n-1 initial adjacent pairs.
	h := make(pairHeap, 0, len(periods)-1)
	for id := 0; id+1 < len(periods); id++ {
		h = append(h, a.entry(id, scratchL, scratchR))
	}
	heap.Init(&h)

	// 4. Merge until the sequence reaches the requested length.
	for a.count > targetCount {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrCanceled, ctxErr)
		}

		// 4a. Leftmost minimal live pair.
		e := a.popLive(&h)
		rightStart := a.nodes[a.nodes[e.left].next].start

		// 4b. Fold the right cluster into the left one.
		a.merge(e.left)

		// 4c. Only the two pairs touching the merged cluster changed score.
		merged := &a.nodes[e.left]
		if merged.prev != noNeighbor {
			heap.Push(&h, a.entry(merged.prev, scratchL, scratchR))
		}
		if merged.next != noNeighbor {
			heap.Push(&h, a.entry(e.left, scratchL, scratchR))
		}

		// 4d. Progress hook, synchronous and in merge order.
		if onMerge != nil {
			onMerge(MergeEvent{
				LeftStart:    merged.start,
				RightStart:   rightStart,
				Score:        e.score,
				MergedWeight: merged.size,
				Remaining:    a.count,
			})
		}
	}

	// 5. Emit the final chronological sequence.
	return a.clusters(), nil
}
