package cluster

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPairHeap_TieBreaksByStart verifies that equal scores pop in start
// order, which is what makes the merge sequence reproducible.
func TestPairHeap_TieBreaksByStart(t *testing.T) {
	h := pairHeap{
		{score: 1, start: 4, left: 4},
		{score: 1, start: 0, left: 0},
		{score: 0.5, start: 9, left: 9},
		{score: 1, start: 2, left: 2},
	}
	heap.Init(&h)

	wantStarts := []int{9, 0, 2, 4}
	for _, want := range wantStarts {
		e := heap.Pop(&h).(pairEntry)
		assert.Equal(t, want, e.start, "pop order must be (score asc, start asc)")
	}
}

// TestArena_MergeMaintainsLinksAndVersions verifies the O(1) merge surgery:
// sums add, ranges extend, the absorbed node unlinks, and the survivor's
// version bump invalidates stale heap entries.
func TestArena_MergeMaintainsLinksAndVersions(t *testing.T) {
	periods := [][]float64{{1}, {2}, {4}, {8}}
	a := newArena(periods, 1)

	scratchL := make([]float64, 1)
	scratchR := make([]float64, 1)
	stale := a.entry(1, scratchL, scratchR) // pair ({1},{2}) before the merge

	a.merge(1) // fold {2} into {1}

	require.Equal(t, 3, a.count)
	assert.False(t, a.nodes[2].alive, "absorbed node must be dead")
	assert.Equal(t, []float64{6}, a.nodes[1].sum, "sums must add")
	assert.Equal(t, 2, a.nodes[1].size)
	assert.Equal(t, 1, a.nodes[1].start)
	assert.Equal(t, 3, a.nodes[1].end)
	assert.Equal(t, 3, a.nodes[1].next, "survivor links past the absorbed node")
	assert.Equal(t, 1, a.nodes[3].prev, "right neighbor links back to the survivor")

	assert.False(t, a.valid(stale), "entries scored before the merge must be stale")
	assert.True(t, a.valid(a.entry(1, scratchL, scratchR)), "a freshly scored pair is live")
}

// TestArena_PopLiveSkipsStaleEntries verifies lazy invalidation end to end:
// after a merge, the heap still holds outdated entries and popLive must
// discard them instead of merging a dead pair.
func TestArena_PopLiveSkipsStaleEntries(t *testing.T) {
	periods := [][]float64{{0}, {1}, {3}, {7}}
	a := newArena(periods, 1)
	scratchL := make([]float64, 1)
	scratchR := make([]float64, 1)

	h := make(pairHeap, 0, 3)
	for id := 0; id+1 < len(periods); id++ {
		h = append(h, a.entry(id, scratchL, scratchR))
	}
	heap.Init(&h)

	// The minimal pair is ({0},{1}) with score 1.
	e := a.popLive(&h)
	require.Equal(t, 0, e.left)
	a.merge(e.left)
	heap.Push(&h, a.entry(0, scratchL, scratchR))

	// The old ({1},{2}) entry is now stale; the next live minimum is the
	// rescored ({0,1},{2}) pair.
	next := a.popLive(&h)
	assert.Equal(t, 0, next.left, "stale ({1},{2}) must be skipped")
	assert.True(t, a.valid(next))
}

// TestArena_WardScoreSingletons verifies the score formula on singletons,
// where the size factor collapses to 1 and the score is the squared gap.
func TestArena_WardScoreSingletons(t *testing.T) {
	a := newArena([][]float64{{0}, {3}}, 1)
	scratchL := make([]float64, 1)
	scratchR := make([]float64, 1)

	assert.Equal(t, 9.0, a.wardScore(0, scratchL, scratchR), "2·1·1/2 · 3² = 9")
}
