// SPDX-License-Identifier: MIT
// Package cluster: min-heap index over adjacent-pair merge scores.
//
// Entries are immutable snapshots: each records the Ward score of one
// (cluster, right-neighbor) pair together with the version stamps of both
// nodes at scoring time. Merges never search the heap to remove entries —
// they bump node versions instead, and stale entries are discarded lazily
// when popped. Each merge pushes at most two fresh entries, so the total
// heap traffic over a full reduction is O(n log n).

package cluster

import "container/heap"

// pairEntry is one candidate merge between a cluster and its right neighbor.
type pairEntry struct {
	score      float64 // Ward dissimilarity of the pair
	start      int     // left cluster's start index; deterministic tie-break
	left       int     // arena id of the left cluster
	lver, rver int     // node versions when the score was computed
}

// pairHeap implements heap.Interface over pairEntry, ordered by ascending
// score with ties broken by the lowest left start index. The tie-break makes
// the pop order equal to a left-to-right scan selecting the strict minimum,
// so results are reproducible across runs and platforms.
type pairHeap []pairEntry

// Len returns the number of entries (live and stale) in the heap.
func (h pairHeap) Len() int { return len(h) }

// Less orders by score, then by left start index for exact ties.
// Two live entries can never share a start index, so the order is total.
func (h pairHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}

	return h[i].start < h[j].start
}

// Swap swaps entries i and j.
func (h pairHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends a new pairEntry. Called by heap.Push.
func (h *pairHeap) Push(x interface{}) { *h = append(*h, x.(pairEntry)) }

// Pop removes and returns the minimal entry. Called by heap.Pop.
func (h *pairHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// valid reports whether e still describes a live, unchanged adjacent pair:
// the left node must be alive, still have a right neighbor, and both nodes
// must carry the versions the entry was scored against.
func (a *arena) valid(e pairEntry) bool {
	left := &a.nodes[e.left]
	if !left.alive || left.next == noNeighbor || left.version != e.lver {
		return false
	}

	return a.nodes[left.next].version == e.rver
}

// entry scores the (id, right-neighbor) pair and snapshots both versions.
// The caller guarantees id has a right neighbor.
func (a *arena) entry(id int, scratchL, scratchR []float64) pairEntry {
	nd := &a.nodes[id]

	return pairEntry{
		score: a.wardScore(id, scratchL, scratchR),
		start: nd.start,
		left:  id,
		lver:  nd.version,
		rver:  a.nodes[nd.next].version,
	}
}

// popLive discards stale entries until the minimal live pair surfaces.
// At least one live entry exists whenever two or more clusters remain,
// because every merge re-scores the pairs it disturbed.
func (a *arena) popLive(h *pairHeap) pairEntry {
	for {
		e := heap.Pop(h).(pairEntry)
		if a.valid(e) {
			return e
		}
	}
}
