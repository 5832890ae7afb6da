// SPDX-License-Identifier: MIT
// Package cluster: the cluster arena.
//
// Clusters live in a flat slice and are addressed by stable integer ids
// (the id of the first period they cover). Chronological adjacency is kept
// as explicit prev/next links, so a merge is O(1) pointer surgery plus one
// vector addition. Every cluster carries the running componentwise SUM of
// its raw member vectors; centroids are materialized by a single division,
// which keeps them exact arithmetic means no matter how many merges built
// the cluster.

package cluster

import "gonum.org/v1/gonum/floats"

// noNeighbor marks the missing neighbor of the first / last cluster.
const noNeighbor = -1

// wardPairFactor is the constant 2 in Ward's merge cost
// D(I,J) = 2·|I|·|J| / (|I|+|J|) · ‖centroid(I) − centroid(J)‖².
const wardPairFactor = 2.0

// node is one cluster in the arena.
type node struct {
	sum        []float64 // running componentwise sum of member vectors
	size       int       // member count; the output weight
	start, end int       // covered original period range [start, end)
	prev, next int       // neighbor ids, noNeighbor at the sequence edges
	version    int       // bumped on every merge the node absorbs
	alive      bool      // false once absorbed by its left neighbor
}

// arena holds the current cluster sequence for one reduction.
type arena struct {
	nodes []node
	dim   int // shared feature dimensionality D
	count int // live clusters remaining
}

// newArena builds the initial sequence: one singleton cluster per period,
// linked in chronological order. O(n·D).
func newArena(periods [][]float64, dim int) *arena {
	n := len(periods)
	a := &arena{nodes: make([]node, n), dim: dim, count: n}
	for i, p := range periods {
		sum := make([]float64, dim)
		copy(sum, p)
		a.nodes[i] = node{
			sum:   sum,
			size:  1,
			start: i,
			end:   i + 1,
			prev:  i - 1,
			next:  i + 1,
			alive: true,
		}
	}
	a.nodes[n-1].next = noNeighbor

	return a
}

// merge folds the right neighbor of id into id: sums add, sizes add, the
// covered range extends, and the right node leaves the linked sequence.
// The surviving node keeps its id and start index, so the sequence position
// of the merged cluster is exactly the position the pair occupied. O(D).
func (a *arena) merge(id int) {
	left := &a.nodes[id]
	right := &a.nodes[left.next]

	floats.Add(left.sum, right.sum) // exact: raw sums, not re-averaged centroids
	left.size += right.size
	left.end = right.end

	// Unlink the absorbed node.
	left.next = right.next
	if right.next != noNeighbor {
		a.nodes[right.next].prev = id
	}
	right.alive = false

	// Any heap entry scored against the old shape of this node is now stale.
	left.version++
	a.count--
}

// centroidInto writes sum/size of node id into dst (len dim).
func (a *arena) centroidInto(dst []float64, id int) {
	nd := &a.nodes[id]
	floats.ScaleTo(dst, 1/float64(nd.size), nd.sum)
}

// wardScore computes the Ward dissimilarity between node id and its right
// neighbor, using the caller's scratch centroid buffers. O(D).
func (a *arena) wardScore(id int, scratchL, scratchR []float64) float64 {
	left := &a.nodes[id]
	right := &a.nodes[left.next]

	a.centroidInto(scratchL, id)
	a.centroidInto(scratchR, left.next)
	dist := floats.Distance(scratchL, scratchR, 2)

	szL, szR := float64(left.size), float64(right.size)

	return wardPairFactor * szL * szR / (szL + szR) * dist * dist
}

// clusters materializes the surviving sequence in chronological order.
// Node 0 only ever absorbs (it has no left neighbor), so it is always the
// head of the linked sequence. O(count·D).
func (a *arena) clusters() []Cluster {
	out := make([]Cluster, 0, a.count)
	for id := 0; id != noNeighbor; id = a.nodes[id].next {
		nd := &a.nodes[id]
		centroid := make([]float64, a.dim)
		floats.ScaleTo(centroid, 1/float64(nd.size), nd.sum)
		out = append(out, Cluster{
			Centroid: centroid,
			Weight:   nd.size,
			Start:    nd.start,
			End:      nd.end,
		})
	}

	return out
}
