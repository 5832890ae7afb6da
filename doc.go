// Package chronocluster reduces long chronological series of numeric
// feature vectors into a small set of representative "typical periods" —
// each a centroid with an integer duration weight — while preserving the
// original time ordering of the periods inside every cluster.
//
// 🚀 What is chronocluster?
//
//	An agglomerative (bottom-up) clustering library specialized for
//	time series where contiguity matters: only chronologically adjacent
//	clusters may merge, so every output cluster maps back to one
//	unbroken stretch of the original timeline. Typical uses:
//	  • Reducing a year of hourly load & renewable capacity factors
//	    into a few hundred weighted typical periods
//	  • Piecewise summarization of sensor streams
//	  • Any aggregation where downstream consumers need duration weights
//
// ✨ Why choose chronocluster?
//
//   - Deterministic – fixed leftmost-first tie-break, no randomness,
//     byte-identical output for identical input
//   - Exact – centroids are true arithmetic means of the raw members,
//     maintained as running sums (never re-averaged averages)
//   - Fast – incremental Ward-score index over adjacent pairs,
//     O(n log n) instead of the naive O(n²) rescan
//   - Pure Go – no cgo, safe for concurrent independent invocations
//
// Under the hood, everything is organized under three subpackages:
//
//	cluster/  — the chronological clustering engine (Reduce, ReduceContext)
//	scenario/ — concurrent fan-out of many independent reductions
//	profile/  — deterministic synthetic load / solar / wind fixtures
//
// Quick ASCII example:
//
//	periods:  p0 p1 p2 p3 p4 p5 p6 p7
//	          └─┬─┘ └──┬──┘ └───┬───┘
//	clusters:  c0     c1        c2      (weights 2, 3, 3)
//
//	each cluster covers one contiguous run of periods; weights sum to n.
//
// Dive into cluster/doc.go for the algorithm, invariants and complexity.
//
//	go get github.com/katalvlaran/chronocluster
package chronocluster
