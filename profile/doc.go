// Package profile generates deterministic synthetic period profiles —
// hourly electricity demand and renewable capacity factors — for tests,
// benchmarks and examples of the chronocluster engine.
//
// 🚀 What is it for?
//
//	The clustering engine consumes a matrix of per-period feature vectors.
//	Real input comes from an external loader; for reproducible fixtures
//	this package synthesizes the three canonical feature columns:
//	  • Load  — daily sinusoidal demand cycle with trend and noise
//	  • Solar — clipped daily capacity-factor curve, exactly 0 at night
//	  • Wind  — smoothed autoregressive capacity-factor noise
//	and Join binds columns into the [][]float64 layout Reduce expects.
//
// ✨ Properties:
//   - strict determinism per (n, seed, options); no global state
//   - O(n) time and memory per generator, tiny constant factors
//   - capacity factors clamped to [0, 1], like the physical quantity
//
// ⚙️ Usage:
//
//	load := profile.Load(8760, 42)
//	solar := profile.Solar(8760, 43)
//	wind := profile.Wind(8760, 44, profile.WithNoise(0.08))
//	periods, err := profile.Join(load, solar, wind)
//
// Generators return nil when n ≤ 0; Join reports ragged columns.
package profile
