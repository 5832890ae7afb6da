// SPDX-License-Identifier: MIT
// Package profile: deterministic load / solar / wind generators.
//
// Purpose (single responsibility):
//   - Provide reproducible 1-D feature columns for tests, demos and benches.
//   - Strict determinism per (n, seed, options); no global state; O(n).

package profile

import (
	"math"
	"math/rand"
)

const (
	twoPi = 2 * math.Pi

	// windPersistence is the AR(1) coefficient of the wind generator:
	// high persistence gives the slow multi-hour ramps real wind shows.
	windPersistence = 0.92

	// solarPhase shifts the solar curve so its peak falls mid-cycle
	// (midday for a 24-sample day) instead of at sample 0.
	solarPhase = -math.Pi / 2
)

// Load generates n samples of a sinusoidal demand profile:
// base + amp·sin(2π·i/cycle) + trend·i + N(0, sigma).
// Returns nil when n ≤ 0.
func Load(n int, seed int64, opts ...Option) []float64 {
	if n <= 0 {
		return nil
	}
	cfg := resolve(opts)
	rng := rand.New(rand.NewSource(seed))

	out := make([]float64, n)
	for i := range out {
		cyclic := cfg.amp * math.Sin(twoPi*float64(i)/cfg.cycle)
		out[i] = cfg.base + cyclic + cfg.trend*float64(i) + rng.NormFloat64()*cfg.sigma
	}

	return out
}

// Solar generates n samples of a daily solar capacity-factor curve: the
// positive half of a phase-shifted sinusoid scaled to [0, amp], with noise,
// clamped to [0, 1]. Night samples (the negative half-wave) are exactly 0.
// Returns nil when n ≤ 0.
func Solar(n int, seed int64, opts ...Option) []float64 {
	if n <= 0 {
		return nil
	}
	cfg := resolve(opts)
	rng := rand.New(rand.NewSource(seed))

	out := make([]float64, n)
	for i := range out {
		wave := math.Sin(twoPi*float64(i)/cfg.cycle + solarPhase)
		if wave <= 0 {
			out[i] = 0 // night: no noise either, panels are off

			continue
		}
		out[i] = clamp01(wave*cfg.amp + rng.NormFloat64()*cfg.sigma)
	}

	return out
}

// Wind generates n samples of a wind capacity factor as an AR(1) process
// around base, clamped to [0, 1]: slow ramps with persistent excursions.
// Returns nil when n ≤ 0.
func Wind(n int, seed int64, opts ...Option) []float64 {
	if n <= 0 {
		return nil
	}
	cfg := resolve(opts)
	rng := rand.New(rand.NewSource(seed))

	out := make([]float64, n)
	state := cfg.base
	for i := range out {
		state = windPersistence*state + (1-windPersistence)*cfg.base + rng.NormFloat64()*cfg.sigma
		out[i] = clamp01(state)
	}

	return out
}

// clamp01 clips v into [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
