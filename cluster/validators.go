// SPDX-License-Identifier: MIT
// Package cluster: fail-fast input validation.
//
// Purpose:
//   - Provide a single, canonical validation pass run before any merge work.
//   - Return plain sentinel errors (wrapped only with positional context) so
//     call sites and tests can match them via errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; the pass is O(n·D) and
//     allocates nothing.
//   - Validation runs to completion before the engine touches its arena, so
//     a failed call performs no partial work (fail-fast contract).

package cluster

import (
	"fmt"
	"math"
)

// validateInput checks the full engine precondition set and returns the
// shared dimensionality D on success.
//
// Error priority (enforced in tests):
// empty input → target bounds → dimensionality → non-finite values.
func validateInput(periods [][]float64, targetCount int) (int, error) {
	n := len(periods)
	if n == 0 {
		return 0, ErrEmptyInput
	}
	if targetCount < 1 || targetCount > n {
		return 0, fmt.Errorf("target %d of %d periods: %w", targetCount, n, ErrTargetCount)
	}

	// Dimensionality is fixed by the first period; zero-length vectors carry
	// no features to cluster on and are rejected outright.
	dim := len(periods[0])
	if dim == 0 {
		return 0, fmt.Errorf("period 0 has no features: %w", ErrDimensionMismatch)
	}
	for i := 1; i < n; i++ {
		if len(periods[i]) != dim {
			return 0, fmt.Errorf("period %d has %d features, want %d: %w", i, len(periods[i]), dim, ErrDimensionMismatch)
		}
	}

	// NaN or ±Inf would propagate silently through every downstream centroid
	// mean, so the whole matrix is screened up front.
	for i := 0; i < n; i++ {
		for j, v := range periods[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, fmt.Errorf("period %d, feature %d: %w", i, j, ErrNonFinite)
			}
		}
	}

	return dim, nil
}
