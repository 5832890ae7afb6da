// SPDX-License-Identifier: MIT
// Package cluster: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// cluster package. All operations return these sentinels and tests check
// them via errors.Is. Wrapping with fmt.Errorf("...: %w", ErrX) is allowed
// at call sites that add positional context; plain comparisons keep working.

package cluster

import "errors"

var (
	// ErrEmptyInput indicates the period sequence has no elements.
	ErrEmptyInput = errors.New("cluster: period sequence must be non-empty")

	// ErrTargetCount indicates targetCount is outside 1..len(periods).
	ErrTargetCount = errors.New("cluster: target count must satisfy 1 ≤ target ≤ len(periods)")

	// ErrDimensionMismatch indicates period vectors of differing (or zero) length.
	ErrDimensionMismatch = errors.New("cluster: all period vectors must share one non-zero dimensionality")

	// ErrNonFinite indicates a NaN or ±Inf feature value in the input.
	ErrNonFinite = errors.New("cluster: feature values must be finite")

	// ErrCanceled indicates the caller's context ended before the reduction finished.
	ErrCanceled = errors.New("cluster: reduction canceled")
)
