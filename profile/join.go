// SPDX-License-Identifier: MIT
// Package profile: column binding into the engine's input layout.

package profile

import (
	"errors"
	"fmt"
)

var (
	// ErrNoColumns indicates Join was called without any column.
	ErrNoColumns = errors.New("profile: at least one column is required")
	// ErrRaggedColumns indicates columns of differing lengths.
	ErrRaggedColumns = errors.New("profile: all columns must have the same length")
)

// Join binds one or more equally long feature columns into per-period
// feature vectors: row i holds column values cols[0][i], cols[1][i], ...
// in argument order. The result is the [][]float64 layout cluster.Reduce
// consumes.
//
// Errors:
//   - ErrNoColumns     : no columns given.
//   - ErrRaggedColumns : columns of differing lengths.
func Join(cols ...[]float64) ([][]float64, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	n := len(cols[0])
	for i, col := range cols[1:] {
		if len(col) != n {
			return nil, fmt.Errorf("column %d has %d samples, want %d: %w", i+1, len(col), n, ErrRaggedColumns)
		}
	}

	periods := make([][]float64, n)
	for i := range periods {
		row := make([]float64, len(cols))
		for j, col := range cols {
			row[j] = col[i]
		}
		periods[i] = row
	}

	return periods, nil
}
