// SPDX-License-Identifier: MIT

package assignment

import (
	"fmt"

	"github.com/katalvlaran/asap/sparse"
)

// Cost returns the total weight of the pairs in r measured on m.
// Returns ErrNilMatrix, ErrBadResult for mismatched lengths or indices outside
// m, and ErrNotAnEdge when a pair is not a stored entry.
// Complexity: O(k·log d) for k pairs and d entries per row.
func Cost(m *sparse.CSR, r Result) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if len(r.RowIdx) != len(r.ColIdx) {
		return 0, fmt.Errorf("Cost: %d rows, %d cols: %w", len(r.RowIdx), len(r.ColIdx), ErrBadResult)
	}
	nr, nc := m.Dims()
	total := 0.0
	for k, i := range r.RowIdx {
		j := r.ColIdx[k]
		if i < 0 || i >= nr || j < 0 || j >= nc {
			return 0, fmt.Errorf("Cost: pair (%d,%d): %w", i, j, ErrBadResult)
		}
		w, ok := m.Lookup(i, j)
		if !ok {
			return 0, fmt.Errorf("Cost: pair (%d,%d): %w", i, j, ErrNotAnEdge)
		}
		total += w
	}

	return total, nil
}
