// SPDX-License-Identifier: MIT

package sparse

import "gonum.org/v1/gonum/mat"

// Dense expands m into a gonum dense matrix, the equivalent of scipy's
// toarray(). Returns ErrEmptyMatrix when either dimension is zero, since
// gonum does not allow zero-length dense matrices.
// Complexity: O(rows·cols).
func (m *CSR) Dense() (*mat.Dense, error) {
	if m.rows == 0 || m.cols == 0 {
		return nil, ErrEmptyMatrix
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	m.DoNonZero(func(i, j int, v float64) {
		d.Set(i, j, v)
	})

	return d, nil
}
