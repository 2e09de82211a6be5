// SPDX-License-Identifier: MIT

package sparse

// Transpose returns the cols×rows CSR of mᵀ.
//
// Implementation:
//   - Stage 1: count entries per column of m (the rows of mᵀ).
//   - Stage 2: prefix-sum the counts into the new row pointer array.
//   - Stage 3: scatter entries in row order of m, which leaves the column
//     indices of every new row strictly increasing.
//
// Transpose().Transpose() is Equal to m, and a symmetric m yields identical
// arrays.
// Complexity: O(rows + cols + NNZ) time and memory.
func (m *CSR) Transpose() *CSR {
	nnz := len(m.val)
	rowPtr := make([]int, m.cols+1)
	for _, j := range m.colInd {
		rowPtr[j+1]++
	}
	var j int
	for j = 0; j < m.cols; j++ {
		rowPtr[j+1] += rowPtr[j]
	}

	next := make([]int, m.cols)
	copy(next, rowPtr[:m.cols])
	val := make([]float64, nnz)
	colInd := make([]int, nnz)

	var i, t, dst int
	for i = 0; i < m.rows; i++ {
		for t = m.rowPtr[i]; t < m.rowPtr[i+1]; t++ {
			j = m.colInd[t]
			dst = next[j]
			next[j]++
			val[dst] = m.val[t]
			colInd[dst] = i
		}
	}

	return newCSRNoCopy(val, colInd, rowPtr, m.cols, m.rows)
}
