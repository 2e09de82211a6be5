// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

var (
	_ mat.Matrix         = (*CSR)(nil)
	_ mat.NonZeroDoer    = (*CSR)(nil)
	_ mat.RowNonZeroDoer = (*CSR)(nil)
)

// CSR is an immutable compressed sparse row matrix.
//   - rows, cols hold the shape.
//   - val, colInd hold the NNZ stored entries in row-major order.
//   - rowPtr has rows+1 offsets; row i spans [rowPtr[i], rowPtr[i+1]).
type CSR struct {
	rows, cols int
	val        []float64
	colInd     []int
	rowPtr     []int
}

// NewCSR validates the raw CSR arrays and returns a matrix owning deep copies
// of them. It mirrors scipy's csr_matrix((data, indices, indptr), shape).
//
// Values are not range checked; callers that need finite values validate at
// the algorithm boundary.
//
// Returns ErrBadShape, ErrPointerArray, ErrLengthMismatch, ErrOutOfRange or
// ErrUnsortedIndices, wrapped with the offending position.
// Complexity: O(rows + NNZ).
func NewCSR(val []float64, colInd, rowPtr []int, rows, cols int) (*CSR, error) {
	if err := validate(val, colInd, rowPtr, rows, cols); err != nil {
		return nil, err
	}

	return &CSR{
		rows:   rows,
		cols:   cols,
		val:    slices.Clone(val),
		colInd: slices.Clone(colInd),
		rowPtr: slices.Clone(rowPtr),
	}, nil
}

// newCSRNoCopy adopts already validated slices.
func newCSRNoCopy(val []float64, colInd, rowPtr []int, rows, cols int) *CSR {
	return &CSR{rows: rows, cols: cols, val: val, colInd: colInd, rowPtr: rowPtr}
}

func validate(val []float64, colInd, rowPtr []int, rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("NewCSR(%d x %d): %w", rows, cols, ErrBadShape)
	}
	if len(rowPtr) != rows+1 {
		return fmt.Errorf("NewCSR: len(rowPtr)=%d, want %d: %w", len(rowPtr), rows+1, ErrPointerArray)
	}
	if rowPtr[0] != 0 {
		return fmt.Errorf("NewCSR: rowPtr[0]=%d: %w", rowPtr[0], ErrPointerArray)
	}
	if len(val) != len(colInd) {
		return fmt.Errorf("NewCSR: len(val)=%d, len(colInd)=%d: %w", len(val), len(colInd), ErrLengthMismatch)
	}
	if rowPtr[rows] != len(val) {
		return fmt.Errorf("NewCSR: rowPtr[%d]=%d, nnz=%d: %w", rows, rowPtr[rows], len(val), ErrLengthMismatch)
	}

	// Every offset must be checked before colInd is indexed through it.
	var i, t int
	for i = 0; i < rows; i++ {
		if rowPtr[i+1] < rowPtr[i] {
			return fmt.Errorf("NewCSR: rowPtr[%d]=%d < rowPtr[%d]=%d: %w", i+1, rowPtr[i+1], i, rowPtr[i], ErrPointerArray)
		}
		if rowPtr[i+1] > len(val) {
			return fmt.Errorf("NewCSR: rowPtr[%d]=%d > nnz=%d: %w", i+1, rowPtr[i+1], len(val), ErrPointerArray)
		}
	}
	for i = 0; i < rows; i++ {
		for t = rowPtr[i]; t < rowPtr[i+1]; t++ {
			if colInd[t] < 0 || colInd[t] >= cols {
				return fmt.Errorf("NewCSR: row %d col %d: %w", i, colInd[t], ErrOutOfRange)
			}
			if t > rowPtr[i] && colInd[t] <= colInd[t-1] {
				return fmt.Errorf("NewCSR: row %d cols %d,%d: %w", i, colInd[t-1], colInd[t], ErrUnsortedIndices)
			}
		}
	}

	return nil
}

// Dims returns the number of rows and columns.
func (m *CSR) Dims() (r, c int) {
	return m.rows, m.cols
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of stored entries, explicit zeros included.
func (m *CSR) NNZ() int { return len(m.val) }

// At returns the value at (i, j), or 0 if the entry is not stored.
// It panics with mat.ErrRowAccess / mat.ErrColAccess on out-of-range indices,
// as required by mat.Matrix.
// Complexity: O(log k), k = entries in row i.
func (m *CSR) At(i, j int) float64 {
	v, _ := m.Lookup(i, j)

	return v
}

// Lookup returns the value at (i, j) and whether it is stored.
// Panics like At on out-of-range indices.
func (m *CSR) Lookup(i, j int) (float64, bool) {
	if i < 0 || i >= m.rows {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= m.cols {
		panic(mat.ErrColAccess)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	k, found := slices.BinarySearch(m.colInd[lo:hi], j)
	if !found {
		return 0, false
	}

	return m.val[lo+k], true
}

// T returns an implicit transpose view. Use Transpose for a materialized CSR.
func (m *CSR) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// DoNonZero calls fn for every stored entry in row-major order.
// Explicitly stored zeros are visited too.
func (m *CSR) DoNonZero(fn func(i, j int, v float64)) {
	var i int
	for i = 0; i < m.rows; i++ {
		m.DoRowNonZero(i, fn)
	}
}

// DoRowNonZero calls fn for every stored entry of row i in column order.
func (m *CSR) DoRowNonZero(i int, fn func(i, j int, v float64)) {
	if i < 0 || i >= m.rows {
		panic(mat.ErrRowAccess)
	}
	var t int
	for t = m.rowPtr[i]; t < m.rowPtr[i+1]; t++ {
		fn(i, m.colInd[t], m.val[t])
	}
}

// Val returns a copy of the stored values.
func (m *CSR) Val() []float64 { return slices.Clone(m.val) }

// ColInd returns a copy of the column index array.
func (m *CSR) ColInd() []int { return slices.Clone(m.colInd) }

// RowPtr returns a copy of the row pointer array.
func (m *CSR) RowPtr() []int { return slices.Clone(m.rowPtr) }

// Raw returns the backing arrays without copying. The slices are shared with
// m and must not be modified.
func (m *CSR) Raw() (val []float64, colInd, rowPtr []int) {
	return m.val, m.colInd, m.rowPtr
}

// Equal reports whether a and b have the same shape and identical Val,
// ColInd and RowPtr arrays. Two nil matrices are equal.
func Equal(a, b *CSR) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.rows == b.rows &&
		a.cols == b.cols &&
		slices.Equal(a.rowPtr, b.rowPtr) &&
		slices.Equal(a.colInd, b.colInd) &&
		slices.Equal(a.val, b.val)
}
