// SPDX-License-Identifier: MIT

package sparse

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

type triplet struct {
	i, j int
	v    float64
}

// index is the (row, col) key used to reject duplicate insertions.
type index struct {
	row, col int
}

// Builder accumulates entries in any order and emits a canonical CSR.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	r, c int
	data []triplet
	seen map[index]struct{}
}

// NewBuilder returns a Builder for a rows×cols matrix.
// Returns ErrBadShape when rows or cols is negative.
func NewBuilder(rows, cols int) (*Builder, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewBuilder(%d x %d): %w", rows, cols, ErrBadShape)
	}

	return &Builder{r: rows, c: cols, seen: make(map[index]struct{})}, nil
}

// Insert stores v at (i, j). Zero values are stored explicitly.
// Returns ErrOutOfRange, ErrNaNInf or ErrDuplicateEntry.
// Complexity: O(1) amortized.
func (b *Builder) Insert(i, j int, v float64) error {
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		return fmt.Errorf("Builder.Insert(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Builder.Insert(%d,%d): %w", i, j, ErrNaNInf)
	}
	key := index{row: i, col: j}
	if _, dup := b.seen[key]; dup {
		return fmt.Errorf("Builder.Insert(%d,%d): %w", i, j, ErrDuplicateEntry)
	}
	b.seen[key] = struct{}{}
	b.data = append(b.data, triplet{i: i, j: j, v: v})

	return nil
}

// Len returns the number of entries inserted so far.
func (b *Builder) Len() int { return len(b.data) }

// Build returns the CSR holding all inserted entries. The Builder stays
// usable; later inserts do not affect already built matrices.
// Complexity: O(NNZ log NNZ + rows).
func (b *Builder) Build() *CSR {
	sorted := slices.Clone(b.data)
	slices.SortFunc(sorted, func(x, y triplet) int {
		if c := cmp.Compare(x.i, y.i); c != 0 {
			return c
		}
		return cmp.Compare(x.j, y.j)
	})

	val := make([]float64, len(sorted))
	colInd := make([]int, len(sorted))
	rowPtr := make([]int, b.r+1)
	for k, e := range sorted {
		val[k] = e.v
		colInd[k] = e.j
		rowPtr[e.i+1]++
	}
	var i int
	for i = 0; i < b.r; i++ {
		rowPtr[i+1] += rowPtr[i]
	}

	return newCSRNoCopy(val, colInd, rowPtr, b.r, b.c)
}

// FromDense converts any gonum matrix into CSR, storing every entry != 0.
// Returns ErrNilMatrix for a nil source and ErrNaNInf for non-finite values.
// Complexity: O(rows·cols).
func FromDense(a mat.Matrix) (*CSR, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	r, c := a.Dims()
	val := make([]float64, 0, r)
	colInd := make([]int, 0, r)
	rowPtr := make([]int, r+1)

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = a.At(i, j)
			if v == 0 {
				continue
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("FromDense(%d,%d): %w", i, j, ErrNaNInf)
			}
			val = append(val, v)
			colInd = append(colInd, j)
		}
		rowPtr[i+1] = len(val)
	}

	return newCSRNoCopy(val, colInd, rowPtr, r, c), nil
}
