// SPDX-License-Identifier: MIT

package assignment

import (
	"fmt"
	"math"

	"github.com/katalvlaran/asap/order"
	"github.com/katalvlaran/asap/sparse"
)

// MinWeightFullBipartiteMatching returns the full matching of minimum total
// weight of the bipartite graph with biadjacency matrix m (maximum weight when
// opts.Maximize is set). Every row is matched when rows <= cols, every column
// otherwise. Result.RowIdx is ascending in both cases.
//
// Steps:
//  1. Normalize options; reject nil matrices and non-finite weights.
//  2. If either side is empty return an empty Result.
//  3. Transpose when rows > cols so the solver sees nr <= nc.
//  4. Prove feasibility with Hopcroft–Karp (ErrInfeasible otherwise).
//  5. Run LAPJVsp; for the transposed case argsort the matched rows so the
//     result comes back in row order.
//
// Errors: ErrNilMatrix, ErrNaNInf, ErrInfeasible, or opts.Ctx.Err().
func MinWeightFullBipartiteMatching(m *sparse.CSR, opts Options) (Result, error) {
	opts.normalize()
	if m == nil {
		return Result{}, ErrNilMatrix
	}
	if err := opts.Ctx.Err(); err != nil {
		return Result{}, err
	}

	val, _, _ := m.Raw()
	for k, w := range val {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return Result{}, fmt.Errorf("MinWeightFullBipartiteMatching: entry %d: %w", k, ErrNaNInf)
		}
	}

	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return Result{RowIdx: []int{}, ColIdx: []int{}}, nil
	}

	transposed := rows > cols
	work := m
	if transposed {
		work = m.Transpose()
	}
	nr, nc := work.Dims()
	cc, kk, first := work.Raw()
	if opts.Maximize {
		cc = negate(cc)
	}

	if _, size := hopcroftKarp(first, kk, nr, nc); size != nr {
		opts.Logger.Debug("assignment: infeasible", "rows", rows, "cols", cols, "matched", size, "need", nr)
		return Result{}, ErrInfeasible
	}

	opts.Logger.Debug("assignment: solving",
		"rows", rows, "cols", cols, "nnz", m.NNZ(),
		"transposed", transposed, "maximize", opts.Maximize)
	x, err := lapjvsp(opts.Ctx, opts.Logger, first, kk, cc, nr, nc)
	if err != nil {
		return Result{}, err
	}

	a := make([]int, nr)
	for i := range a {
		a[i] = i
	}
	if !transposed {
		return Result{RowIdx: a, ColIdx: x}, nil
	}

	// x maps each original column to its original row; sort pairs by row.
	idx := order.Argsort(x)
	if err = order.Reorder(idx, x); err != nil {
		return Result{}, err
	}
	if err = order.Reorder(idx, a); err != nil {
		return Result{}, err
	}

	return Result{RowIdx: x, ColIdx: a}, nil
}

func negate(cc []float64) []float64 {
	out := make([]float64, len(cc))
	for k, w := range cc {
		out[k] = -w
	}

	return out
}
