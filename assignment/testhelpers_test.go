package assignment_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/asap/sparse"
)

// csrFromRows builds a CSR from a dense literal, dropping zeros.
func csrFromRows(t *testing.T, rows [][]float64) *sparse.CSR {
	t.Helper()
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}
	m, err := sparse.FromDense(mat.NewDense(r, c, data))
	require.NoError(t, err)

	return m
}

// bruteForce enumerates every full matching of m and returns the minimum
// (maximum when maximize is set) total weight, or ok=false when none exists.
// The smaller side is matched.
func bruteForce(m *sparse.CSR, maximize bool) (best float64, ok bool) {
	work := m
	if m.Rows() > m.Cols() {
		work = m.Transpose()
	}
	nr, nc := work.Dims()
	used := make([]bool, nc)
	best = math.Inf(1)
	if maximize {
		best = math.Inf(-1)
	}

	var rec func(i int, acc float64)
	rec = func(i int, acc float64) {
		if i == nr {
			if (!maximize && acc < best) || (maximize && acc > best) {
				best = acc
			}
			ok = true
			return
		}
		work.DoRowNonZero(i, func(_, j int, v float64) {
			if used[j] {
				return
			}
			used[j] = true
			rec(i+1, acc+v)
			used[j] = false
		})
	}
	rec(0, 0)

	return best, ok
}
