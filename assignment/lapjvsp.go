// SPDX-License-Identifier: MIT

package assignment

import (
	"context"
	"log/slog"
	"math"
)

// lapjvsp solves the sparse linear assignment problem for an nr×nc CSR cost
// matrix (first = row pointers, kk = column indices, cc = costs) with nr <= nc.
// It returns x, the column assigned to each row.
//
// This is the shortest augmenting path method of Jonker & Volgenant
// ("A Shortest Augmenting Path Algorithm for Dense and Sparse Linear
// Assignment Problems", Computing 38:325-340, 1987), in the LAPJVsp variant
// distributed by A. Volgenant and later carried by scipy.
//
// Implementation:
//   - Stage 1 (square only): column reduction, reduction transfer and two
//     rounds of augmenting row reduction. They leave l0 rows free.
//   - Stage 2: for every remaining free row, grow a Dijkstra-like shortest
//     path tree on reduced costs until an unassigned column is reached, then
//     update the column duals and flip the assignments along the path.
//
// Returns ErrInfeasible when some row cannot be assigned; the ctx error when
// cancelled between augmentations.
//
// Complexity: O(nr·(nc + E)) worst case, typically far less on sparse inputs.
func lapjvsp(ctx context.Context, log *slog.Logger, first, kk []int, cc []float64, nr, nc int) ([]int, error) {
	inf := math.Inf(1)

	v := make([]float64, nc)
	x := make([]int, nr)
	y := make([]int, nc)
	for i := range x {
		x[i] = -1
	}
	for j := range y {
		y[j] = -1
	}
	free := make([]int, nr)
	for i := range free {
		free[i] = -1
	}

	var l0 int
	if nr == nc {
		var ok bool
		l0, ok = initSquare(first, kk, cc, nr, nc, v, x, y, free)
		if !ok {
			return nil, ErrInfeasible
		}
		log.Debug("lapjvsp: initialization done", "rows", nr, "free", l0)
	} else {
		l0 = nr
		for i := range free {
			free[i] = i
		}
	}

	s := &augmenter{
		first: first, kk: kk, cc: cc, nc: nc,
		v: v, x: x, y: y,
		d:    make([]float64, nc),
		ok:   make([]bool, nc),
		lab:  make([]int, nc),
		todo: make([]int, nc),
		inf:  inf,
	}
	var l int
	for l = 0; l < l0; l++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !s.augment(free[l]) {
			return nil, ErrInfeasible
		}
		log.Debug("lapjvsp: augmented", "row", free[l], "step", l+1, "of", l0)
	}

	return x, nil
}

// initSquare runs the square-only initialization phases, filling v, x, y and
// the free row list. It returns the number of free rows left and false when
// some column has no entry at all.
func initSquare(first, kk []int, cc []float64, nr, nc int, v []float64, x, y, free []int) (int, bool) {
	inf := math.Inf(1)
	xinv := make([]bool, nr)

	var z, t, jp, i int

	// Column reduction: v[j] = min over the column, y[j] = its argmin row.
	for z = 0; z < nc; z++ {
		v[z] = inf
	}
	for z = 0; z < nr; z++ {
		for t = first[z]; t < first[z+1]; t++ {
			jp = kk[t]
			if cc[t] < v[jp] {
				v[jp] = cc[t]
				y[jp] = z
			}
		}
	}
	// Scan columns backwards; a row that wins several columns keeps the lowest one.
	for z = nc - 1; z >= 0; z-- {
		i = y[z]
		if i == -1 {
			return 0, false
		}
		if x[i] == -1 {
			x[i] = z
		} else {
			y[z] = -1
			xinv[i] = true
		}
	}

	// Reduction transfer.
	var j1, tp int
	var minDiff float64
	lp := 0
	for z = 0; z < nr; z++ {
		if xinv[z] {
			continue
		}
		if x[z] != -1 {
			minDiff = inf
			j1 = x[z]
			for t = first[z]; t < first[z+1]; t++ {
				jp = kk[t]
				if jp != j1 && cc[t]-v[jp] < minDiff {
					minDiff = cc[t] - v[jp]
				}
			}
			tp = first[z]
			for kk[tp] != j1 {
				tp++
			}
			v[j1] = cc[tp] - minDiff
		} else {
			free[lp] = z
			lp++
		}
	}

	// Augmenting row reduction, twice.
	var h, l0p, j0p, j1p, i0, pass int
	var v0, vj, dj float64
	for pass = 0; pass < 2; pass++ {
		h = 0
		l0p = lp
		lp = 0
		for h < l0p {
			i = free[h]
			h++
			j0p, j1p = -1, -1
			v0, vj = inf, inf
			for t = first[i]; t < first[i+1]; t++ {
				jp = kk[t]
				dj = cc[t] - v[jp]
				if dj < vj {
					if dj >= v0 {
						vj = dj
						j1p = jp
					} else {
						vj = v0
						v0 = dj
						j1p = j0p
						j0p = jp
					}
				}
			}
			if j0p < 0 {
				return 0, false
			}
			i0 = y[j0p]
			if v0 < vj {
				v[j0p] += v0 - vj
			} else if i0 != -1 {
				// tie: take the second best column instead
				j0p = j1p
				i0 = y[j0p]
			}
			x[i] = j0p
			y[j0p] = i
			if i0 != -1 {
				if v0 < vj {
					h--
					free[h] = i0
				} else {
					free[lp] = i0
					lp++
				}
			}
		}
	}

	return lp, true
}

// augmenter holds the shortest path workspace shared by all augmentations.
type augmenter struct {
	first, kk []int
	cc        []float64
	nc        int

	v    []float64 // column duals
	x, y []int     // row→col and col→row assignment
	d    []float64 // tentative reduced path lengths per column
	ok   []bool    // column finalized in the current tree
	lab  []int     // predecessor row per column
	todo []int     // [0..td1] ready columns; [td2+1..nc) scanned columns
	inf  float64
}

// augment grows a shortest path from free row i0 and flips the assignment
// along it. It returns false when no unassigned column is reachable.
func (s *augmenter) augment(i0 int) bool {
	first, kk, cc := s.first, s.kk, s.cc
	d, ok, lab, todo, v, y := s.d, s.ok, s.lab, s.todo, s.v, s.y
	inf := s.inf

	var jp int
	for jp = 0; jp < s.nc; jp++ {
		d[jp] = inf
		ok[jp] = false
	}

	minDiff := inf
	td1 := -1
	var t, j int
	var dj float64
	for t = first[i0]; t < first[i0+1]; t++ {
		j = kk[t]
		dj = cc[t] - v[j]
		d[j] = dj
		lab[j] = i0
		if dj <= minDiff {
			if dj < minDiff {
				td1 = -1
				minDiff = dj
			}
			td1++
			todo[td1] = j
		}
	}
	var hp int
	for hp = 0; hp <= td1; hp++ {
		j = todo[hp]
		if y[j] == -1 {
			s.flip(j, i0)
			return true
		}
		ok[j] = true
	}

	td2 := s.nc - 1
	last := s.nc
	var j0, i, tp int
	var h, vj float64
	for {
		if td1 < 0 {
			return false
		}
		j0 = todo[td1]
		td1--
		i = y[j0]
		todo[td2] = j0
		td2--

		tp = first[i]
		for kk[tp] != j0 {
			tp++
		}
		h = cc[tp] - v[j0] - minDiff

		for t = first[i]; t < first[i+1]; t++ {
			j = kk[t]
			if ok[j] {
				continue
			}
			vj = cc[t] - v[j] - h
			if vj < d[j] {
				d[j] = vj
				lab[j] = i
				if vj == minDiff {
					if y[j] == -1 {
						s.updateDual(last, minDiff)
						s.flip(j, i0)
						return true
					}
					td1++
					todo[td1] = j
					ok[j] = true
				}
			}
		}

		if td1 != -1 {
			continue
		}
		// Ready list exhausted: collect the next minimum distance level.
		minDiff = inf
		last = td2 + 1
		for jp = 0; jp < s.nc; jp++ {
			if d[jp] != inf && d[jp] <= minDiff && !ok[jp] {
				if d[jp] < minDiff {
					td1 = -1
					minDiff = d[jp]
				}
				td1++
				todo[td1] = jp
			}
		}
		for hp = 0; hp <= td1; hp++ {
			j = todo[hp]
			if y[j] == -1 {
				s.updateDual(last, minDiff)
				s.flip(j, i0)
				return true
			}
			ok[j] = true
		}
	}
}

// updateDual lowers the duals of every column scanned before the last level.
func (s *augmenter) updateDual(last int, minDiff float64) {
	var k, j0 int
	for k = last; k < s.nc; k++ {
		j0 = s.todo[k]
		s.v[j0] += s.d[j0] - minDiff
	}
}

// flip walks predecessor labels back from column j to row i0, shifting each
// row on the path onto its new column.
func (s *augmenter) flip(j, i0 int) {
	var i, k int
	for {
		i = s.lab[j]
		s.y[j] = i
		k = j
		j = s.x[i]
		s.x[i] = k
		if i == i0 {
			return
		}
	}
}
