// SPDX-License-Identifier: MIT

// Package assignment solves minimum-weight full bipartite matching (the
// rectangular linear assignment problem) on sparse CSR matrices.
//
// What:
//
//	Rows and columns of a biadjacency matrix are the two vertex sets; every
//	stored entry (i, j, w) is an edge of weight w, explicit zeros included.
//	A full matching pairs every vertex of the smaller side with a distinct
//	vertex of the other side. MinWeightFullBipartiteMatching returns the
//	full matching of least total weight (or greatest, with Maximize).
//
// How:
//
//   - MaximumBipartiteMatching (Hopcroft–Karp) first proves that a full
//     matching exists; otherwise ErrInfeasible.
//   - LAPJVsp (Jonker–Volgenant sparse shortest augmenting paths) then finds
//     the optimum. It needs rows <= cols, so taller matrices are transposed
//     and the answer is mapped back in ascending row order.
//
// Usage:
//
//	res, err := assignment.MinWeightFullBipartiteMatching(m, assignment.DefaultOptions())
//	if err != nil {
//	  // ErrNilMatrix, ErrNaNInf, ErrInfeasible or ctx.Err()
//	}
//	for k := range res.RowIdx {
//	  fmt.Println(res.RowIdx[k], "->", res.ColIdx[k])
//	}
//
// Complexity:
//
//   - Hopcroft–Karp: O(E·√V).
//   - LAPJVsp: O(n·(m + E)) worst case for n = min(rows, cols), m = max.
package assignment
