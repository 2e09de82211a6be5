// SPDX-License-Identifier: MIT

package assignment

import (
	"math"

	"github.com/katalvlaran/asap/sparse"
)

// MaximumBipartiteMatching computes a maximum cardinality matching of the
// bipartite graph whose biadjacency matrix is m, ignoring weights: every
// stored entry is an edge. It returns, per row, the matched column or -1,
// and the number of matched pairs. A nil matrix yields (nil, 0).
//
// Implementation (Hopcroft–Karp):
//   - Stage 1: BFS from all free rows builds layers of alternating paths.
//   - Stage 2: DFS along the layers finds a maximal set of vertex-disjoint
//     shortest augmenting paths and flips them.
//   - Repeat until BFS finds no augmenting path.
//
// Complexity: O(E·√V) time, O(V) memory.
func MaximumBipartiteMatching(m *sparse.CSR) ([]int, int) {
	if m == nil {
		return nil, 0
	}
	nr, nc := m.Dims()
	_, kk, first := m.Raw()

	return hopcroftKarp(first, kk, nr, nc)
}

func hopcroftKarp(first, kk []int, nr, nc int) ([]int, int) {
	rowMatch := make([]int, nr)
	colMatch := make([]int, nc)
	for i := range rowMatch {
		rowMatch[i] = -1
	}
	for j := range colMatch {
		colMatch[j] = -1
	}
	dist := make([]int, nr)
	queue := make([]int, 0, nr)
	unreached := math.MaxInt

	// bfs layers free rows at 0 and reports whether some free column is reachable.
	bfs := func() bool {
		queue = queue[:0]
		for i := range rowMatch {
			if rowMatch[i] == -1 {
				dist[i] = 0
				queue = append(queue, i)
			} else {
				dist[i] = unreached
			}
		}
		found := false
		var q, i, t, r int
		for q = 0; q < len(queue); q++ {
			i = queue[q]
			for t = first[i]; t < first[i+1]; t++ {
				r = colMatch[kk[t]]
				if r == -1 {
					found = true
				} else if dist[r] == unreached {
					dist[r] = dist[i] + 1
					queue = append(queue, r)
				}
			}
		}
		return found
	}

	var dfs func(i int) bool
	dfs = func(i int) bool {
		var t, j, r int
		for t = first[i]; t < first[i+1]; t++ {
			j = kk[t]
			r = colMatch[j]
			if r == -1 || (dist[r] == dist[i]+1 && dfs(r)) {
				rowMatch[i] = j
				colMatch[j] = i
				return true
			}
		}
		// dead end for this phase
		dist[i] = unreached

		return false
	}

	size := 0
	var i int
	for bfs() {
		for i = 0; i < nr; i++ {
			if rowMatch[i] == -1 && dfs(i) {
				size++
			}
		}
	}

	return rowMatch, size
}
