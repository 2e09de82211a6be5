// SPDX-License-Identifier: MIT

// Package order provides index permutations: a stable argsort and an in-place
// reorder that applies such a permutation to a slice.
//
// The assignment solver uses them to report a transposed solution in
// ascending row order.
package order

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrLengthMismatch indicates that the permutation and the target slice
	// have different lengths.
	ErrLengthMismatch = errors.New("order: permutation length mismatch")

	// ErrNotPermutation indicates an index out of range or repeated.
	ErrNotPermutation = errors.New("order: not a permutation")
)

// Argsort returns the indices that stably sort s in ascending order:
// s[idx[0]] <= s[idx[1]] <= ..., ties keep their original relative order.
// Complexity: O(n log n).
func Argsort[T cmp.Ordered](s []T) []int {
	idx := make([]int, len(s))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(s[a], s[b])
	})

	return idx
}

// Reorder permutes v in place so that v[i] becomes the old v[perm[i]].
// v is left untouched when perm has the wrong length (ErrLengthMismatch) or
// is not a permutation of 0..len(v)-1 (ErrNotPermutation).
//
// Implementation:
//   - Stage 1: validate perm with a seen bitmap.
//   - Stage 2: follow each cycle once, shifting values along it.
//
// Complexity: O(n) time, O(n) extra bits.
func Reorder[T any](perm []int, v []T) error {
	n := len(v)
	if len(perm) != n {
		return fmt.Errorf("Reorder: len(perm)=%d, len(v)=%d: %w", len(perm), n, ErrLengthMismatch)
	}
	done := make([]bool, n)
	for i, p := range perm {
		if p < 0 || p >= n || done[p] {
			return fmt.Errorf("Reorder: perm[%d]=%d: %w", i, p, ErrNotPermutation)
		}
		done[p] = true
	}
	clear(done)

	var start, j, k int
	for start = 0; start < n; start++ {
		if done[start] {
			continue
		}
		tmp := v[start]
		j = start
		for {
			done[j] = true
			k = perm[j]
			if k == start {
				v[j] = tmp
				break
			}
			v[j] = v[k]
			j = k
		}
	}

	return nil
}
