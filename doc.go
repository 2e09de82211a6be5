// Package asap is a small sparse linear assignment toolkit: compressed sparse
// row matrices, permutation helpers and a minimum-weight full bipartite
// matching solver built on the sparse Jonker-Volgenant method.
//
// 🚀 What is asap?
//
//	A pure-Go library that brings together:
//		• sparse/     : immutable CSR matrices, a triplet Builder, transpose,
//		                gonum mat.Matrix interop
//		• order/      : stable Argsort and in-place Reorder by permutation
//		• assignment/ : MinWeightFullBipartiteMatching (LAPJVsp),
//		                Hopcroft–Karp maximum matching, Cost
//		• fixture/    : named test matrices, YAML/TOML load and save
//
// ✨ Why asap?
//
//   - Sparse all the way: the solver walks the CSR arrays directly, missing
//     entries are simply absent edges
//   - Rectangular inputs: tall matrices are solved on their transpose and the
//     pairs returned in row order
//   - scipy compatible: same data/indices/indptr layout as csr_matrix, same
//     results as min_weight_full_bipartite_matching
//
// Quick start:
//
//	b, _ := sparse.NewBuilder(3, 3)
//	_ = b.Insert(0, 0, 1)
//	...
//	res, err := assignment.MinWeightFullBipartiteMatching(b.Build(), assignment.DefaultOptions())
//
// The asapdebug command (cmd/asapdebug) prints matrices, checks transposes and
// solves matchings from the command line.
package asap
