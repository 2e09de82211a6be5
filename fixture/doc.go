// SPDX-License-Identifier: MIT

// Package fixture names the small matrices the debug commands inspect and
// reads or writes them as YAML or TOML files.
//
// A fixture carries either raw CSR arrays (data / indices / indptr, the scipy
// csr_matrix names) or a list of (row, col, value) entries:
//
//	name: scipy-square
//	rows: 3
//	cols: 3
//	data:    [1, 2, 3, 4, 5, 6]
//	indices: [0, 2, 2, 0, 1, 2]
//	indptr:  [0, 2, 3, 6]
//
// or, in TOML:
//
//	name = "tiny"
//	rows = 2
//	cols = 2
//	[[entries]]
//	row = 0
//	col = 1
//	value = 4.5
package fixture
