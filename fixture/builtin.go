// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"slices"
)

// DefaultName is the fixture the debug commands use when none is given.
const DefaultName = "scipy-square"

var builtins = []Fixture{
	{
		Name:        "scipy-square",
		Description: "3x3 matrix from the scipy csr_matrix docs; the matching debug case",
		Rows:        3, Cols: 3,
		Data:    []float64{1, 2, 3, 4, 5, 6},
		Indices: []int{0, 2, 2, 0, 1, 2},
		Indptr:  []int{0, 2, 3, 6},
	},
	{
		Name:        "scipy-wide",
		Description: "2x3 wide rectangular matrix",
		Rows:        2, Cols: 3,
		Data:    []float64{1, 2, 3},
		Indices: []int{0, 1, 2},
		Indptr:  []int{0, 2, 3},
	},
	{
		Name:        "scipy-tall",
		Description: "3x2 tall rectangular matrix; matching runs on its transpose",
		Rows:        3, Cols: 2,
		Data:    []float64{1, 2, 3, 4},
		Indices: []int{0, 1, 0, 1},
		Indptr:  []int{0, 2, 3, 4},
	},
	{
		Name:        "wikipedia",
		Description: "4x5 example from the Wikipedia sparse matrix article",
		Rows:        4, Cols: 5,
		Data:    []float64{10, 12, 11, 13, 16, 11, 13},
		Indices: []int{0, 3, 2, 4, 1, 2, 4},
		Indptr:  []int{0, 2, 4, 5, 7},
	},
	{
		Name:        "symmetric",
		Description: "3x3 symmetric matrix; its transpose has identical CSR arrays",
		Rows:        3, Cols: 3,
		Entries: []Entry{
			{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 2, Value: 2},
			{Row: 1, Col: 1, Value: 3},
			{Row: 2, Col: 0, Value: 2}, {Row: 2, Col: 2, Value: 4},
		},
	},
}

// Names lists the built-in fixtures in declaration order.
func Names() []string {
	out := make([]string, len(builtins))
	for i, f := range builtins {
		out[i] = f.Name
	}

	return out
}

// Builtin returns a copy of the named built-in fixture.
func Builtin(name string) (Fixture, error) {
	i := slices.IndexFunc(builtins, func(f Fixture) bool { return f.Name == name })
	if i < 0 {
		return Fixture{}, fmt.Errorf("%q: %w", name, ErrUnknownFixture)
	}
	f := builtins[i]
	f.Data = slices.Clone(f.Data)
	f.Indices = slices.Clone(f.Indices)
	f.Indptr = slices.Clone(f.Indptr)
	f.Entries = slices.Clone(f.Entries)

	return f, nil
}
