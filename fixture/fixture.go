// SPDX-License-Identifier: MIT

package fixture

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/asap/sparse"
)

var (
	// ErrUnknownFixture indicates that no built-in fixture has the name.
	ErrUnknownFixture = errors.New("fixture: unknown fixture")

	// ErrUnknownFormat indicates an unsupported file format or extension.
	ErrUnknownFormat = errors.New("fixture: unknown format")

	// ErrNoMatrixData indicates a fixture with neither CSR arrays nor entries,
	// or with both.
	ErrNoMatrixData = errors.New("fixture: need exactly one of csr arrays or entries")
)

// Entry is a single stored value.
type Entry struct {
	Row   int     `yaml:"row" toml:"row"`
	Col   int     `yaml:"col" toml:"col"`
	Value float64 `yaml:"value" toml:"value"`
}

// Fixture describes one matrix.
type Fixture struct {
	Name        string    `yaml:"name" toml:"name"`
	Description string    `yaml:"description,omitempty" toml:"description,omitempty"`
	Rows        int       `yaml:"rows" toml:"rows"`
	Cols        int       `yaml:"cols" toml:"cols"`
	Data        []float64 `yaml:"data,omitempty" toml:"data,omitempty"`
	Indices     []int     `yaml:"indices,omitempty" toml:"indices,omitempty"`
	Indptr      []int     `yaml:"indptr,omitempty" toml:"indptr,omitempty"`
	Entries     []Entry   `yaml:"entries,omitempty" toml:"entries,omitempty"`
}

// hasCSR reports whether any raw CSR array is set.
func (f Fixture) hasCSR() bool {
	return f.Data != nil || f.Indices != nil || f.Indptr != nil
}

// Matrix builds the CSR described by f. Raw arrays go through
// sparse.NewCSR, entries through sparse.Builder, so every structural error of
// the sparse package can surface here, wrapped with the fixture name.
func (f Fixture) Matrix() (*sparse.CSR, error) {
	switch {
	case f.hasCSR() && len(f.Entries) == 0:
		m, err := sparse.NewCSR(f.Data, f.Indices, f.Indptr, f.Rows, f.Cols)
		if err != nil {
			return nil, fmt.Errorf("fixture %q: %w", f.Name, err)
		}
		return m, nil
	case !f.hasCSR() && (len(f.Entries) > 0 || f.Rows == 0 || f.Cols == 0):
		b, err := sparse.NewBuilder(f.Rows, f.Cols)
		if err != nil {
			return nil, fmt.Errorf("fixture %q: %w", f.Name, err)
		}
		for _, e := range f.Entries {
			if err = b.Insert(e.Row, e.Col, e.Value); err != nil {
				return nil, fmt.Errorf("fixture %q: %w", f.Name, err)
			}
		}
		return b.Build(), nil
	default:
		return nil, fmt.Errorf("fixture %q: %w", f.Name, ErrNoMatrixData)
	}
}

// FromMatrix captures m as a fixture holding raw CSR arrays.
func FromMatrix(name string, m *sparse.CSR) Fixture {
	r, c := m.Dims()

	return Fixture{
		Name:    name,
		Rows:    r,
		Cols:    c,
		Data:    m.Val(),
		Indices: m.ColInd(),
		Indptr:  m.RowPtr(),
	}
}
