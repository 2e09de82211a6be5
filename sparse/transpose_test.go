package sparse_test

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/asap/sparse"
)

// TestTranspose_SymmetricKeepsArrays checks the invariant the debug scripts
// assert: a symmetric matrix has the same Val/ColInd/RowPtr as its transpose.
func TestTranspose_SymmetricKeepsArrays(t *testing.T) {
	m := insertAll(t, 3, 3, [][3]float64{{0, 0, 1}, {0, 2, 2}, {1, 1, 3}, {2, 0, 2}, {2, 2, 4}})
	tr := m.Transpose()

	assert.Equal(t, m.RowPtr(), tr.RowPtr())
	assert.Equal(t, m.ColInd(), tr.ColInd())
	assert.Equal(t, m.Val(), tr.Val())
	assert.True(t, sparse.Equal(m, tr))
}

func TestTranspose_Rectangular(t *testing.T) {
	// [[1 2 0]
	//  [0 0 3]]
	m := insertAll(t, 2, 3, [][3]float64{{0, 0, 1}, {0, 1, 2}, {1, 2, 3}})
	tr := m.Transpose()

	r, c := tr.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	if diff := cmp.Diff([]int{0, 1, 2, 3}, tr.RowPtr()); diff != "" {
		t.Errorf("RowPtr mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 0, 1}, tr.ColInd()); diff != "" {
		t.Errorf("ColInd mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, tr.Val()); diff != "" {
		t.Errorf("Val mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, mat.Equal(m.T(), tr), "materialized transpose must equal the implicit view")
}

func TestTranspose_Involution(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	var rep int
	for rep = 0; rep < 20; rep++ {
		rows, cols := 1+rng.IntN(8), 1+rng.IntN(8)
		b, err := sparse.NewBuilder(rows, cols)
		require.NoError(t, err)
		var i, j int
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				if rng.Float64() < 0.4 {
					require.NoError(t, b.Insert(i, j, float64(rng.IntN(20)-10)))
				}
			}
		}
		m := b.Build()
		tr := m.Transpose()

		assert.True(t, sparse.Equal(m, tr.Transpose()), "Transpose twice must round-trip")
		assert.True(t, mat.Equal(m.T(), tr))
		// canonical form survives: NewCSR accepts the transposed arrays
		_, err = sparse.NewCSR(tr.Val(), tr.ColInd(), tr.RowPtr(), cols, rows)
		assert.NoError(t, err)
	}
}

func TestTranspose_Empty(t *testing.T) {
	m, err := sparse.NewCSR(nil, nil, []int{0, 0}, 1, 0)
	require.NoError(t, err)
	tr := m.Transpose()
	r, c := tr.Dims()
	assert.Equal(t, 0, r)
	assert.Equal(t, 1, c)
	assert.Equal(t, []int{0}, tr.RowPtr())
}
