package assignment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/asap/assignment"
)

func TestCost(t *testing.T) {
	m := csrFromRows(t, [][]float64{{1, 0, 2}, {0, 0, 3}, {4, 5, 6}})

	got, err := assignment.Cost(m, assignment.Result{RowIdx: []int{0, 1, 2}, ColIdx: []int{0, 2, 1}})
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)

	_, err = assignment.Cost(nil, assignment.Result{})
	assert.ErrorIs(t, err, assignment.ErrNilMatrix)

	_, err = assignment.Cost(m, assignment.Result{RowIdx: []int{0}, ColIdx: []int{}})
	assert.ErrorIs(t, err, assignment.ErrBadResult)

	_, err = assignment.Cost(m, assignment.Result{RowIdx: []int{3}, ColIdx: []int{0}})
	assert.ErrorIs(t, err, assignment.ErrBadResult)

	_, err = assignment.Cost(m, assignment.Result{RowIdx: []int{1}, ColIdx: []int{0}})
	assert.ErrorIs(t, err, assignment.ErrNotAnEdge)
}
