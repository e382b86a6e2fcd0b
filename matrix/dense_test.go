package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmilp/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFromRows_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
	assert.Contains(t, err.Error(), "row 1")
}

// TestDense_AtSetRow checks indexing, bounds errors and row copies.
func TestDense_AtSetRow(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	require.NoError(t, m.Set(0, 1, -7))
	v, _ = m.At(0, 1)
	assert.Equal(t, -7.0, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)
	row[0] = 100
	v, _ = m.At(1, 0)
	assert.Equal(t, 4.0, v, "Row returns a copy")
}

func TestDense_CloneIndependent(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
	v, _ = c.At(0, 0)
	assert.Equal(t, 9.0, v)
}

func TestMatVec(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 1}, {8, 16}, {5000, 9000}})
	require.NoError(t, err)

	y, err := matrix.MatVec(m, []float64{24, 20})
	require.NoError(t, err)
	assert.Equal(t, []float64{44, 512, 300000}, y)

	_, err = matrix.MatVec(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
