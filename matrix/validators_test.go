// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmilp/matrix"
)

// TestValidateFinite covers nil input, finite data, NaN and ±Inf.
func TestValidateFinite(t *testing.T) {
	t.Parallel()

	build := func(v float64) matrix.Matrix {
		m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, v}})
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"finite", build(4), nil},
		{"NaN", build(math.NaN()), matrix.ErrNaNInf},
		{"+Inf", build(math.Inf(1)), matrix.ErrNaNInf},
		{"-Inf", build(math.Inf(-1)), matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := matrix.ValidateFinite(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateFinite_Coordinates reports where the bad entry sits.
func TestValidateFinite_Coordinates(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, math.NaN()}})
	require.NoError(t, err)

	err = matrix.ValidateFinite(m)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "(1,1)")
}

func TestValidateVecLen(t *testing.T) {
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.NoError(t, matrix.ValidateVecLen(nil, 0))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m))
}
