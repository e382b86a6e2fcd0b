package tableau_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmilp/matrix"
	"github.com/katalvlaran/lvmilp/tableau"
)

var inf = math.Inf(1)

func nan() float64 { return math.NaN() }

// mustDense builds a matrix.Dense or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// britYank is the fleet model: maximize 20000·brit + 30000·yank subject to
// brit + yank ≤ 44, 8·brit + 16·yank ≤ person, 5000·brit + 9000·yank ≤ 300000.
func britYank(t testing.TB, person float64, integer bool) tableau.Problem {
	t.Helper()
	p := tableau.Problem{
		Sense:     tableau.Maximize,
		Objective: []float64{20000, 30000},
		Constraints: mustDense(t, [][]float64{
			{1, 1},
			{8, 16},
			{5000, 9000},
		}),
		RowUpper: []float64{44, person, 300000},
	}
	if integer {
		p.Integer = []bool{true, true}
	}

	return p
}

// mustNew builds and returns a tableau or fails the test.
func mustNew(t testing.TB, p tableau.Problem, opts ...tableau.Option) *tableau.Tableau {
	t.Helper()
	tb, err := tableau.New(p, opts...)
	require.NoError(t, err)

	return tb
}

// grid copies every cell of the tableau matrix.
func grid(tb *tableau.Tableau) [][]float64 {
	rows := tb.NumConstraints() + 1
	cols := tb.NumVariables() + tb.NumConstraints() + 1
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = tb.At(i, j)
		}
	}

	return out
}
