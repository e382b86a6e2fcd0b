package tableau_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/lvmilp/tableau"
)

// TestSolve_AgainstGonum compares optima on seeded random
// max c·x, A·x ≤ b, x ≥ 0 models with positive data (always feasible and
// bounded) against gonum's standard-form simplex.
func TestSolve_AgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 60; trial++ {
		n := 1 + rng.Intn(5)
		m := 1 + rng.Intn(5)

		c := make([]float64, n)
		for j := range c {
			c[j] = float64(1 + rng.Intn(10))
		}
		rows := make([][]float64, m)
		b := make([]float64, m)
		for i := range rows {
			rows[i] = make([]float64, n)
			for j := range rows[i] {
				rows[i][j] = float64(1 + rng.Intn(10))
			}
			b[i] = float64(10 + rng.Intn(91))
		}

		tb := mustNew(t, tableau.Problem{
			Sense:       tableau.Maximize,
			Objective:   c,
			Constraints: mustDense(t, rows),
			RowUpper:    b,
		})
		require.NoError(t, tb.Solve())
		require.True(t, tb.Feasible())
		require.True(t, tb.Bounded())
		require.NoError(t, tb.CheckInvariants())

		// Standard form: min -c·x s.t. [A | I]·[x; s] = b, x, s ≥ 0.
		std := mat.NewDense(m, n+m, nil)
		cs := make([]float64, n+m)
		for j := 0; j < n; j++ {
			cs[j] = -c[j]
		}
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				std.Set(i, j, rows[i][j])
			}
			std.Set(i, n+i, 1)
		}
		want, _, err := lp.Simplex(cs, std, b, 0, nil)
		require.NoError(t, err)

		assert.InDelta(t, -want, tb.Evaluation(), 1e-7*math.Max(1, math.Abs(want)), "trial %d", trial)
	}
}
