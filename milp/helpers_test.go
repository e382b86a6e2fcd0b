package milp_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmilp/matrix"
	"github.com/katalvlaran/lvmilp/milp"
	"github.com/katalvlaran/lvmilp/tableau"
)

var inf = math.Inf(1)

func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func mustNew(t testing.TB, p tableau.Problem) *tableau.Tableau {
	t.Helper()
	tb, err := tableau.New(p)
	require.NoError(t, err)

	return tb
}

// fleet is the brit/yank capacity model with an adjustable person row.
func fleet(t testing.TB, person float64) *tableau.Tableau {
	t.Helper()

	return mustNew(t, tableau.Problem{
		Sense:     tableau.Maximize,
		Objective: []float64{20000, 30000},
		Constraints: mustDense(t, [][]float64{
			{1, 1},
			{8, 16},
			{5000, 9000},
		}),
		RowUpper: []float64{44, person, 300000},
		Integer:  []bool{true, true},
	})
}

// recorder is an Observer that keeps every event.
type recorder struct {
	mu      sync.Mutex
	nodes   []milp.NodeEvent
	summary []milp.Summary
}

func (r *recorder) ObserveNode(ev milp.NodeEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes = append(r.nodes, ev)
}

func (r *recorder) ObserveSolve(s milp.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summary = append(r.summary, s)
}

func (r *recorder) count(o milp.Outcome) int {
	n := 0
	for _, ev := range r.nodes {
		if ev.Outcome == o {
			n++
		}
	}

	return n
}
