// Package lvmilp is an in-memory linear and mixed-integer linear programming
// engine: a dense bounded-variable simplex tableau with a best-bound
// branch-and-cut search on top.
//
// 🚀 What is inside?
//
//	matrix/ : constraint coefficient storage and validators
//	tableau/: the simplex tableau: New, Solve, cuts, Save/Restore, integrality
//	milp/   : SolveRelaxation and SolveMILP (serial or batched-parallel search)
//	metrics/: Prometheus collector for search statistics
//
// ✨ Quick start
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 1}, {8, 16}, {5000, 9000}})
//	t, _ := tableau.New(tableau.Problem{
//		Sense:       tableau.Maximize,
//		Objective:   []float64{20000, 30000},
//		Constraints: a,
//		RowUpper:    []float64{44, 500, 300000},
//		Integer:     []bool{true, true},
//	})
//	sol, _ := milp.SolveMILP(t, milp.DefaultOptions())
//	// sol.Evaluation == 1060000, sol.Values == [26 18]
//
// Infeasible, unbounded and integer-infeasible models are reported through
// Solution.Status; errors are reserved for misuse, malformed models and
// exhausted limits.
package lvmilp
