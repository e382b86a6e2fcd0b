// Package tableau implements a dense bounded-variable simplex tableau: the
// LP engine under the branch-and-cut search of package milp.
//
// A model is handed over as a Problem (objective, a matrix.Matrix of
// constraint coefficients, row and variable bounds, integer and binary flags)
// and validated by New. Every constraint row gets a logical variable equal to
// its activity, bounded by the row bounds, so "≤", "≥", ranged and equality
// rows share one representation and the logical columns form the initial basis.
//
// Lifecycle used by the search:
//
//	t, _ := tableau.New(p)
//	_ = t.Solve()           // root relaxation
//	_ = t.Save()            // restore point
//	_ = t.Restore()         // per branch...
//	_ = t.AddCutConstraints(cuts)
//	_ = t.Solve()           // ...warm-started from the root basis
//
// Algorithm:
//   - Phase 1 minimizes the total bound violation of the basic variables.
//   - Phase 2 minimizes the cost row; maximization is stored negated.
//   - Largest reduced cost enters; after a run of degenerate steps the
//     entering rule falls back to Bland's lowest index.
//   - The ratio test includes the entering variable's own bound (bound flip).
//
// Numerics: one precision (WithPrecision, default 1e-9) drives every zero,
// feasibility and integrality test. Infeasible and unbounded outcomes are
// reported through Feasible and Bounded, never as errors.
//
// A Tableau is not safe for concurrent use; Clone gives each goroutine its own.
package tableau
