// Package milp is the branch-and-cut driver on top of package tableau.
//
// 🚀 What it does
//
//	SolveRelaxation  one simplex solve, integrality ignored
//	SolveMILP        best-bound branch-and-cut over integer/binary variables
//
// 🔍 Search
//   - The root relaxation is solved once and saved as the restore point.
//   - Each branch is a cut set (variable bound tightenings). Evaluating a
//     branch restores the root, applies its cuts and re-solves warm.
//   - The frontier is a heap on the parent's relaxed bound; a branch is
//     dropped once that bound cannot beat the incumbent (minus Options.Gap).
//   - A fractional solution splits on the variable picked by
//     Options.Branching into x ≤ floor(v) and x ≥ ceil(v).
//
// ⚙️ Options
//   - Workers > 1 evaluates batches of branches concurrently on private
//     tableau clones; merging is sequential, so results are deterministic.
//   - Ctx, NodeLimit and TimeLimit stop the search with StatusInterrupted,
//     still reporting the best incumbent.
//   - Logger receives one Debug record per node and one Info record per
//     solve; Observer receives the same events as values.
//
// Internally every bound and evaluation is minimization-normalized;
// Solution.Evaluation is converted back to the model's sense.
package milp
