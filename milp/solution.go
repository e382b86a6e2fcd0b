package milp

import (
	"time"

	"github.com/katalvlaran/lvmilp/tableau"
)

// Status is the terminal verdict of a solve.
type Status int

const (
	// StatusOptimal: an optimal point was found (integral for SolveMILP).
	StatusOptimal Status = iota

	// StatusInfeasible: the root relaxation has no feasible point.
	StatusInfeasible

	// StatusUnbounded: the root relaxation is unbounded.
	StatusUnbounded

	// StatusNoIntegerSolution: the relaxation is feasible but the search
	// exhausted the frontier without an integral point.
	StatusNoIntegerSolution

	// StatusInterrupted: cancellation or a limit stopped the search; the
	// Solution carries the best incumbent found so far, if any.
	StatusInterrupted
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusNoIntegerSolution:
		return "no-integer-solution"
	case StatusInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Solution is the immutable result of SolveRelaxation or SolveMILP.
//
// Evaluation is in the model's own sense. Without a feasible point it is the
// worst value for that sense (+Inf when minimizing, -Inf when maximizing);
// for an unbounded model it is the best (-Inf / +Inf).
type Solution struct {
	Status     Status
	Feasible   bool
	Bounded    bool
	Integral   bool
	Evaluation float64
	Values     []float64 // structural variable j → value
	Iterations int       // branches processed; 0 for a relaxation
	Pivots     int       // simplex iterations consumed by this call
	Elapsed    time.Duration

	t *tableau.Tableau
}

// Tableau returns the tableau the solution was read from. It is left solved
// for the reported point; callers must not mutate it while reading Values.
func (s Solution) Tableau() *tableau.Tableau { return s.t }

// Outcome classifies what happened to one frontier branch.
type Outcome int

const (
	OutcomePruned     Outcome = iota // bound could not beat the incumbent, not solved
	OutcomeInfeasible                // relaxation infeasible
	OutcomeUnbounded                 // relaxation unbounded
	OutcomeDominated                 // solved, no better than the incumbent
	OutcomeIncumbent                 // integral and better: new incumbent
	OutcomeBranched                  // fractional: split into two children
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomePruned:
		return "pruned"
	case OutcomeInfeasible:
		return "infeasible"
	case OutcomeUnbounded:
		return "unbounded"
	case OutcomeDominated:
		return "dominated"
	case OutcomeIncumbent:
		return "incumbent"
	case OutcomeBranched:
		return "branched"
	default:
		return "unknown"
	}
}

// NodeEvent describes one processed branch. Estimate and Evaluation are
// minimization-normalized, so Evaluation >= Estimate always holds for a
// solved feasible branch.
type NodeEvent struct {
	Iteration  int
	Depth      int
	Estimate   float64
	Evaluation float64
	Outcome    Outcome
}

// Summary describes a finished SolveMILP call.
type Summary struct {
	Status     Status
	Iterations int
	Pivots     int
	Elapsed    time.Duration
}

// Observer receives search events on the driver goroutine, in a
// deterministic order. Implementations must not block for long.
type Observer interface {
	ObserveNode(NodeEvent)
	ObserveSolve(Summary)
}

type nopObserver struct{}

func (nopObserver) ObserveNode(NodeEvent) {}
func (nopObserver) ObserveSolve(Summary)  {}
