package tableau

import "github.com/katalvlaran/lvmilp/matrix"

// Sense is the optimization direction of a Problem.
type Sense int

const (
	// Minimize the objective (the internal, canonical direction).
	Minimize Sense = iota

	// Maximize the objective. Stored internally as minimization of the
	// negated cost row; user-facing evaluations are flipped back.
	Maximize
)

// String implements fmt.Stringer.
func (s Sense) String() string {
	switch s {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return "unknown"
	}
}

// Problem is a validated linear model ready to be turned into a Tableau.
//
// Fields:
//   - Sense      : Minimize or Maximize.
//   - Objective  : one cost coefficient per structural variable (len n ≥ 1).
//   - Constraints: m×n coefficient matrix; nil means no constraint rows.
//   - RowLower   : per-row lower bound on a_i·x (nil ⇒ all -Inf).
//   - RowUpper   : per-row upper bound on a_i·x (nil ⇒ all +Inf).
//     An equality row uses RowLower[i] == RowUpper[i].
//   - Lower      : per-variable lower bound (nil ⇒ all 0).
//   - Upper      : per-variable upper bound (nil ⇒ all +Inf).
//   - Integer    : integrality flags (nil ⇒ all continuous).
//   - Binary     : binary flags; a binary variable is integer with bounds
//     intersected with [0,1].
//
// Bounds may be ±Inf. Crossed bounds (lower > upper) are not rejected here:
// they are model data and the next Solve reports the tableau infeasible.
type Problem struct {
	Sense       Sense
	Objective   []float64
	Constraints matrix.Matrix
	RowLower    []float64
	RowUpper    []float64
	Lower       []float64
	Upper       []float64
	Integer     []bool
	Binary      []bool
}

// CutKind tells which bound of a variable a Cut tightens.
type CutKind int

const (
	// CutMin raises the lower bound: x[Index] ≥ Value.
	CutMin CutKind = iota

	// CutMax lowers the upper bound: x[Index] ≤ Value.
	CutMax
)

// String implements fmt.Stringer.
func (k CutKind) String() string {
	switch k {
	case CutMin:
		return "min"
	case CutMax:
		return "max"
	default:
		return "unknown"
	}
}

// Cut is a temporary bound tightening on one structural variable.
// Applying a cut never loosens a bound.
type Cut struct {
	Kind  CutKind
	Index int
	Value float64
}

// Fractional names an integer variable whose current value is not integral.
type Fractional struct {
	Index int
	Value float64
}
