package tableau

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmilp/matrix"
)

// Tableau is the dense working state of one LP relaxation.
//
// Layout of the (m+1)×(n+m+1) matrix:
//
//	columns 0..n-1     structural variables
//	columns n..n+m-1   logical variables, one per row: r_i = a_i·x
//	column  n+m        right-hand side: current value of the row's basic variable
//	row     m          objective row: reduced costs of the minimization-normalized costs
//
// Every constraint row is kept in the homogeneous form B⁻¹·[-A | I]·x = 0, so a
// basic value is always -Σ T[i][j]·x_j over the nonbasic columns j. Nonbasic
// variables sit on one of their bounds (free ones at any value, 0 by default).
//
// A Tableau is a single mutable resource; it is not safe for concurrent use.
// Use Clone to give each goroutine a private copy.
type Tableau struct {
	n    int // structural variables
	m    int // constraint rows
	cols int // n + m, excluding the rhs column
	rhs  int // index of the rhs column (== cols)

	mat      *mat.Dense
	coef     *matrix.Dense // m×n private copy of the constraint rows, nil when m == 0
	basis    []int         // len m: column basic in row i
	position []int // len cols: row of a basic column, -1 when nonbasic

	lower  []float64 // len cols
	upper  []float64 // len cols
	values []float64 // len cols
	cost   []float64 // len cols, minimization-normalized; logicals are 0

	integer []bool // len n
	sense   Sense

	precision float64
	maxPivots int

	solved     bool
	feasible   bool
	bounded    bool
	evaluation float64 // minimization-normalized
	pivots     int     // cumulative simplex iterations over all solves

	backup *snapshot
}

// New validates p and builds its initial tableau with the logical variables
// as the starting basis.
//
// Stage 1 (Validate): options, objective, matrix shape, vector lengths, NaNs.
// Stage 2 (Prepare): fold binary flags into integer flags and [0,1] bounds.
// Stage 3 (Execute): fill the matrix, basis, bounds and initial values.
//
// Errors: ErrBadPrecision, ErrEmptyProblem, ErrDimensionMismatch, ErrNaN,
// ErrInfiniteCost, or a matrix sentinel (matrix.ErrNaNInf, ...) wrapped with
// context.
//
// Complexity: O(m·n) time, O((m+1)·(n+m+1)) memory.
func New(p Problem, opts ...Option) (*Tableau, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if !(cfg.precision > 0) || math.IsInf(cfg.precision, 0) {
		return nil, ErrBadPrecision
	}

	n := len(p.Objective)
	if n == 0 {
		return nil, ErrEmptyProblem
	}
	var j int
	for j = 0; j < n; j++ {
		if math.IsNaN(p.Objective[j]) {
			return nil, fmt.Errorf("objective[%d]: %w", j, ErrNaN)
		}
		if math.IsInf(p.Objective[j], 0) {
			return nil, fmt.Errorf("objective[%d]: %w", j, ErrInfiniteCost)
		}
	}

	m := 0
	if p.Constraints != nil {
		if err := matrix.ValidateFinite(p.Constraints); err != nil {
			return nil, fmt.Errorf("tableau: constraints: %w", err)
		}
		if p.Constraints.Cols() != n {
			return nil, fmt.Errorf("constraints have %d columns, objective %d: %w",
				p.Constraints.Cols(), n, ErrDimensionMismatch)
		}
		m = p.Constraints.Rows()
	}
	coef, err := copyConstraints(p.Constraints, m, n)
	if err != nil {
		return nil, err
	}

	rowLower, err := boundsOrDefault("RowLower", p.RowLower, m, math.Inf(-1))
	if err != nil {
		return nil, err
	}
	rowUpper, err := boundsOrDefault("RowUpper", p.RowUpper, m, math.Inf(1))
	if err != nil {
		return nil, err
	}
	lower, err := boundsOrDefault("Lower", p.Lower, n, 0)
	if err != nil {
		return nil, err
	}
	upper, err := boundsOrDefault("Upper", p.Upper, n, math.Inf(1))
	if err != nil {
		return nil, err
	}
	integer, err := flagsOrDefault("Integer", p.Integer, n)
	if err != nil {
		return nil, err
	}
	binary, err := flagsOrDefault("Binary", p.Binary, n)
	if err != nil {
		return nil, err
	}
	for j = 0; j < n; j++ {
		if binary[j] {
			integer[j] = true
			lower[j] = math.Max(lower[j], 0)
			upper[j] = math.Min(upper[j], 1)
		}
	}

	cols := n + m
	t := &Tableau{
		n:         n,
		m:         m,
		cols:      cols,
		rhs:       cols,
		mat:       mat.NewDense(m+1, cols+1, nil),
		coef:      coef,
		basis:     make([]int, m),
		position:  make([]int, cols),
		lower:     make([]float64, cols),
		upper:     make([]float64, cols),
		values:    make([]float64, cols),
		cost:      make([]float64, cols),
		integer:   integer,
		sense:     p.Sense,
		precision: cfg.precision,
		maxPivots: cfg.maxPivots,
		bounded:   true,
	}
	if t.maxPivots <= 0 {
		t.maxPivots = 50*(m+1+cols+1) + 1000
	}

	copy(t.lower, lower)
	copy(t.upper, upper)
	copy(t.lower[n:], rowLower)
	copy(t.upper[n:], rowUpper)

	var (
		i   int
		row []float64
	)
	for i = 0; i < m; i++ {
		if row, err = coef.Row(i); err != nil {
			return nil, fmt.Errorf("tableau: constraints: %w", err)
		}
		for j = 0; j < n; j++ {
			if row[j] != 0 {
				t.mat.Set(i, j, -row[j])
			}
		}
		t.mat.Set(i, n+i, 1)
		t.basis[i] = n + i
		t.position[n+i] = i
	}
	for j = 0; j < n; j++ {
		t.position[j] = -1
		t.cost[j] = p.Objective[j]
		if p.Sense == Maximize {
			t.cost[j] = -p.Objective[j]
		}
		t.mat.Set(m, j, t.cost[j])
		t.placeNonbasic(j)
	}
	t.refreshBasicValues()
	t.evaluation = t.objective()

	return t, nil
}

// copyConstraints snapshots the first m rows of a into a private Dense so
// later caller edits cannot drift from the tableau. Returns nil when m == 0.
func copyConstraints(a matrix.Matrix, m, n int) (*matrix.Dense, error) {
	if m == 0 {
		return nil, nil
	}
	d, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, fmt.Errorf("tableau: constraints: %w", err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("tableau: constraints: %w", err)
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("tableau: constraints: %w", err)
			}
		}
	}

	return d, nil
}

// boundsOrDefault returns a private copy of src, or n copies of def when src is nil.
func boundsOrDefault(name string, src []float64, n int, def float64) ([]float64, error) {
	out := make([]float64, n)
	if src == nil {
		for i := range out {
			out[i] = def
		}

		return out, nil
	}
	if err := matrix.ValidateVecLen(src, n); err != nil {
		return nil, fmt.Errorf("%s: %w (%w)", name, ErrDimensionMismatch, err)
	}
	for i, v := range src {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%s[%d]: %w", name, i, ErrNaN)
		}
	}
	copy(out, src)

	return out, nil
}

// flagsOrDefault returns a private copy of src, or n false flags when src is nil.
func flagsOrDefault(name string, src []bool, n int) ([]bool, error) {
	out := make([]bool, n)
	if src == nil {
		return out, nil
	}
	if len(src) != n {
		return nil, fmt.Errorf("%s has %d flags, want %d: %w", name, len(src), n, ErrDimensionMismatch)
	}
	copy(out, src)

	return out, nil
}

// placeNonbasic moves nonbasic column j onto a bound compatible with its
// current (possibly just tightened) bounds. Assumes lower[j] <= upper[j].
func (t *Tableau) placeNonbasic(j int) {
	l, u, x := t.lower[j], t.upper[j], t.values[j]
	lowInf, upInf := math.IsInf(l, -1), math.IsInf(u, 1)
	switch {
	case lowInf && upInf:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			x = 0
		}
	case upInf:
		x = l
	case lowInf:
		x = u
	case x >= u:
		x = u
	case x <= l:
		x = l
	case u-x < x-l:
		x = u
	default:
		x = l
	}
	t.values[j] = x
}

// refreshBasicValues recomputes every basic value from the nonbasic ones and
// mirrors it into the rhs column.
// Complexity: O(m·(n+m)).
func (t *Tableau) refreshBasicValues() {
	var (
		i, j int
		s    float64
		row  []float64
	)
	for i = 0; i < t.m; i++ {
		row = t.mat.RawRowView(i)
		s = 0
		for j = 0; j < t.cols; j++ {
			if t.position[j] < 0 && row[j] != 0 && t.values[j] != 0 {
				s -= row[j] * t.values[j]
			}
		}
		t.values[t.basis[i]] = s
		row[t.rhs] = s
	}
}

// syncRHS copies the basic values into the rhs column.
func (t *Tableau) syncRHS() {
	for i := 0; i < t.m; i++ {
		t.mat.Set(i, t.rhs, t.values[t.basis[i]])
	}
}

// objective is Σ cost_j·x_j over the structural columns (minimization-normalized).
func (t *Tableau) objective() float64 {
	var s float64
	for j := 0; j < t.n; j++ {
		if t.cost[j] != 0 {
			s += t.cost[j] * t.values[j]
		}
	}

	return s
}

// NumVariables returns the number of structural variables n.
func (t *Tableau) NumVariables() int { return t.n }

// NumConstraints returns the number of constraint rows m.
func (t *Tableau) NumConstraints() int { return t.m }

// Precision returns the tolerance shared by every test on this tableau.
func (t *Tableau) Precision() float64 { return t.precision }

// Sense returns the optimization direction of the model.
func (t *Tableau) Sense() Sense { return t.sense }

// Feasible reports whether the last Solve found a feasible point.
func (t *Tableau) Feasible() bool { return t.solved && t.feasible }

// Bounded reports whether the last Solve ended with a finite optimum.
// It is true before the first Solve and after an infeasible verdict.
func (t *Tableau) Bounded() bool { return t.bounded }

// Pivots returns the cumulative number of simplex iterations (pivots and
// bound flips) performed by all Solve calls on this tableau.
func (t *Tableau) Pivots() int { return t.pivots }

// InternalEvaluation returns the last objective value in the canonical
// minimization direction: +Inf when infeasible, -Inf when unbounded.
func (t *Tableau) InternalEvaluation() float64 { return t.evaluation }

// Evaluation returns the last objective value in the model's own sense.
func (t *Tableau) Evaluation() float64 {
	if t.sense == Maximize {
		return -t.evaluation
	}

	return t.evaluation
}

// IsInteger reports whether structural variable j carries an integrality flag.
func (t *Tableau) IsInteger(j int) bool {
	return j >= 0 && j < t.n && t.integer[j]
}

// Value returns the current value of structural variable j.
func (t *Tableau) Value(j int) (float64, error) {
	if j < 0 || j >= t.n {
		return 0, fmt.Errorf("Value(%d): %w", j, ErrVariableIndex)
	}

	return t.values[j], nil
}

// Values returns a copy of the structural variable values, indexed 0..n-1.
func (t *Tableau) Values() []float64 {
	out := make([]float64, t.n)
	copy(out, t.values[:t.n])

	return out
}

// Bounds returns the current (possibly cut) bounds of structural variable j.
func (t *Tableau) Bounds(j int) (lower, upper float64, err error) {
	if j < 0 || j >= t.n {
		return 0, 0, fmt.Errorf("Bounds(%d): %w", j, ErrVariableIndex)
	}

	return t.lower[j], t.upper[j], nil
}

// Basis returns a copy of the row → basic column assignment.
func (t *Tableau) Basis() []int {
	out := make([]int, t.m)
	copy(out, t.basis)

	return out
}

// At exposes a read-only view of one matrix cell (row m is the objective row,
// column NumVariables()+NumConstraints() is the rhs).
func (t *Tableau) At(i, j int) float64 { return t.mat.At(i, j) }

// Clone returns an independent deep copy. The saved snapshot and the
// constraint copy are shared, which is safe because both are only read.
func (t *Tableau) Clone() *Tableau {
	c := *t
	c.mat = mat.DenseCopyOf(t.mat)
	c.basis = append([]int(nil), t.basis...)
	c.position = append([]int(nil), t.position...)
	c.lower = append([]float64(nil), t.lower...)
	c.upper = append([]float64(nil), t.upper...)
	c.values = append([]float64(nil), t.values...)
	c.cost = append([]float64(nil), t.cost...)
	c.integer = append([]bool(nil), t.integer...)

	return &c
}

// Activities returns the row activities a_i·x at the current structural values.
func (t *Tableau) Activities() ([]float64, error) {
	if t.coef == nil {
		return []float64{}, nil
	}

	return matrix.MatVec(t.coef, t.values[:t.n])
}

// CheckInvariants verifies that every basic row carries a unit pivot whose
// rhs equals the basic value, that each logical equals its row activity a_i·x,
// and that all values respect their bounds to within precision. Meaningful
// after a feasible Solve, before UpdateVariableValues.
func (t *Tableau) CheckInvariants() error {
	var (
		i, j, b int
		piv, x  float64
	)
	for i = 0; i < t.m; i++ {
		b = t.basis[i]
		piv = t.mat.At(i, b)
		if math.Abs(piv-1) > t.precision {
			return fmt.Errorf("row %d: pivot %g on column %d: %w", i, piv, b, ErrInvariant)
		}
		if x = t.mat.At(i, t.rhs) / piv; math.Abs(x-t.values[b]) > t.tol(x) {
			return fmt.Errorf("row %d: rhs %g != value %g: %w", i, x, t.values[b], ErrInvariant)
		}
	}
	if !t.Feasible() {
		return nil
	}
	act, err := t.Activities()
	if err != nil {
		return err
	}
	for i, x = range act {
		if r := t.values[t.n+i]; math.Abs(x-r) > t.tol(t.rowScale(i)) {
			return fmt.Errorf("row %d: activity %g != logical %g: %w", i, x, r, ErrInvariant)
		}
	}
	for j = 0; j < t.cols; j++ {
		x = t.values[j]
		if x < t.lower[j]-t.precision || x > t.upper[j]+t.precision {
			return fmt.Errorf("column %d: value %g outside [%g, %g]: %w",
				j, x, t.lower[j], t.upper[j], ErrInvariant)
		}
	}

	return nil
}

// rowScale is Σ|a_ij·x_j| for row i, the magnitude its activity is summed at.
func (t *Tableau) rowScale(i int) float64 {
	var s float64
	for j := 0; j < t.n; j++ {
		if v, _ := t.coef.At(i, j); v != 0 {
			s += math.Abs(v * t.values[j])
		}
	}

	return s
}

// tol scales precision by the magnitude of a reference value. Used for
// round-off comparisons only; bounds are checked against precision itself.
func (t *Tableau) tol(ref float64) float64 {
	if math.IsInf(ref, 0) {
		return 0
	}

	return t.precision * math.Max(1, math.Abs(ref))
}
