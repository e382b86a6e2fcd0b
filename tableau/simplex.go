package tableau

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// blandAfter is the number of consecutive degenerate steps after which the
// entering rule switches from largest reduced cost to Bland's lowest index.
const blandAfter = 50

type phase int

const (
	phaseOne phase = iota + 1 // minimize the sum of bound violations
	phaseTwo                  // minimize the cost row
)

type outcome int

const (
	outcomeOptimal outcome = iota
	outcomeInfeasible
	outcomeUnbounded
)

// Solve runs the bounded-variable two-phase primal simplex from the current
// basis. Nonbasic variables are first moved onto bounds valid under the
// current (possibly cut) bounds, so Solve is the natural follow-up to
// AddCutConstraints.
//
// Infeasible and unbounded verdicts are not errors: read Feasible, Bounded
// and InternalEvaluation (+Inf infeasible, -Inf unbounded) afterwards.
// The only error is ErrPivotLimit.
//
// Complexity: O(k·m·(n+m)) for k simplex iterations.
func (t *Tableau) Solve() error {
	t.solved = true
	t.feasible, t.bounded = false, true
	t.evaluation = math.Inf(1)

	var j int
	for j = 0; j < t.cols; j++ {
		if t.lower[j] > t.upper[j]+t.precision {
			t.mat.Set(t.m, t.rhs, t.evaluation)
			return nil
		}
	}
	for j = 0; j < t.cols; j++ {
		if t.position[j] < 0 {
			t.placeNonbasic(j)
		}
	}
	t.refreshBasicValues()

	s := &simplexRun{t: t, scratch: make([]float64, t.cols)}
	out, err := s.run(phaseOne)
	if err != nil {
		t.mat.Set(t.m, t.rhs, t.evaluation)
		return err
	}
	if out == outcomeOptimal {
		s.degenerate = 0
		if out, err = s.run(phaseTwo); err != nil {
			t.mat.Set(t.m, t.rhs, t.evaluation)
			return err
		}
	}
	t.refreshBasicValues()

	switch out {
	case outcomeInfeasible:
		t.evaluation = math.Inf(1)
	case outcomeUnbounded:
		t.feasible, t.bounded = true, false
		t.evaluation = math.Inf(-1)
	default:
		t.feasible = true
		t.evaluation = t.objective()
	}
	t.mat.Set(t.m, t.rhs, t.evaluation)

	return nil
}

// simplexRun carries the per-Solve iteration state.
type simplexRun struct {
	t          *Tableau
	used       int
	degenerate int
	scratch    []float64 // phase-one reduced costs
}

func (s *simplexRun) run(ph phase) (outcome, error) {
	t := s.t
	var (
		d        []float64
		q, dir   int
		row      int
		theta    float64
		hitUpper bool
		bland    bool
	)
	for {
		if ph == phaseOne {
			if !s.phaseOneCosts() {
				return outcomeOptimal, nil
			}
			d = s.scratch
		} else {
			d = t.mat.RawRowView(t.m)[:t.cols]
		}

		bland = s.degenerate >= blandAfter
		if q, dir = t.entering(d, bland); q < 0 {
			if ph == phaseOne {
				return outcomeInfeasible, nil
			}
			return outcomeOptimal, nil
		}

		theta, row, hitUpper = t.ratio(q, dir, ph, bland)
		if math.IsInf(theta, 1) {
			if ph == phaseOne {
				return outcomeInfeasible, nil
			}
			return outcomeUnbounded, nil
		}

		if s.used >= t.maxPivots {
			return outcomeInfeasible, fmt.Errorf("after %d iterations: %w", s.used, ErrPivotLimit)
		}
		s.used++
		t.pivots++
		if theta <= t.precision {
			s.degenerate++
		} else {
			s.degenerate = 0
		}

		t.step(q, dir, row, hitUpper)
	}
}

// phaseOneCosts fills scratch with the gradient of the total bound violation
// w.r.t. every column and reports whether any basic variable is infeasible.
func (s *simplexRun) phaseOneCosts() bool {
	t := s.t
	for j := range s.scratch {
		s.scratch[j] = 0
	}
	found := false
	for i := 0; i < t.m; i++ {
		g := t.violation(i)
		if g == 0 {
			continue
		}
		found = true
		floats.AddScaled(s.scratch, -g, t.mat.RawRowView(i)[:t.cols])
	}

	return found
}

// violation is -1 when the basic variable of row i is below its lower bound,
// +1 when above its upper bound, 0 otherwise. The tolerance is the absolute
// precision, the same one isWhole uses, so a cut at floor(v) always moves v.
func (t *Tableau) violation(i int) float64 {
	b := t.basis[i]
	x := t.values[b]
	switch {
	case x < t.lower[b]-t.precision:
		return -1
	case x > t.upper[b]+t.precision:
		return 1
	default:
		return 0
	}
}

// entering picks a nonbasic column whose move improves d, together with the
// direction of that move. Largest |d_j| wins (lowest index on ties); under
// Bland's rule the first eligible column wins. Returns -1 when none improves.
func (t *Tableau) entering(d []float64, bland bool) (q, dir int) {
	var (
		j, dj int
		best  float64
	)
	q = -1
	for j = 0; j < t.cols; j++ {
		if t.position[j] >= 0 || t.upper[j]-t.lower[j] <= t.precision {
			continue
		}
		x := t.values[j]
		switch {
		case d[j] < -t.precision && x < t.upper[j]-t.precision:
			dj = 1
		case d[j] > t.precision && x > t.lower[j]+t.precision:
			dj = -1
		default:
			continue
		}
		if bland {
			return j, dj
		}
		if a := math.Abs(d[j]); a > best {
			best, q, dir = a, j, dj
		}
	}

	return q, dir
}

// ratio finds how far column q may move in direction dir before a basic
// variable hits a bound (or q reaches its own opposite bound, row == -1).
//
// In phase one an infeasible basic variable blocks only at the bound it
// violates, and never when moving away from it.
// Ties: own bound flip first, then lowest row (Bland: lowest basic column).
func (t *Tableau) ratio(q, dir int, ph phase, bland bool) (theta float64, row int, hitUpper bool) {
	theta, row = math.Inf(1), -1
	if !math.IsInf(t.lower[q], -1) && !math.IsInf(t.upper[q], 1) {
		theta = t.upper[q] - t.lower[q]
	}

	var (
		i, b     int
		alpha, x float64
		limit, g float64
		up       bool
		fd       = float64(dir)
	)
	for i = 0; i < t.m; i++ {
		// dx_b / dθ for the basic variable of row i.
		alpha = -t.mat.At(i, q) * fd
		if math.Abs(alpha) <= t.precision {
			continue
		}
		b = t.basis[i]
		x = t.values[b]
		g = 0
		if ph == phaseOne {
			g = t.violation(i)
		}
		switch {
		case g < 0:
			if alpha < 0 {
				continue
			}
			limit, up = (t.lower[b]-x)/alpha, false
		case g > 0:
			if alpha > 0 {
				continue
			}
			limit, up = (t.upper[b]-x)/alpha, true
		case alpha > 0:
			if math.IsInf(t.upper[b], 1) {
				continue
			}
			limit, up = (t.upper[b]-x)/alpha, true
		default:
			if math.IsInf(t.lower[b], -1) {
				continue
			}
			limit, up = (t.lower[b]-x)/alpha, false
		}
		if limit < 0 {
			limit = 0
		}
		if limit < theta || (bland && row >= 0 && limit == theta && b < t.basis[row]) {
			theta, row, hitUpper = limit, i, up
		}
	}

	return theta, row, hitUpper
}

// step applies one iteration: a bound flip of q when row < 0, otherwise a
// pivot that makes q basic in row and parks the leaving variable exactly on
// the bound it reached.
func (t *Tableau) step(q, dir, row int, hitUpper bool) {
	if row < 0 {
		if dir > 0 {
			t.values[q] = t.upper[q]
		} else {
			t.values[q] = t.lower[q]
		}
		t.refreshBasicValues()
		return
	}

	leaving := t.basis[row]
	t.pivot(row, q)
	if hitUpper {
		t.values[leaving] = t.upper[leaving]
	} else {
		t.values[leaving] = t.lower[leaving]
	}
	t.refreshBasicValues()
}

// pivot makes column q basic in row r by Gauss-Jordan elimination over every
// row, the objective row included. The rhs column is rebuilt from values by
// the caller.
// Complexity: O((m+1)·(n+m)).
func (t *Tableau) pivot(r, q int) {
	pr := t.mat.RawRowView(r)[:t.cols]
	floats.Scale(1/pr[q], pr)
	pr[q] = 1

	var (
		i   int
		f   float64
		row []float64
	)
	for i = 0; i <= t.m; i++ {
		if i == r {
			continue
		}
		row = t.mat.RawRowView(i)[:t.cols]
		if f = row[q]; f == 0 {
			continue
		}
		floats.AddScaled(row, -f, pr)
		row[q] = 0
	}

	t.position[t.basis[r]] = -1
	t.basis[r] = q
	t.position[q] = r
}
