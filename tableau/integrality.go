package tableau

import "math"

// IsIntegral reports whether every integer-flagged variable lies within
// precision of its nearest integer. Continuous variables are ignored.
func (t *Tableau) IsIntegral() bool {
	for j := 0; j < t.n; j++ {
		if t.integer[j] && !t.isWhole(t.values[j]) {
			return false
		}
	}

	return true
}

func (t *Tableau) isWhole(x float64) bool {
	return math.Abs(x-math.Round(x)) <= t.precision
}

// MostFractionalVar returns the integer variable whose fractional part is
// closest to 0.5, ties broken by the lowest index. ok is false when the
// current values are integral.
func (t *Tableau) MostFractionalVar() (f Fractional, ok bool) {
	var (
		j       int
		x, dist float64
		best    = math.Inf(1)
	)
	for j = 0; j < t.n; j++ {
		x = t.values[j]
		if !t.integer[j] || t.isWhole(x) {
			continue
		}
		if dist = math.Abs(x - math.Floor(x) - 0.5); dist < best {
			best = dist
			f, ok = Fractional{Index: j, Value: x}, true
		}
	}

	return f, ok
}

// LowestCostFractionalVar returns the non-integral integer variable with the
// lowest minimization-normalized objective coefficient, ties broken by the
// lowest index. ok is false when the current values are integral.
func (t *Tableau) LowestCostFractionalVar() (f Fractional, ok bool) {
	best := math.Inf(1)
	for j := 0; j < t.n; j++ {
		x := t.values[j]
		if !t.integer[j] || t.isWhole(x) {
			continue
		}
		if !ok || t.cost[j] < best {
			best = t.cost[j]
			f, ok = Fractional{Index: j, Value: x}, true
		}
	}

	return f, ok
}

// UpdateVariableValues finalizes the structural values for reporting:
// integer variables within precision of an integer are snapped to it and the
// others are rounded to the precision grid. The evaluation is recomputed from
// the rounded values. It does nothing unless the last Solve ended optimal.
func (t *Tableau) UpdateVariableValues() {
	if !t.Feasible() || !t.bounded {
		return
	}
	var (
		j int
		x float64
	)
	for j = 0; j < t.n; j++ {
		x = t.values[j]
		if t.integer[j] && t.isWhole(x) {
			t.values[j] = math.Round(x)
			continue
		}
		t.values[j] = roundToPrecision(x, t.precision)
	}
	t.syncRHS()
	t.evaluation = t.objective()
	t.mat.Set(t.m, t.rhs, t.evaluation)
}

// roundToPrecision rounds x to the nearest multiple of eps (taken as 1/round(1/eps)).
func roundToPrecision(x, eps float64) float64 {
	k := math.Round(1 / eps)
	if k <= 0 || math.IsInf(k, 0) {
		return x
	}
	y := x * k
	if math.IsInf(y, 0) || math.IsNaN(y) {
		return x
	}

	return math.Round(y) / k
}
