package tableau

import "gonum.org/v1/gonum/mat"

// snapshot is an immutable deep copy of the restorable state.
// It is never written after Save, so clones may share it.
type snapshot struct {
	mat        *mat.Dense
	basis      []int
	position   []int
	lower      []float64
	upper      []float64
	values     []float64
	solved     bool
	feasible   bool
	bounded    bool
	evaluation float64
}

// Save captures the full tableau state (matrix, basis, bounds, values and
// solve flags) as the restore point. It may be called once per tableau;
// a second call returns ErrSnapshotExists.
// Complexity: O(m·(n+m)).
func (t *Tableau) Save() error {
	if t.backup != nil {
		return ErrSnapshotExists
	}
	t.backup = &snapshot{
		mat:        mat.DenseCopyOf(t.mat),
		basis:      append([]int(nil), t.basis...),
		position:   append([]int(nil), t.position...),
		lower:      append([]float64(nil), t.lower...),
		upper:      append([]float64(nil), t.upper...),
		values:     append([]float64(nil), t.values...),
		solved:     t.solved,
		feasible:   t.feasible,
		bounded:    t.bounded,
		evaluation: t.evaluation,
	}

	return nil
}

// Restore resets the tableau to the state captured by Save, discarding every
// cut and pivot since. Restoring twice in a row yields bit-identical state.
// Returns ErrNoSnapshot when Save was never called. The cumulative pivot
// counter is not rewound.
// Complexity: O(m·(n+m)), no allocation.
func (t *Tableau) Restore() error {
	s := t.backup
	if s == nil {
		return ErrNoSnapshot
	}
	t.mat.Copy(s.mat)
	copy(t.basis, s.basis)
	copy(t.position, s.position)
	copy(t.lower, s.lower)
	copy(t.upper, s.upper)
	copy(t.values, s.values)
	t.solved = s.solved
	t.feasible = s.feasible
	t.bounded = s.bounded
	t.evaluation = s.evaluation

	return nil
}

// HasSnapshot reports whether Save has been called.
func (t *Tableau) HasSnapshot() bool { return t.backup != nil }
