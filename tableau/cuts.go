package tableau

import (
	"fmt"
	"math"
)

// AddCutConstraints tightens variable bounds in place: CutMin raises the
// lower bound, CutMax lowers the upper bound, and neither ever loosens one.
//
// All cuts are validated before any is applied, so on error the tableau is
// unchanged. Cuts that cross a variable's bounds are accepted; the next Solve
// reports the tableau infeasible.
//
// Errors: ErrCutOutOfRange, ErrUnknownCutKind (both contract violations), ErrNaN.
// Complexity: O(len(cuts)).
func (t *Tableau) AddCutConstraints(cuts []Cut) error {
	for k, c := range cuts {
		if c.Index < 0 || c.Index >= t.n {
			return fmt.Errorf("cut %d on x%d (n=%d): %w", k, c.Index, t.n, ErrCutOutOfRange)
		}
		if c.Kind != CutMin && c.Kind != CutMax {
			return fmt.Errorf("cut %d kind %d: %w", k, int(c.Kind), ErrUnknownCutKind)
		}
		if math.IsNaN(c.Value) {
			return fmt.Errorf("cut %d on x%d: %w", k, c.Index, ErrNaN)
		}
	}

	for _, c := range cuts {
		if c.Kind == CutMin {
			t.lower[c.Index] = math.Max(t.lower[c.Index], c.Value)
		} else {
			t.upper[c.Index] = math.Min(t.upper[c.Index], c.Value)
		}
	}

	return nil
}
