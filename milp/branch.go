package milp

import (
	"math"

	"github.com/katalvlaran/lvmilp/tableau"
)

// branch is one frontier entry: the cut set that defines its subproblem and
// the relaxed bound inherited from its parent.
type branch struct {
	estimate float64       // parent's relaxed evaluation (minimization); -Inf at the root
	cuts     []tableau.Cut // full cut set; never shared with another branch
	depth    int
	seq      int // creation order; ties in estimate pop the newest first
}

// split creates the two children of b on fractional variable f.
//
//	high: x[f.Index] ≥ ceil(f.Value), drops b's earlier CutMin on that variable
//	low:  x[f.Index] ≤ floor(f.Value), drops b's earlier CutMax on that variable
//
// Other cuts are copied unchanged, so each child's cut set stays
// non-redundant: at most one CutMin and one CutMax per variable.
// Complexity: O(len(b.cuts)).
func (b *branch) split(f tableau.Fractional, evaluation float64) (high, low *branch) {
	hc := make([]tableau.Cut, 0, len(b.cuts)+1)
	lc := make([]tableau.Cut, 0, len(b.cuts)+1)
	for _, c := range b.cuts {
		if c.Index == f.Index {
			if c.Kind == tableau.CutMin {
				lc = append(lc, c)
			} else {
				hc = append(hc, c)
			}
			continue
		}
		hc = append(hc, c)
		lc = append(lc, c)
	}
	hc = append(hc, tableau.Cut{Kind: tableau.CutMin, Index: f.Index, Value: math.Ceil(f.Value)})
	lc = append(lc, tableau.Cut{Kind: tableau.CutMax, Index: f.Index, Value: math.Floor(f.Value)})

	high = &branch{estimate: evaluation, cuts: hc, depth: b.depth + 1}
	low = &branch{estimate: evaluation, cuts: lc, depth: b.depth + 1}

	return high, low
}
