package milp

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"
)

// BranchRule selects the fractional variable a branch is split on.
type BranchRule int

const (
	// BranchMostFractional splits on the variable whose fractional part is
	// closest to 0.5 (lowest index on ties).
	BranchMostFractional BranchRule = iota

	// BranchLowestCost splits on the fractional variable with the lowest
	// minimization-normalized objective coefficient (lowest index on ties).
	BranchLowestCost
)

// String implements fmt.Stringer.
func (r BranchRule) String() string {
	switch r {
	case BranchMostFractional:
		return "most-fractional"
	case BranchLowestCost:
		return "lowest-cost"
	default:
		return "unknown"
	}
}

// Options configures SolveMILP.
//
//   - Ctx:       cancellation, checked once per frontier pop (nil ⇒ Background).
//   - Workers:   branches evaluated concurrently per batch (0 or 1 ⇒ serial).
//   - NodeLimit: maximum branches processed (0 ⇒ unlimited) → ErrNodeLimit.
//   - TimeLimit: soft wall-clock budget (0 ⇒ unlimited) → ErrTimeLimit.
//   - Gap:       relative optimality gap; a branch is pruned once its bound
//     cannot beat the incumbent by more than Gap·|incumbent|.
//   - Branching: fractional variable selection rule.
//   - Logger:    structured log sink (nil ⇒ discarded).
//   - Observer:  per-node and per-solve hook (nil ⇒ none).
type Options struct {
	Ctx       context.Context
	Workers   int
	NodeLimit int
	TimeLimit time.Duration
	Gap       float64
	Branching BranchRule
	Logger    *slog.Logger
	Observer  Observer
}

// DefaultOptions returns the serial, exact (Gap = 0), unlimited configuration
// with most-fractional branching.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Workers:   1,
		Branching: BranchMostFractional,
	}
}

// validate rejects out-of-range fields. Complexity: O(1).
func (o Options) validate() error {
	switch {
	case o.Workers < 0:
		return fmt.Errorf("%w: Workers=%d", ErrBadOptions, o.Workers)
	case o.NodeLimit < 0:
		return fmt.Errorf("%w: NodeLimit=%d", ErrBadOptions, o.NodeLimit)
	case o.TimeLimit < 0:
		return fmt.Errorf("%w: TimeLimit=%s", ErrBadOptions, o.TimeLimit)
	case math.IsNaN(o.Gap) || math.IsInf(o.Gap, 0) || o.Gap < 0:
		return fmt.Errorf("%w: Gap=%g", ErrBadOptions, o.Gap)
	}
	switch o.Branching {
	case BranchMostFractional, BranchLowestCost:
	default:
		return fmt.Errorf("%w: Branching=%d", ErrBadOptions, int(o.Branching))
	}

	return nil
}

// normalize fills zero-valued fields with their defaults.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Workers == 0 {
		o.Workers = 1
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.Observer == nil {
		o.Observer = nopObserver{}
	}
}
