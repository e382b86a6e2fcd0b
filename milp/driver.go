package milp

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/lvmilp/tableau"
)

// SolveRelaxation solves the LP relaxation of t (integrality ignored) from
// its current state and reports it as a Solution with Iterations == 0.
//
// Status is StatusOptimal, StatusInfeasible or StatusUnbounded. The only
// errors are ErrNilTableau and tableau.ErrPivotLimit (with StatusInterrupted).
func SolveRelaxation(t *tableau.Tableau) (Solution, error) {
	if t == nil {
		return Solution{}, ErrNilTableau
	}
	start := time.Now()
	p0 := t.Pivots()
	if err := t.Solve(); err != nil {
		return Solution{Status: StatusInterrupted, Evaluation: worst(t.Sense()), Pivots: t.Pivots() - p0, t: t}, err
	}

	s := Solution{
		Status:     StatusOptimal,
		Feasible:   t.Feasible(),
		Bounded:    t.Bounded(),
		Evaluation: t.Evaluation(),
		Pivots:     t.Pivots() - p0,
		Elapsed:    time.Since(start),
		t:          t,
	}
	switch {
	case !s.Feasible:
		s.Status = StatusInfeasible
	case !s.Bounded:
		s.Status = StatusUnbounded
	default:
		s.Integral = t.IsIntegral()
		s.Values = t.Values()
	}

	return s, nil
}

// SolveMILP runs branch-and-cut on t and returns the best integral solution.
//
// Stage 1 (Validate): nil tableau, options.
// Stage 2 (Root): solve the relaxation and Save it as the restore point
// (unless t already has one, in which case the search restarts from it).
// Stage 3 (Search): pop the branch with the lowest relaxed bound; prune,
// restore, apply its cuts, solve, then discard, record or split it.
// Stage 4 (Finish): restore, re-apply the incumbent's cuts, solve, round.
//
// Cancellation (opts.Ctx), NodeLimit and TimeLimit are checked once per pop
// (per batch with Workers > 1). When one fires, the returned Solution has
// StatusInterrupted and carries the best incumbent so far, and the error is
// ctx.Err(), ErrNodeLimit or ErrTimeLimit.
//
// Complexity: exponential in the number of integer variables in the worst
// case; each node costs one warm-started simplex.
func SolveMILP(t *tableau.Tableau, opts Options) (Solution, error) {
	if t == nil {
		return Solution{}, ErrNilTableau
	}
	if err := opts.validate(); err != nil {
		return Solution{}, err
	}
	opts.normalize()

	e := newEngine(t, opts)
	err := e.search()
	sol, ferr := e.finish(err)
	if err == nil {
		err = ferr
	}

	opts.Logger.LogAttrs(opts.Ctx, slog.LevelInfo, "milp solve finished",
		slog.String("status", sol.Status.String()),
		slog.Int("iterations", sol.Iterations),
		slog.Int("pivots", sol.Pivots),
		slog.Duration("elapsed", sol.Elapsed),
	)
	opts.Observer.ObserveSolve(Summary{
		Status:     sol.Status,
		Iterations: sol.Iterations,
		Pivots:     sol.Pivots,
		Elapsed:    sol.Elapsed,
	})

	return sol, err
}

// engine holds the search state of one SolveMILP call. Only the driver
// goroutine touches it.
type engine struct {
	t    *tableau.Tableau
	opts Options
	pick func(*tableau.Tableau) (tableau.Fractional, bool)

	frontier frontier
	seq      int

	start      time.Time
	iterations int
	pivots     int

	best     float64 // incumbent evaluation (minimization), +Inf when none
	bestCuts []tableau.Cut
	haveBest bool

	rootFeasible bool
	rootBounded  bool
}

func newEngine(t *tableau.Tableau, opts Options) *engine {
	e := &engine{
		t:           t,
		opts:        opts,
		pick:        (*tableau.Tableau).MostFractionalVar,
		start:       time.Now(),
		best:        math.Inf(1),
		rootBounded: true,
	}
	if opts.Branching == BranchLowestCost {
		e.pick = (*tableau.Tableau).LowestCostFractionalVar
	}
	e.push(&branch{estimate: math.Inf(-1)})

	return e
}

func (e *engine) push(b *branch) {
	b.seq = e.seq
	e.seq++
	heap.Push(&e.frontier, b)
}

// cutoff is the bound a branch must beat to be worth exploring.
func (e *engine) cutoff() float64 {
	if !e.haveBest || e.opts.Gap == 0 {
		return e.best
	}

	return e.best - e.opts.Gap*math.Abs(e.best)
}

// interrupted reports why the search must stop now, if it must.
func (e *engine) interrupted() error {
	if err := e.opts.Ctx.Err(); err != nil {
		return err
	}
	if e.opts.NodeLimit > 0 && e.iterations >= e.opts.NodeLimit {
		return ErrNodeLimit
	}
	if e.opts.TimeLimit > 0 && time.Since(e.start) >= e.opts.TimeLimit {
		return ErrTimeLimit
	}

	return nil
}

// nodeResult is what evaluating one branch on some tableau produced.
type nodeResult struct {
	feasible   bool
	bounded    bool
	integral   bool
	evaluation float64 // minimization-normalized
	frac       tableau.Fractional
	pivots     int
}

// evaluate restores t (when it has a restore point), applies b's cuts and
// solves. It only touches t, so distinct tableaux may evaluate concurrently.
func (e *engine) evaluate(t *tableau.Tableau, b *branch) (nodeResult, error) {
	p0 := t.Pivots()
	if t.HasSnapshot() {
		if err := t.Restore(); err != nil {
			return nodeResult{}, err
		}
	}
	if err := t.AddCutConstraints(b.cuts); err != nil {
		return nodeResult{}, err
	}
	if err := t.Solve(); err != nil {
		return nodeResult{pivots: t.Pivots() - p0}, err
	}

	r := nodeResult{
		feasible:   t.Feasible(),
		bounded:    t.Bounded(),
		evaluation: t.InternalEvaluation(),
		pivots:     t.Pivots() - p0,
	}
	if r.feasible && r.bounded {
		var ok bool
		r.frac, ok = e.pick(t)
		r.integral = !ok
	}

	return r, nil
}

// merge folds one evaluated branch into the search state. Branches are
// merged in pop order, so the incumbent check is always against the latest
// incumbent even when the branch was solved concurrently with others.
func (e *engine) merge(b *branch, r nodeResult) {
	e.iterations++
	e.pivots += r.pivots
	if b.depth == 0 && b.cuts == nil {
		e.rootFeasible, e.rootBounded = r.feasible, r.bounded
	}

	ev := NodeEvent{
		Iteration:  e.iterations,
		Depth:      b.depth,
		Estimate:   b.estimate,
		Evaluation: r.evaluation,
	}
	switch {
	case !r.feasible:
		ev.Outcome = OutcomeInfeasible
	case !r.bounded:
		ev.Outcome = OutcomeUnbounded
	case r.evaluation >= e.cutoff():
		ev.Outcome = OutcomeDominated
	case r.integral:
		ev.Outcome = OutcomeIncumbent
		e.best, e.bestCuts, e.haveBest = r.evaluation, b.cuts, true
	default:
		ev.Outcome = OutcomeBranched
		high, low := b.split(r.frac, r.evaluation)
		e.push(high)
		e.push(low)
	}
	e.emit(ev)
}

// popLive pops branches until one survives the cutoff test.
func (e *engine) popLive() (*branch, bool) {
	for e.frontier.Len() > 0 {
		b := heap.Pop(&e.frontier).(*branch)
		if b.estimate >= e.cutoff() {
			e.emit(NodeEvent{
				Iteration:  e.iterations,
				Depth:      b.depth,
				Estimate:   b.estimate,
				Evaluation: math.NaN(),
				Outcome:    OutcomePruned,
			})
			continue
		}

		return b, true
	}

	return nil, false
}

func (e *engine) emit(ev NodeEvent) {
	e.opts.Logger.LogAttrs(e.opts.Ctx, slog.LevelDebug, "milp node",
		slog.Int("iteration", ev.Iteration),
		slog.Int("depth", ev.Depth),
		slog.Float64("estimate", ev.Estimate),
		slog.Float64("evaluation", ev.Evaluation),
		slog.String("outcome", ev.Outcome.String()),
	)
	e.opts.Observer.ObserveNode(ev)
}

// search processes the root, saves the restore point and drains the
// frontier serially or in batches.
func (e *engine) search() error {
	root, _ := e.popLive()
	r, err := e.evaluate(e.t, root)
	if err != nil {
		return err
	}
	if !e.t.HasSnapshot() {
		if err = e.t.Save(); err != nil {
			return err
		}
	}
	e.merge(root, r)

	if e.opts.Workers > 1 {
		return e.searchParallel()
	}

	var b *branch
	for e.frontier.Len() > 0 {
		if err = e.interrupted(); err != nil {
			return err
		}
		var ok bool
		if b, ok = e.popLive(); !ok {
			break
		}
		if r, err = e.evaluate(e.t, b); err != nil {
			return err
		}
		e.merge(b, r)
	}

	return nil
}

// finish rebuilds the incumbent on e.t and assembles the Solution.
// cause is the error that stopped the search, if any.
func (e *engine) finish(cause error) (Solution, error) {
	sense := e.t.Sense()
	s := Solution{
		Status:     StatusOptimal,
		Evaluation: worst(sense),
		Bounded:    true,
		Iterations: e.iterations,
		t:          e.t,
	}

	var err error
	switch {
	case cause != nil:
		s.Status = StatusInterrupted
		if isLimit(cause) {
			err = e.rebuild(&s)
		}
	case !e.rootFeasible:
		s.Status = StatusInfeasible
	case !e.rootBounded:
		s.Status = StatusUnbounded
		s.Feasible, s.Bounded = true, false
		s.Evaluation = -worst(sense)
	case !e.haveBest:
		s.Status = StatusNoIntegerSolution
		if e.t.HasSnapshot() {
			err = e.t.Restore()
		}
	default:
		err = e.rebuild(&s)
	}

	s.Pivots = e.pivots
	s.Elapsed = time.Since(e.start)

	return s, err
}

// rebuild restores the root, re-applies the incumbent's cuts, solves and
// rounds, filling s from the result. Without an incumbent it only restores.
func (e *engine) rebuild(s *Solution) error {
	if !e.t.HasSnapshot() {
		return nil
	}
	if err := e.t.Restore(); err != nil {
		return err
	}
	if !e.haveBest {
		return nil
	}
	p0 := e.t.Pivots()
	if err := e.t.AddCutConstraints(e.bestCuts); err != nil {
		return err
	}
	err := e.t.Solve()
	e.pivots += e.t.Pivots() - p0
	if err != nil {
		return fmt.Errorf("milp: rebuilding incumbent: %w", err)
	}
	if err = e.t.CheckInvariants(); err != nil {
		e.opts.Logger.LogAttrs(e.opts.Ctx, slog.LevelWarn, "milp incumbent residual",
			slog.String("error", err.Error()))
	}
	e.t.UpdateVariableValues()

	s.Feasible = e.t.Feasible()
	s.Bounded = e.t.Bounded()
	s.Integral = e.t.IsIntegral()
	s.Evaluation = e.t.Evaluation()
	s.Values = e.t.Values()

	return nil
}

// isLimit reports whether err is a search limit or cancellation, after which
// the incumbent is still reported.
func isLimit(err error) bool {
	return errors.Is(err, ErrNodeLimit) || errors.Is(err, ErrTimeLimit) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// worst is the evaluation reported when no feasible point exists.
func worst(sense tableau.Sense) float64 {
	if sense == tableau.Maximize {
		return math.Inf(-1)
	}

	return math.Inf(1)
}
