package milp

import (
	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/lvmilp/tableau"
)

// searchParallel drains the frontier in batch-synchronous rounds:
//
//  1. pop up to Workers live branches (fewer if NodeLimit is close);
//  2. solve them concurrently, branch i on private tableau i;
//  3. merge the results in pop order on this goroutine.
//
// Every worker tableau is a Clone of the saved root, so Restore brings all of
// them to the same state and a round's results do not depend on scheduling.
func (e *engine) searchParallel() error {
	workers := make([]*tableau.Tableau, e.opts.Workers)
	workers[0] = e.t
	for i := 1; i < len(workers); i++ {
		workers[i] = e.t.Clone()
	}

	var (
		batch   = make([]*branch, 0, len(workers))
		results = make([]nodeResult, len(workers))
	)
	for e.frontier.Len() > 0 {
		if err := e.interrupted(); err != nil {
			return err
		}

		limit := len(workers)
		if e.opts.NodeLimit > 0 && e.opts.NodeLimit-e.iterations < limit {
			limit = e.opts.NodeLimit - e.iterations
		}
		batch = batch[:0]
		for len(batch) < limit {
			b, ok := e.popLive()
			if !ok {
				break
			}
			batch = append(batch, b)
		}
		if len(batch) == 0 {
			break
		}

		p := pool.New().WithErrors().WithMaxGoroutines(len(batch))
		for i, b := range batch {
			p.Go(func() error {
				r, err := e.evaluate(workers[i], b)
				results[i] = r

				return err
			})
		}
		if err := p.Wait(); err != nil {
			return err
		}

		for i, b := range batch {
			e.merge(b, results[i])
		}
	}

	return nil
}
