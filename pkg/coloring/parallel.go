package coloring

import (
	"context"
	"fmt"
	"sync"

	"github.com/gitrdm/mapcolor/internal/parallel"
)

// SolveParallel behaves exactly like Solve but fans the first region's
// candidate colors out across a worker pool, one independent search per
// candidate. The lowest-indexed successful branch always wins, so the
// result is bit-identical to the sequential solver; only wall-clock
// time changes. workers <= 0 defaults to the number of CPU cores.
//
// The search space for region counts this package targets is small, so
// parallelism rarely matters below a few hundred regions; it exists for
// the dense, near-chromatic cases where backtracking actually branches.
func SolveParallel(ctx context.Context, adj *Adjacency, k, workers int) (Assignment, error) {
	if adj == nil {
		return nil, fmt.Errorf("%w: nil adjacency", ErrInvalidInput)
	}
	if k < 1 {
		return nil, &PaletteSizeError{K: k}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if adj.Len() == 0 {
		return Assignment{}, nil
	}

	// Branch on the same region the sequential solver would choose
	// first. All domains start full, so this is the lowest-indexed
	// region; computed via selectRegion to keep the two solvers in
	// lockstep.
	first := newSearch(adj, k).selectRegion()

	pool := parallel.NewWorkerPool(workers)
	defer pool.Shutdown()

	results := parallel.NewBranchResults(k)
	var wg sync.WaitGroup
	for c := 0; c < k; c++ {
		c := c
		wg.Add(1)
		task := func() {
			defer wg.Done()
			branch := newSearch(adj, k)
			found, err := branch.run(ctx, first, c)
			switch {
			case err != nil:
				results.Report(c, nil, err)
			case found:
				results.Report(c, branch.assignment(), nil)
			default:
				// Exhausted subtree: a clean failure, not an error.
				results.Report(c, nil, nil)
			}
		}
		if err := pool.Submit(ctx, task); err != nil {
			wg.Done()
			results.Report(c, nil, err)
		}
	}
	wg.Wait()

	value, ok, err := results.First()
	if ok {
		out := value.(Assignment)
		if err := out.Validate(adj, k); err != nil {
			return nil, err
		}
		return out, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, ErrInfeasible
}
