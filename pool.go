package gridsweep

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/jkingslake/gridsweep/grid"
	"github.com/jkingslake/gridsweep/internal/ctxlog"
)

// poolStrategy evaluates combinations on a fixed-size worker pool. Each task
// carries its enumeration index and writes its result into a pre-sized
// buffer, so completion order never affects output order.
type poolStrategy struct {
	workers  int
	progress Progress
}

func (s *poolStrategy) run(ctx context.Context, set *grid.Set, fn Func) ([]cty.Value, error) {
	return runPooled(ctx, set, fn, nil, s.workers, s.progress)
}

// runPooled evaluates the combinations identified by order (nil means natural
// enumeration order) on a worker pool scoped to this call. The pool is always
// drained before returning; a failure cancels outstanding work best-effort
// and the first user-function failure by enumeration order is surfaced.
func runPooled(ctx context.Context, set *grid.Set, fn Func, order []int, workers int, progress Progress) ([]cty.Value, error) {
	logger := ctxlog.FromContext(ctx)
	total := set.Size()
	results := make([]cty.Value, total)
	errs := make([]error, total)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger.Debug("starting worker pool", "workers", workers, "combinations", total)
	pool := pond.NewPool(workers)

	var completed atomic.Int64
	submit := func(index int) {
		pool.Submit(func() {
			if err := runCtx.Err(); err != nil {
				errs[index] = err
				return
			}
			combo := set.At(index)
			v, err := fn(runCtx, combo.Values)
			if err != nil {
				errs[index] = &CombinationError{Combination: combo, Err: err}
				cancel()
				return
			}
			results[index] = v
			if progress != nil {
				progress(int(completed.Add(1)), total)
			}
		})
	}

	if order == nil {
		for i := 0; i < total; i++ {
			submit(i)
		}
	} else {
		for _, i := range order {
			submit(i)
		}
	}

	pool.StopAndWait()
	logger.Debug("worker pool drained", "completed", completed.Load(), "combinations", total)

	// Prefer the first user-function failure in enumeration order; tasks
	// curtailed by cancellation only report context errors.
	var firstErr error
	for _, err := range errs {
		if err == nil {
			continue
		}
		var ce *CombinationError
		if errors.As(err, &ce) {
			return nil, err
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
