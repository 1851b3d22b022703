package gridsweep

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/jkingslake/gridsweep/grid"
	"github.com/jkingslake/gridsweep/internal/ctxlog"
)

// strategy invokes the swept function for every combination and returns the
// raw results in enumeration order. Selection happens at the entry point via
// options, never by inspecting the function.
type strategy interface {
	run(ctx context.Context, set *grid.Set, fn Func) ([]cty.Value, error)
}

// sequentialStrategy evaluates combinations one at a time on the calling
// goroutine, in enumeration order. The first failure aborts the sweep.
type sequentialStrategy struct {
	progress Progress
}

func (s *sequentialStrategy) run(ctx context.Context, set *grid.Set, fn Func) ([]cty.Value, error) {
	return runOrdered(ctx, set, fn, nil, s.progress)
}

// runOrdered evaluates the combinations identified by order (nil means
// natural enumeration order 0..Size-1), writing each result at its
// enumeration index.
func runOrdered(ctx context.Context, set *grid.Set, fn Func, order []int, progress Progress) ([]cty.Value, error) {
	logger := ctxlog.FromContext(ctx)
	total := set.Size()
	results := make([]cty.Value, total)

	done := 0
	eval := func(index int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		combo := set.At(index)
		v, err := fn(ctx, combo.Values)
		if err != nil {
			logger.Debug("combination failed", "index", index, "error", err)
			return &CombinationError{Combination: combo, Err: err}
		}
		results[index] = v
		done++
		if progress != nil {
			progress(done, total)
		}
		return nil
	}

	if order == nil {
		for i := 0; i < total; i++ {
			if err := eval(i); err != nil {
				return nil, err
			}
		}
	} else {
		for _, i := range order {
			if err := eval(i); err != nil {
				return nil, err
			}
		}
	}
	return results, nil
}
