package gridsweep

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/jkingslake/gridsweep/cube"
	"github.com/jkingslake/gridsweep/grid"
	"github.com/jkingslake/gridsweep/internal/ctxlog"
)

// Func is the swept function. It receives one value per parameter, keyed by
// parameter name, and returns either a scalar cty value or a cty object value
// whose fields become dataset variables. The returned structure must be the
// same for every combination. When a sweep runs with multiple workers the
// function must be safe to call concurrently.
type Func func(ctx context.Context, args map[string]cty.Value) (cty.Value, error)

// Sweep evaluates fn over the Cartesian product of the set's parameter values
// and returns the results as a labeled dataset with one axis per parameter.
//
// Execution is sequential by default; WithWorkers enables a worker pool and
// WithGraph routes execution through a deferred plan that is computed
// immediately. All modes yield identical output for a pure fn. A sweep either
// fully succeeds (every cell filled) or fails without returning a container.
func Sweep(ctx context.Context, fn Func, set *grid.Set, opts ...Option) (*cube.Dataset, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := validateSweep(fn, set); err != nil {
		return nil, err
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("sweep starting",
		"params", set.Names(),
		"combinations", set.Size(),
		"workers", o.workerCount(),
		"graph", o.graph,
	)

	if o.graph {
		p, err := newPlan(fn, set, o)
		if err != nil {
			return nil, err
		}
		return p.Compute(ctx)
	}

	var st strategy
	if workers := o.workerCount(); workers > 1 {
		st = &poolStrategy{workers: workers, progress: o.progress}
	} else {
		st = &sequentialStrategy{progress: o.progress}
	}

	raw, err := st.run(ctx, set, fn)
	if err != nil {
		return nil, err
	}
	return assemble(set, raw)
}

// validateSweep checks the caller-supplied inputs before any execution.
func validateSweep(fn Func, set *grid.Set) error {
	if fn == nil {
		return fmt.Errorf("%w: nil function", ErrInvalidParameter)
	}
	if set == nil {
		return fmt.Errorf("%w: nil parameter set", ErrInvalidParameter)
	}
	if err := set.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	return nil
}
