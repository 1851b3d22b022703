package gridsweep

import (
	"fmt"
	"runtime"
)

// AllWorkers selects one worker per available CPU.
const AllWorkers = -1

// Progress receives completion counts as combinations finish. Calls arrive in
// completion order, which under parallel execution is not enumeration order.
type Progress func(completed, total int)

type options struct {
	workers  int
	graph    bool
	progress Progress
}

// Option configures a sweep or a plan.
type Option func(*options)

// WithWorkers sets the worker count for parallel execution. The default is 1
// (sequential). Pass AllWorkers to use every available CPU.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithGraph routes execution through a deferred plan that is built and then
// computed immediately. Equivalent to NewPlan followed by Compute.
func WithGraph() Option {
	return func(o *options) { o.graph = true }
}

// WithProgress installs a progress callback. The callback must be safe for
// concurrent use when combined with WithWorkers.
func WithProgress(fn Progress) Option {
	return func(o *options) { o.progress = fn }
}

func buildOptions(opts []Option) (options, error) {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers == 0 || o.workers < AllWorkers {
		return options{}, fmt.Errorf("%w: worker count %d", ErrInvalidParameter, o.workers)
	}
	return o, nil
}

// workerCount resolves the configured worker count to a concrete pool size.
func (o options) workerCount() int {
	if o.workers == AllWorkers {
		return runtime.NumCPU()
	}
	return o.workers
}
