package gridsweep

import (
	"context"
	"fmt"

	"github.com/dominikbraun/graph"
	"github.com/zclconf/go-cty/cty"

	"github.com/jkingslake/gridsweep/cube"
	"github.com/jkingslake/gridsweep/grid"
	"github.com/jkingslake/gridsweep/internal/ctxlog"
)

// Plan is a deferred sweep: a directed acyclic graph with one task vertex per
// combination and a single assemble vertex depending on all of them. Building
// a plan never invokes the swept function; Compute realizes it.
type Plan struct {
	fn   Func
	set  *grid.Set
	opts options
	dag  graph.Graph[int, int]
	sink int
}

// NewPlan validates the sweep input and builds an execution plan without
// running anything. This is the deferred counterpart of Sweep.
func NewPlan(fn Func, set *grid.Set, opts ...Option) (*Plan, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := validateSweep(fn, set); err != nil {
		return nil, err
	}
	return newPlan(fn, set, o)
}

func newPlan(fn Func, set *grid.Set, o options) (*Plan, error) {
	n := set.Size()
	dag := graph.New(graph.IntHash, graph.Directed(), graph.Acyclic())

	for i := 0; i < n; i++ {
		if err := dag.AddVertex(i); err != nil {
			return nil, fmt.Errorf("gridsweep: building plan: %w", err)
		}
	}
	sink := n
	if err := dag.AddVertex(sink); err != nil {
		return nil, fmt.Errorf("gridsweep: building plan: %w", err)
	}
	for i := 0; i < n; i++ {
		if err := dag.AddEdge(i, sink); err != nil {
			return nil, fmt.Errorf("gridsweep: building plan: %w", err)
		}
	}

	return &Plan{fn: fn, set: set, opts: o, dag: dag, sink: sink}, nil
}

// Size returns the number of task vertices (combinations) in the plan.
func (p *Plan) Size() int { return p.set.Size() }

// Compute realizes the plan: task vertices run in stable topological order
// (in parallel when the plan was built with WithWorkers), then the assemble
// vertex reshapes the results. Compute blocks until the output is complete
// and may be called again to re-execute the plan; no results are cached.
func (p *Plan) Compute(ctx context.Context) (*cube.Dataset, error) {
	logger := ctxlog.FromContext(ctx)

	sorted, err := graph.StableTopologicalSort(p.dag, func(a, b int) bool { return a < b })
	if err != nil {
		return nil, fmt.Errorf("gridsweep: realizing plan: %w", err)
	}

	// The assemble vertex depends on every task vertex, so it sorts last.
	tasks := make([]int, 0, len(sorted)-1)
	for _, v := range sorted {
		if v != p.sink {
			tasks = append(tasks, v)
		}
	}
	logger.Debug("realizing plan", "tasks", len(tasks), "workers", p.opts.workerCount())

	var raw []cty.Value
	if workers := p.opts.workerCount(); workers > 1 {
		raw, err = runPooled(ctx, p.set, p.fn, tasks, workers, p.opts.progress)
	} else {
		raw, err = runOrdered(ctx, p.set, p.fn, tasks, p.opts.progress)
	}
	if err != nil {
		return nil, err
	}
	return assemble(p.set, raw)
}
