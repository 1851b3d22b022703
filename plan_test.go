package gridsweep_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/jkingslake/gridsweep"
	"github.com/jkingslake/gridsweep/grid"
)

func TestNewPlan_IsLazy(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	counting := func(_ context.Context, args map[string]cty.Value) (cty.Value, error) {
		calls.Add(1)
		return addFunc(context.Background(), args)
	}

	plan, err := gridsweep.NewPlan(counting, twoParamSet(t))
	require.NoError(t, err)
	require.Equal(t, 4, plan.Size())
	require.Zero(t, calls.Load(), "building a plan must not invoke the function")

	out, err := plan.Compute(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(4), calls.Load())

	d, err := out.Only()
	require.NoError(t, err)
	require.InDelta(t, 2.2, selFloat(t, d, 0.2, 2.0), 1e-12)
}

func TestPlan_MatchesSweep(t *testing.T) {
	t.Parallel()

	direct, err := gridsweep.Sweep(context.Background(), addFunc, twoParamSet(t))
	require.NoError(t, err)

	plan, err := gridsweep.NewPlan(addFunc, twoParamSet(t))
	require.NoError(t, err)
	deferred, err := plan.Compute(context.Background())
	require.NoError(t, err)

	require.True(t, direct.Equal(deferred))
}

func TestPlan_ComputeReExecutes(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	counting := func(ctx context.Context, args map[string]cty.Value) (cty.Value, error) {
		calls.Add(1)
		return addFunc(ctx, args)
	}

	plan, err := gridsweep.NewPlan(counting, twoParamSet(t))
	require.NoError(t, err)

	first, err := plan.Compute(context.Background())
	require.NoError(t, err)
	second, err := plan.Compute(context.Background())
	require.NoError(t, err)

	require.Equal(t, int64(8), calls.Load())
	require.True(t, first.Equal(second))
}

func TestPlan_Parallel(t *testing.T) {
	t.Parallel()

	plan, err := gridsweep.NewPlan(addFunc, twoParamSet(t), gridsweep.WithWorkers(4))
	require.NoError(t, err)

	out, err := plan.Compute(context.Background())
	require.NoError(t, err)

	direct, err := gridsweep.Sweep(context.Background(), addFunc, twoParamSet(t))
	require.NoError(t, err)
	require.True(t, direct.Equal(out))
}

func TestNewPlan_ValidatesUpfront(t *testing.T) {
	t.Parallel()

	_, err := gridsweep.NewPlan(addFunc, grid.NewSet())
	require.ErrorIs(t, err, gridsweep.ErrInvalidParameter)

	_, err = gridsweep.NewPlan(nil, twoParamSet(t))
	require.ErrorIs(t, err, gridsweep.ErrInvalidParameter)
}

func TestPlan_FunctionError(t *testing.T) {
	t.Parallel()

	set := grid.NewSet()
	require.NoError(t, set.Add("a", grid.Ints(1, 2)...))

	boom := errors.New("boom")
	failing := func(_ context.Context, _ map[string]cty.Value) (cty.Value, error) {
		return cty.NilVal, boom
	}

	plan, err := gridsweep.NewPlan(failing, set)
	require.NoError(t, err)

	out, err := plan.Compute(context.Background())
	require.Nil(t, out)
	require.ErrorIs(t, err, boom)

	var ce *gridsweep.CombinationError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, 0, ce.Combination.Index)
}
