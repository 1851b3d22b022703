// Package gridsweep evaluates a function over the Cartesian product of named
// parameter values and assembles the results into a labeled multidimensional
// container, one axis per parameter.
//
// A sweep runs sequentially by default, on a fixed-size worker pool with
// WithWorkers, or through a deferred execution plan (NewPlan, or WithGraph
// for build-and-compute in one call). All execution modes produce identical
// output for a pure function.
//
//	set := grid.NewSet()
//	set.Add("a", grid.Numbers(0.1, 0.2)...)
//	set.Add("b", grid.Numbers(1.0, 2.0)...)
//	out, err := gridsweep.Sweep(ctx, add, set, gridsweep.WithWorkers(4))
//
// Scalar results are stored under the dataset variable "value"; a function
// returning a cty object value yields one dataset variable per field.
//
// A sweep requires at least one parameter with at least one value; an empty
// parameter set is rejected with ErrInvalidParameter before anything runs.
package gridsweep
