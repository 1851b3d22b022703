// Package grid models an ordered set of named parameters and enumerates the
// Cartesian product of their values.
//
// A Set preserves the order in which parameters are added; that order defines
// the axis order of any output built from the sweep. Enumeration follows
// odometer order: the last-added parameter varies fastest, matching a nested
// loop over the value lists. Enumeration is lazy and restartable — iterating
// a Set twice yields the same combinations in the same order.
package grid
