// Package cube provides a small labeled multidimensional container.
//
// A Dense holds cty values in row-major order over a fixed list of named
// axes, each axis carrying ordered coordinate labels. A Dataset groups
// several Dense containers that share the same axes under variable names.
//
// The package is intentionally narrow: it stores and addresses labeled
// cells, nothing more. It carries no arithmetic and no broadcasting.
package cube
