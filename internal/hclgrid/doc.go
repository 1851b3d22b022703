// Package hclgrid loads sweep definitions from HCL files and translates them
// into an agnostic model the CLI can execute. The HCL surface is:
//
//	sweep "demo" {
//	  command = "./evaluate.sh"
//	  workers = 4
//	  param "alpha" { values = [0.1, 0.2] }
//	  param "beta"  { values = [1.0, 2.0] }
//	}
//
// Parameter blocks are ordered; their file order defines the axis order of
// the sweep output.
package hclgrid
