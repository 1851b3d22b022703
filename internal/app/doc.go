// Package app wires the CLI together: it loads a sweep definition from an
// HCL file, turns its command into a sweep function that shells out once per
// combination, runs the sweep, and writes the assembled dataset as JSON.
package app
