package hclgrid

import "github.com/hashicorp/hcl/v2"

// paramBlock is the HCL form of one swept parameter. Values stays an
// expression so the loader controls evaluation and error reporting.
type paramBlock struct {
	Name   string         `hcl:"name,label"`
	Values hcl.Expression `hcl:"values"`
}

// sweepBlock is the HCL form of a `sweep` block.
type sweepBlock struct {
	Name    string        `hcl:"name,label"`
	Command string        `hcl:"command"`
	Args    []string      `hcl:"args,optional"`
	Workers *int          `hcl:"workers,optional"`
	Params  []*paramBlock `hcl:"param,block"`
}

// fileSchema is the top-level structure of a sweep file.
type fileSchema struct {
	Sweeps []*sweepBlock `hcl:"sweep,block"`
}
