package gridsweep

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/jkingslake/gridsweep/cube"
	"github.com/jkingslake/gridsweep/grid"
)

// assemble reshapes the enumeration-ordered raw results into a labeled
// dataset: one axis per parameter, one variable per result field. It is a
// pure reshape — the combination at flat index i lands at flat cell i of
// every variable.
func assemble(set *grid.Set, raw []cty.Value) (*cube.Dataset, error) {
	schema, err := inferSchema(raw[0])
	if err != nil {
		return nil, err
	}
	for i, v := range raw[1:] {
		if err := schema.check(v); err != nil {
			return nil, fmt.Errorf("combination %d: %w", i+1, err)
		}
	}

	params := set.Params()
	axes := make([]cube.Axis, len(params))
	for i, p := range params {
		axes[i] = cube.Axis{Name: p.Name, Coords: p.Values}
	}

	out := cube.NewDataset()
	for _, field := range schema.varNames() {
		d, err := cube.NewDense(axes)
		if err != nil {
			return nil, fmt.Errorf("gridsweep: allocating output: %w", err)
		}
		for i, v := range raw {
			if err := d.SetFlat(i, schema.extract(v, field)); err != nil {
				return nil, fmt.Errorf("gridsweep: placing result: %w", err)
			}
		}
		if err := out.AddVar(field, d); err != nil {
			return nil, fmt.Errorf("gridsweep: assembling output: %w", err)
		}
	}
	return out, nil
}
