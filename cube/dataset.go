package cube

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownVar indicates a variable name absent from a Dataset.
var ErrUnknownVar = errors.New("cube: unknown variable")

// Dataset groups named Dense containers that share the same axes. Variable
// order is preserved from insertion.
type Dataset struct {
	names []string
	vars  map[string]*Dense
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{vars: make(map[string]*Dense)}
}

// AddVar attaches a container under a variable name. The first variable fixes
// the expected axes; later variables must match its dims and shape.
func (ds *Dataset) AddVar(name string, d *Dense) error {
	if _, ok := ds.vars[name]; ok {
		return fmt.Errorf("cube: variable %q already present", name)
	}
	if len(ds.names) > 0 {
		ref := ds.vars[ds.names[0]]
		if len(ref.axes) != len(d.axes) {
			return fmt.Errorf("cube: variable %q has %d axes, dataset has %d", name, len(d.axes), len(ref.axes))
		}
		for i, ax := range ref.axes {
			if ax.Name != d.axes[i].Name || len(ax.Coords) != len(d.axes[i].Coords) {
				return fmt.Errorf("cube: variable %q axis %q does not match dataset axes", name, d.axes[i].Name)
			}
		}
	}
	ds.names = append(ds.names, name)
	ds.vars[name] = d
	return nil
}

// VarNames returns the variable names in insertion order.
func (ds *Dataset) VarNames() []string {
	names := make([]string, len(ds.names))
	copy(names, ds.names)
	return names
}

// Var returns the container stored under name, or an error if absent.
func (ds *Dataset) Var(name string) (*Dense, error) {
	d, ok := ds.vars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVar, name)
	}
	return d, nil
}

// Only returns the sole variable of a single-variable dataset.
func (ds *Dataset) Only() (*Dense, error) {
	if len(ds.names) != 1 {
		return nil, fmt.Errorf("cube: dataset holds %d variables, expected exactly one", len(ds.names))
	}
	return ds.vars[ds.names[0]], nil
}

// Dims returns the axis names shared by all variables, or nil for an empty
// dataset.
func (ds *Dataset) Dims() []string {
	if len(ds.names) == 0 {
		return nil
	}
	return ds.vars[ds.names[0]].Dims()
}

// Equal reports whether two datasets hold the same variables, in the same
// order, with equal containers.
func (ds *Dataset) Equal(other *Dataset) bool {
	if other == nil || len(ds.names) != len(other.names) {
		return false
	}
	for i, name := range ds.names {
		if other.names[i] != name {
			return false
		}
		if !ds.vars[name].Equal(other.vars[name]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the dataset as an object of variable name to container.
func (ds *Dataset) MarshalJSON() ([]byte, error) {
	type entry struct {
		Name string `json:"name"`
		Var  *Dense `json:"var"`
	}
	entries := make([]entry, len(ds.names))
	for i, name := range ds.names {
		entries[i] = entry{Name: name, Var: ds.vars[name]}
	}
	return json.Marshal(struct {
		Vars []entry `json:"vars"`
	}{Vars: entries})
}
