package cube

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

var (
	// ErrNoAxes indicates a container was requested with no axes.
	ErrNoAxes = errors.New("cube: at least one axis is required")

	// ErrEmptyAxis indicates an axis was declared with no coordinates.
	ErrEmptyAxis = errors.New("cube: axis requires at least one coordinate")

	// ErrDuplicateAxis indicates two axes share a name.
	ErrDuplicateAxis = errors.New("cube: duplicate axis name")

	// ErrBadIndex indicates an index outside the container's shape.
	ErrBadIndex = errors.New("cube: index out of range")

	// ErrBadSelector indicates a label selection that does not address
	// exactly one cell.
	ErrBadSelector = errors.New("cube: selector must name every axis with a known coordinate")
)

// Axis is one dimension of a container: a name plus ordered coordinate labels.
type Axis struct {
	Name   string
	Coords []cty.Value
}

// Dense is a dense row-major container of cty values over named axes.
type Dense struct {
	axes    []Axis
	strides []int
	data    []cty.Value
}

// NewDense allocates a container with the given axes. Every cell starts as
// cty.NilVal and is expected to be filled via SetFlat before the container
// is handed to a consumer.
func NewDense(axes []Axis) (*Dense, error) {
	if len(axes) == 0 {
		return nil, ErrNoAxes
	}
	seen := make(map[string]struct{}, len(axes))
	size := 1
	for _, ax := range axes {
		if len(ax.Coords) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyAxis, ax.Name)
		}
		if _, ok := seen[ax.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAxis, ax.Name)
		}
		seen[ax.Name] = struct{}{}
		size *= len(ax.Coords)
	}

	// Row-major strides: the last axis is contiguous.
	strides := make([]int, len(axes))
	stride := 1
	for i := len(axes) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= len(axes[i].Coords)
	}

	copied := make([]Axis, len(axes))
	for i, ax := range axes {
		coords := make([]cty.Value, len(ax.Coords))
		copy(coords, ax.Coords)
		copied[i] = Axis{Name: ax.Name, Coords: coords}
	}

	return &Dense{axes: copied, strides: strides, data: make([]cty.Value, size)}, nil
}

// Len returns the total cell count.
func (d *Dense) Len() int { return len(d.data) }

// Dims returns the axis names in order.
func (d *Dense) Dims() []string {
	dims := make([]string, len(d.axes))
	for i, ax := range d.axes {
		dims[i] = ax.Name
	}
	return dims
}

// Shape returns the axis lengths in order.
func (d *Dense) Shape() []int {
	shape := make([]int, len(d.axes))
	for i, ax := range d.axes {
		shape[i] = len(ax.Coords)
	}
	return shape
}

// Axes returns the axes in order. The returned slice is shared; treat it as
// read-only.
func (d *Dense) Axes() []Axis { return d.axes }

// SetFlat stores a value at a flat row-major index.
func (d *Dense) SetFlat(index int, v cty.Value) error {
	if index < 0 || index >= len(d.data) {
		return fmt.Errorf("%w: flat index %d of %d", ErrBadIndex, index, len(d.data))
	}
	d.data[index] = v
	return nil
}

// FlatAt returns the value at a flat row-major index.
func (d *Dense) FlatAt(index int) (cty.Value, error) {
	if index < 0 || index >= len(d.data) {
		return cty.NilVal, fmt.Errorf("%w: flat index %d of %d", ErrBadIndex, index, len(d.data))
	}
	return d.data[index], nil
}

// At returns the value at a multi-index, one position per axis.
func (d *Dense) At(indices ...int) (cty.Value, error) {
	if len(indices) != len(d.axes) {
		return cty.NilVal, fmt.Errorf("%w: got %d indices for %d axes", ErrBadIndex, len(indices), len(d.axes))
	}
	flat := 0
	for i, idx := range indices {
		if idx < 0 || idx >= len(d.axes[i].Coords) {
			return cty.NilVal, fmt.Errorf("%w: axis %q index %d", ErrBadIndex, d.axes[i].Name, idx)
		}
		flat += idx * d.strides[i]
	}
	return d.data[flat], nil
}

// Sel returns the value addressed by coordinate labels. The selector must
// name every axis; coordinates are matched by raw equality.
func (d *Dense) Sel(sel map[string]cty.Value) (cty.Value, error) {
	if len(sel) != len(d.axes) {
		return cty.NilVal, fmt.Errorf("%w: got %d selectors for %d axes", ErrBadSelector, len(sel), len(d.axes))
	}
	indices := make([]int, len(d.axes))
	for i, ax := range d.axes {
		want, ok := sel[ax.Name]
		if !ok {
			return cty.NilVal, fmt.Errorf("%w: missing axis %q", ErrBadSelector, ax.Name)
		}
		pos := -1
		for j, coord := range ax.Coords {
			if coord.RawEquals(want) {
				pos = j
				break
			}
		}
		if pos < 0 {
			return cty.NilVal, fmt.Errorf("%w: no coordinate %v on axis %q", ErrBadSelector, want, ax.Name)
		}
		indices[i] = pos
	}
	return d.At(indices...)
}

// Equal reports whether two containers have identical axes, coordinates and
// cell values (by raw equality).
func (d *Dense) Equal(other *Dense) bool {
	if other == nil || len(d.axes) != len(other.axes) || len(d.data) != len(other.data) {
		return false
	}
	for i, ax := range d.axes {
		oax := other.axes[i]
		if ax.Name != oax.Name || len(ax.Coords) != len(oax.Coords) {
			return false
		}
		for j, c := range ax.Coords {
			if !c.RawEquals(oax.Coords[j]) {
				return false
			}
		}
	}
	for i, v := range d.data {
		if v == cty.NilVal || other.data[i] == cty.NilVal {
			if v != other.data[i] {
				return false
			}
			continue
		}
		if !v.RawEquals(other.data[i]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the container as {"dims", "coords", "data"} with data
// in flat row-major order.
func (d *Dense) MarshalJSON() ([]byte, error) {
	coords := make(map[string][]ctyjson.SimpleJSONValue, len(d.axes))
	for _, ax := range d.axes {
		vs := make([]ctyjson.SimpleJSONValue, len(ax.Coords))
		for i, c := range ax.Coords {
			vs[i] = ctyjson.SimpleJSONValue{Value: c}
		}
		coords[ax.Name] = vs
	}
	data := make([]ctyjson.SimpleJSONValue, len(d.data))
	for i, v := range d.data {
		if v == cty.NilVal {
			v = cty.NullVal(cty.DynamicPseudoType)
		}
		data[i] = ctyjson.SimpleJSONValue{Value: v}
	}
	return json.Marshal(struct {
		Dims   []string                             `json:"dims"`
		Shape  []int                                `json:"shape"`
		Coords map[string][]ctyjson.SimpleJSONValue `json:"coords"`
		Data   []ctyjson.SimpleJSONValue            `json:"data"`
	}{
		Dims:   d.Dims(),
		Shape:  d.Shape(),
		Coords: coords,
		Data:   data,
	})
}
