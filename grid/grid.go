package grid

import (
	"errors"
	"fmt"
	"iter"

	"github.com/zclconf/go-cty/cty"
)

var (
	// ErrNoParams indicates a sweep was requested over an empty Set.
	ErrNoParams = errors.New("grid: at least one parameter is required")

	// ErrEmptyValues indicates a parameter was declared with no values.
	ErrEmptyValues = errors.New("grid: parameter requires at least one value")

	// ErrDuplicateParam indicates a parameter name was added twice.
	ErrDuplicateParam = errors.New("grid: duplicate parameter name")

	// ErrEmptyName indicates a parameter was declared with an empty name.
	ErrEmptyName = errors.New("grid: parameter name must be non-empty")
)

// Param is one named parameter and its ordered candidate values.
type Param struct {
	Name   string
	Values []cty.Value
}

// Set is an ordered collection of parameters. The zero value is empty and
// ready to use. A Set is read-only to the sweep engine; it must not be
// mutated while a sweep over it is running.
type Set struct {
	params []Param
	byName map[string]int
}

// NewSet returns an empty parameter set.
func NewSet() *Set {
	return &Set{byName: make(map[string]int)}
}

// Add appends a parameter with its candidate values. The order of calls to
// Add defines the axis order of the sweep output; the order of values defines
// the coordinate order along that axis.
func (s *Set) Add(name string, values ...cty.Value) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyValues, name)
	}
	if s.byName == nil {
		s.byName = make(map[string]int)
	}
	if _, ok := s.byName[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateParam, name)
	}
	vs := make([]cty.Value, len(values))
	copy(vs, values)
	s.byName[name] = len(s.params)
	s.params = append(s.params, Param{Name: name, Values: vs})
	return nil
}

// Validate reports whether the set describes a well-formed sweep.
func (s *Set) Validate() error {
	if len(s.params) == 0 {
		return ErrNoParams
	}
	for _, p := range s.params {
		if len(p.Values) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyValues, p.Name)
		}
	}
	return nil
}

// Len returns the number of parameters.
func (s *Set) Len() int { return len(s.params) }

// Names returns the parameter names in declaration order.
func (s *Set) Names() []string {
	names := make([]string, len(s.params))
	for i, p := range s.params {
		names[i] = p.Name
	}
	return names
}

// Params returns the parameters in declaration order. The returned slice
// shares value storage with the set and must be treated as read-only.
func (s *Set) Params() []Param { return s.params }

// Shape returns the value-list length of each parameter in declaration order.
func (s *Set) Shape() []int {
	shape := make([]int, len(s.params))
	for i, p := range s.params {
		shape[i] = len(p.Values)
	}
	return shape
}

// Size returns the total number of combinations, i.e. the product of all
// value-list lengths. An empty set has size 0.
func (s *Set) Size() int {
	if len(s.params) == 0 {
		return 0
	}
	n := 1
	for _, p := range s.params {
		n *= len(p.Values)
	}
	return n
}

// Combination is one concrete assignment of a value to every parameter.
// Index is the combination's position in odometer enumeration order.
type Combination struct {
	Index  int
	Values map[string]cty.Value
}

// At decodes a flat enumeration index into its Combination. The last-added
// parameter varies fastest, so the index is decomposed right to left.
func (s *Set) At(index int) Combination {
	values := make(map[string]cty.Value, len(s.params))
	rem := index
	for i := len(s.params) - 1; i >= 0; i-- {
		p := s.params[i]
		values[p.Name] = p.Values[rem%len(p.Values)]
		rem /= len(p.Values)
	}
	return Combination{Index: index, Values: values}
}

// Combinations enumerates the Cartesian product lazily in odometer order.
// The sequence is finite and restartable: ranging over it again replays the
// same combinations.
func (s *Set) Combinations() iter.Seq[Combination] {
	return func(yield func(Combination) bool) {
		size := s.Size()
		for i := 0; i < size; i++ {
			if !yield(s.At(i)) {
				return
			}
		}
	}
}
