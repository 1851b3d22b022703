package grid

import "github.com/zclconf/go-cty/cty"

// Numbers lifts float64 values into cty numbers.
func Numbers(vs ...float64) []cty.Value {
	out := make([]cty.Value, len(vs))
	for i, v := range vs {
		out[i] = cty.NumberFloatVal(v)
	}
	return out
}

// Ints lifts int values into cty numbers.
func Ints(vs ...int) []cty.Value {
	out := make([]cty.Value, len(vs))
	for i, v := range vs {
		out[i] = cty.NumberIntVal(int64(v))
	}
	return out
}

// Strings lifts string values into cty strings.
func Strings(vs ...string) []cty.Value {
	out := make([]cty.Value, len(vs))
	for i, v := range vs {
		out[i] = cty.StringVal(v)
	}
	return out
}

// Bools lifts bool values into cty bools.
func Bools(vs ...bool) []cty.Value {
	out := make([]cty.Value, len(vs))
	for i, v := range vs {
		out[i] = cty.BoolVal(v)
	}
	return out
}
