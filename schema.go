package gridsweep

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// resultSchema describes the structure shared by every raw result: either a
// single scalar or a fixed set of named fields. The schema is inferred from
// the first result and enforced against all later ones.
type resultSchema struct {
	scalar bool
	fields []string
	ty     cty.Type
}

// scalarVarName is the dataset variable under which scalar results are stored.
const scalarVarName = "value"

// inferSchema derives the result schema from the first raw result. A cty
// object value maps to named fields (in lexicographic order, since object
// attributes carry no order); anything else is treated as a scalar.
func inferSchema(v cty.Value) (resultSchema, error) {
	if v == cty.NilVal {
		return resultSchema{}, fmt.Errorf("%w: function returned no value", ErrInconsistentShape)
	}
	if v.IsNull() {
		return resultSchema{}, fmt.Errorf("%w: function returned a null value", ErrInconsistentShape)
	}

	ty := v.Type()
	if ty.IsObjectType() {
		fields := make([]string, 0, len(ty.AttributeTypes()))
		for name := range ty.AttributeTypes() {
			fields = append(fields, name)
		}
		if len(fields) == 0 {
			return resultSchema{}, fmt.Errorf("%w: structured result has no fields", ErrInconsistentShape)
		}
		sort.Strings(fields)
		return resultSchema{fields: fields, ty: ty}, nil
	}
	return resultSchema{scalar: true, ty: ty}, nil
}

// check verifies that a later result matches the inferred schema.
func (s resultSchema) check(v cty.Value) error {
	if v == cty.NilVal || v.IsNull() {
		return fmt.Errorf("%w: expected %s, got null", ErrInconsistentShape, s.ty.FriendlyName())
	}
	if !v.Type().Equals(s.ty) {
		return fmt.Errorf("%w: expected %s, got %s",
			ErrInconsistentShape, s.ty.FriendlyName(), v.Type().FriendlyName())
	}
	return nil
}

// varNames returns the dataset variable names produced by this schema.
func (s resultSchema) varNames() []string {
	if s.scalar {
		return []string{scalarVarName}
	}
	return s.fields
}

// extract pulls the named field out of a raw result. For scalar schemas the
// result itself is the value regardless of field name.
func (s resultSchema) extract(v cty.Value, field string) cty.Value {
	if s.scalar {
		return v
	}
	return v.GetAttr(field)
}
