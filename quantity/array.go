package quantity

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Array is a slice of values sharing one unit.
//
// Constructors keep the caller's backing slice; all operations that change
// values return a fresh slice and never mutate their inputs.
type Array struct {
	Values []float64
	Unit   Unit
}

// NewArray returns an array with the given values and unit.
func NewArray(values []float64, unit Unit) Array {
	return Array{Values: values, Unit: unit}
}

// PlainArray returns a dimensionless array.
func PlainArray(values []float64) Array {
	return Array{Values: values, Unit: One}
}

// Len returns the number of elements.
func (a Array) Len() int { return len(a.Values) }

// At returns element i as a scalar.
func (a Array) At(i int) Scalar {
	return Scalar{Value: a.Values[i], Unit: a.Unit}
}

// To converts the array to the target unit, allocating a fresh value slice.
func (a Array) To(unit Unit) (Array, error) {
	f, err := a.Unit.Factor(unit)
	if err != nil {
		return Array{}, err
	}
	out := make([]float64, len(a.Values))
	vecmath.ScaleBlock(out, a.Values, f)
	return Array{Values: out, Unit: unit}, nil
}

// Mul returns the elementwise product of two equal-length arrays; units
// multiply.
func (a Array) Mul(b Array) (Array, error) {
	if len(a.Values) != len(b.Values) {
		return Array{}, fmt.Errorf("array length mismatch: %d != %d", len(a.Values), len(b.Values))
	}
	out := make([]float64, len(a.Values))
	vecmath.MulBlock(out, a.Values, b.Values)
	return Array{Values: out, Unit: a.Unit.Mul(b.Unit)}, nil
}

// MulScalar returns the array scaled by a scalar; units multiply.
func (a Array) MulScalar(s Scalar) Array {
	out := make([]float64, len(a.Values))
	vecmath.ScaleBlock(out, a.Values, s.Value)
	return Array{Values: out, Unit: a.Unit.Mul(s.Unit)}
}

// Dimensionless returns the plain values after converting to [One]. It fails
// when the unit carries physical dimensions that do not cancel.
func (a Array) Dimensionless() ([]float64, error) {
	c, err := a.To(One)
	if err != nil {
		return nil, err
	}
	return c.Values, nil
}
