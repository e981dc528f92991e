package quantity

import "fmt"

// Scalar is a single value tagged with a unit.
type Scalar struct {
	Value float64
	Unit  Unit
}

// New returns a scalar with the given value and unit.
func New(value float64, unit Unit) Scalar {
	return Scalar{Value: value, Unit: unit}
}

// Plain returns a dimensionless scalar.
func Plain(value float64) Scalar {
	return Scalar{Value: value, Unit: One}
}

// To converts the scalar to the target unit.
func (s Scalar) To(unit Unit) (Scalar, error) {
	f, err := s.Unit.Factor(unit)
	if err != nil {
		return Scalar{}, err
	}
	return Scalar{Value: s.Value * f, Unit: unit}, nil
}

// Mul returns the product of two scalars; units multiply.
func (s Scalar) Mul(o Scalar) Scalar {
	return Scalar{Value: s.Value * o.Value, Unit: s.Unit.Mul(o.Unit)}
}

// Div returns the quotient of two scalars; units divide.
func (s Scalar) Div(o Scalar) Scalar {
	return Scalar{Value: s.Value / o.Value, Unit: s.Unit.Div(o.Unit)}
}

// Dimensionless returns the plain value after converting to [One]. It fails
// when the unit carries physical dimensions that do not cancel.
func (s Scalar) Dimensionless() (float64, error) {
	c, err := s.To(One)
	if err != nil {
		return 0, err
	}
	return c.Value, nil
}

// String formats the value followed by the unit symbol.
func (s Scalar) String() string {
	sym := s.Unit.String()
	if sym == "" {
		return fmt.Sprintf("%g", s.Value)
	}
	return fmt.Sprintf("%g %s", s.Value, sym)
}
