package flux

import (
	"math"

	"github.com/cwbudde/algo-gamma/quantity"
)

// PowerLaw is dN/dE = Amplitude * (E/Reference)^-Index.
type PowerLaw struct {
	Index     float64
	Amplitude quantity.Scalar
	Reference quantity.Scalar
}

func (m PowerLaw) validate() error {
	if err := checkAmplitude(m.Amplitude); err != nil {
		return err
	}
	return checkReference(m.Reference)
}

// Eval returns dN/dE at each grid energy in the amplitude's unit.
func (m PowerLaw) Eval(e quantity.Array) (quantity.Array, error) {
	if err := m.validate(); err != nil {
		return quantity.Array{}, err
	}
	conv, err := e.To(m.Reference.Unit)
	if err != nil {
		return quantity.Array{}, err
	}
	out := make([]float64, conv.Len())
	for i, v := range conv.Values {
		out[i] = m.Amplitude.Value * math.Pow(v/m.Reference.Value, -m.Index)
	}
	return quantity.NewArray(out, m.Amplitude.Unit), nil
}

// Integral returns the analytic flux integral over [emin, emax].
//
// For Index == 1 the antiderivative is logarithmic, the same singularity the
// log-log trapezoidal rule meets at a local index of -1.
func (m PowerLaw) Integral(emin, emax quantity.Scalar) (quantity.Scalar, error) {
	if err := m.validate(); err != nil {
		return quantity.Scalar{}, err
	}
	lo, err := emin.To(m.Reference.Unit)
	if err != nil {
		return quantity.Scalar{}, err
	}
	lo, hi, err := binBounds(lo, emax)
	if err != nil {
		return quantity.Scalar{}, err
	}

	e0 := m.Reference.Value
	unit := m.Amplitude.Unit.Mul(m.Reference.Unit)

	if math.Abs(m.Index-1) < singularIndexTol {
		v := m.Amplitude.Value * e0 * math.Log(hi.Value/lo.Value)
		return quantity.New(v, unit), nil
	}

	p := 1 - m.Index
	v := m.Amplitude.Value * e0 / p * (math.Pow(hi.Value/e0, p) - math.Pow(lo.Value/e0, p))
	return quantity.New(v, unit), nil
}

// singularIndexTol matches the tolerance the trapezoidal rule uses for its
// logarithmic branch.
const singularIndexTol = 1e-10
