package flux

import (
	"math"

	"github.com/cwbudde/algo-gamma/quantity"
	"github.com/cwbudde/algo-gamma/spectral/integrate"
)

// LogParabola is dN/dE = Amplitude * (E/Reference)^-(Alpha + Beta*ln(E/Reference)).
//
// Beta = 0 reduces to a [PowerLaw] with index Alpha.
type LogParabola struct {
	Alpha     float64
	Beta      float64
	Amplitude quantity.Scalar
	Reference quantity.Scalar
}

func (m LogParabola) validate() error {
	if err := checkAmplitude(m.Amplitude); err != nil {
		return err
	}
	return checkReference(m.Reference)
}

// Eval returns dN/dE at each grid energy in the amplitude's unit.
func (m LogParabola) Eval(e quantity.Array) (quantity.Array, error) {
	if err := m.validate(); err != nil {
		return quantity.Array{}, err
	}
	conv, err := e.To(m.Reference.Unit)
	if err != nil {
		return quantity.Array{}, err
	}
	out := make([]float64, conv.Len())
	for i, v := range conv.Values {
		r := v / m.Reference.Value
		out[i] = m.Amplitude.Value * math.Pow(r, -(m.Alpha+m.Beta*math.Log(r)))
	}
	return quantity.NewArray(out, m.Amplitude.Unit), nil
}

// Integral integrates the flux numerically on a log-spaced grid.
func (m LogParabola) Integral(emin, emax quantity.Scalar) (quantity.Scalar, error) {
	if err := m.validate(); err != nil {
		return quantity.Scalar{}, err
	}
	return integrate.Spectrum(m.Eval, emin, emax)
}
