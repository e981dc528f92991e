package flux

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-gamma/quantity"
)

// Model is a spectral model: a differential photon flux as a function of
// energy, together with its definite integral over an energy bin.
type Model interface {
	// Eval returns dN/dE at each grid energy.
	Eval(e quantity.Array) (quantity.Array, error)
	// Integral returns the flux integrated over [emin, emax].
	Integral(emin, emax quantity.Scalar) (quantity.Scalar, error)
}

// binBounds converts emax to emin's unit and validates the bin.
func binBounds(emin, emax quantity.Scalar) (lo, hi quantity.Scalar, err error) {
	hi, err = emax.To(emin.Unit)
	if err != nil {
		return quantity.Scalar{}, quantity.Scalar{}, err
	}
	if emin.Value <= 0 {
		return quantity.Scalar{}, quantity.Scalar{}, fmt.Errorf("bin emin must be > 0: %g", emin.Value)
	}
	if hi.Value <= emin.Value {
		return quantity.Scalar{}, quantity.Scalar{}, fmt.Errorf("bin must satisfy emax > emin: %g <= %g", hi.Value, emin.Value)
	}
	return emin, hi, nil
}

// checkReference validates a model's reference energy.
func checkReference(reference quantity.Scalar) error {
	if !reference.Unit.ConvertibleTo(quantity.TeV) {
		return fmt.Errorf("%w: model reference must be an energy, got %q", quantity.ErrUnitMismatch, reference.Unit)
	}
	if reference.Value <= 0 || math.IsNaN(reference.Value) {
		return fmt.Errorf("model reference energy must be > 0: %g", reference.Value)
	}
	return nil
}

// checkAmplitude validates a model's amplitude as a differential flux.
func checkAmplitude(amplitude quantity.Scalar) error {
	if !amplitude.Unit.ConvertibleTo(quantity.PerCm2SecTeV) {
		return fmt.Errorf("%w: model amplitude must be a differential flux, got %q", quantity.ErrUnitMismatch, amplitude.Unit)
	}
	if amplitude.Value < 0 || math.IsNaN(amplitude.Value) {
		return fmt.Errorf("model amplitude must be >= 0: %g", amplitude.Value)
	}
	return nil
}
