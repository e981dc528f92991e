package counts

import (
	"fmt"

	"github.com/cwbudde/algo-gamma/quantity"
)

// SpectralModel integrates a differential flux over an energy bin.
type SpectralModel interface {
	Integral(emin, emax quantity.Scalar) (quantity.Scalar, error)
}

// AreaProvider exposes an effective-area table over true-energy bins.
type AreaProvider interface {
	EnergyEdges() quantity.Array
	Evaluate(fillNaN bool) quantity.Array
}

// DispersionProvider folds true-energy counts into reconstructed-energy
// counts, optionally re-binned onto a supplied axis.
type DispersionProvider interface {
	ERecoEdges() quantity.Array
	Apply(trueCounts []float64, eReco quantity.Array) ([]float64, error)
}

type config struct {
	recoEdges quantity.Array
}

// Option configures [Predict].
type Option func(*config)

// WithRecoEdges selects the reconstructed-energy axis of the output instead
// of the dispersion provider's default. Axes with fewer than 2 edges are
// ignored.
func WithRecoEdges(edges quantity.Array) Option {
	return func(cfg *config) {
		if edges.Len() >= 2 {
			cfg.recoEdges = edges
		}
	}
}

// Predict computes the expected counts per reconstructed-energy bin for a
// spectral model observed for livetime through the given responses.
//
// The model flux is integrated over each true-energy bin of the area table,
// multiplied by livetime and effective area (NaN area bins count as zero so
// they cannot poison the dispersion fold), and folded through the energy
// dispersion. The product must cancel to a plain number; leftover dimensions
// report a unit mismatch.
func Predict(model SpectralModel, aeff AreaProvider, edisp DispersionProvider, livetime quantity.Scalar, opts ...Option) (*Spectrum, error) {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	edges, err := aeff.EnergyEdges().To(quantity.TeV)
	if err != nil {
		return nil, err
	}
	if edges.Len() < 2 {
		return nil, fmt.Errorf("true-energy axis requires at least 2 bin edges: %d", edges.Len())
	}
	nbins := edges.Len() - 1

	flux, err := binFluxes(model, edges)
	if err != nil {
		return nil, err
	}

	area := aeff.Evaluate(true)
	if area.Len() != nbins {
		return nil, fmt.Errorf("effective area bin mismatch: %d areas for %d bins", area.Len(), nbins)
	}

	perArea := flux.MulScalar(livetime)
	counts, err := perArea.Mul(area)
	if err != nil {
		return nil, err
	}
	trueCounts, err := counts.Dimensionless()
	if err != nil {
		return nil, err
	}

	recoCounts, err := edisp.Apply(trueCounts, cfg.recoEdges)
	if err != nil {
		return nil, err
	}

	recoEdges := cfg.recoEdges
	if recoEdges.Len() == 0 {
		recoEdges = edisp.ERecoEdges()
	}
	return New(recoCounts, recoEdges)
}

// binFluxes integrates the model over each bin and collects the results on
// a common unit.
func binFluxes(model SpectralModel, edges quantity.Array) (quantity.Array, error) {
	nbins := edges.Len() - 1
	values := make([]float64, nbins)

	var unit quantity.Unit
	for i := 0; i < nbins; i++ {
		f, err := model.Integral(edges.At(i), edges.At(i+1))
		if err != nil {
			return quantity.Array{}, fmt.Errorf("bin %d: %w", i, err)
		}
		if i == 0 {
			unit = f.Unit
		} else if f, err = f.To(unit); err != nil {
			return quantity.Array{}, fmt.Errorf("bin %d: %w", i, err)
		}
		values[i] = f.Value
	}
	return quantity.NewArray(values, unit), nil
}
