package irf

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-gamma/quantity"
)

// EffectiveAreaTable holds per-bin effective areas over true-energy bins.
//
// Bins outside the calibrated range may hold NaN; Evaluate can replace those
// with zero so downstream matrix folds stay finite.
type EffectiveAreaTable struct {
	edges quantity.Array // n+1 bin edges
	area  quantity.Array // n per-bin areas
}

// NewEffectiveArea builds a table from strictly increasing energy bin edges
// and one area value per bin.
func NewEffectiveArea(edges, area quantity.Array) (*EffectiveAreaTable, error) {
	if edges.Len() < 2 {
		return nil, fmt.Errorf("effective area requires at least 2 bin edges: %d", edges.Len())
	}
	if area.Len() != edges.Len()-1 {
		return nil, fmt.Errorf("effective area bin count mismatch: %d areas for %d edges", area.Len(), edges.Len())
	}
	if !edges.Unit.ConvertibleTo(quantity.TeV) {
		return nil, fmt.Errorf("%w: effective area edges must be energies, got %q", quantity.ErrUnitMismatch, edges.Unit)
	}
	if !area.Unit.ConvertibleTo(quantity.Cm2) {
		return nil, fmt.Errorf("%w: effective area values must be areas, got %q", quantity.ErrUnitMismatch, area.Unit)
	}
	for i, e := range edges.Values {
		if e <= 0 {
			return nil, fmt.Errorf("effective area edges must be > 0: %g at index %d", e, i)
		}
		if i > 0 && e <= edges.Values[i-1] {
			return nil, fmt.Errorf("effective area edges must be strictly increasing at index %d", i)
		}
	}
	return &EffectiveAreaTable{edges: edges, area: area}, nil
}

// EnergyEdges returns the true-energy bin edges.
func (t *EffectiveAreaTable) EnergyEdges() quantity.Array { return t.edges }

// Evaluate returns a fresh copy of the per-bin areas. With fillNaN, NaN bins
// are replaced by zero.
func (t *EffectiveAreaTable) Evaluate(fillNaN bool) quantity.Array {
	out := make([]float64, t.area.Len())
	copy(out, t.area.Values)
	if fillNaN {
		for i, v := range out {
			if math.IsNaN(v) {
				out[i] = 0
			}
		}
	}
	return quantity.NewArray(out, t.area.Unit)
}

// Instrument selects a published effective-area parametrization.
type Instrument int

// Supported parametrizations.
const (
	InstrumentHESS Instrument = iota
	InstrumentHESS2
	InstrumentCTA
)

// g1..g3 of A(x) = g1 * x^-g2 * exp(-g3/x), x = E/MeV, area in cm2.
var instrumentPars = map[Instrument][3]float64{
	InstrumentHESS:  {6.85e9, 0.0891, 5e5},
	InstrumentHESS2: {2.05e9, 0.0891, 1e5},
	InstrumentCTA:   {1.71e11, 0.0891, 1e5},
}

// NewEffectiveAreaFromParametrization builds a table from the one-parameter
// effective-area family for the given instrument, evaluated at the
// logarithmic center of each bin.
func NewEffectiveAreaFromParametrization(edges quantity.Array, instrument Instrument) (*EffectiveAreaTable, error) {
	pars, ok := instrumentPars[instrument]
	if !ok {
		return nil, fmt.Errorf("unknown instrument: %d", instrument)
	}
	mev, err := edges.To(quantity.MeV)
	if err != nil {
		return nil, err
	}
	if mev.Len() < 2 {
		return nil, fmt.Errorf("effective area requires at least 2 bin edges: %d", mev.Len())
	}

	area := make([]float64, mev.Len()-1)
	for i := range area {
		x := math.Sqrt(mev.Values[i] * mev.Values[i+1])
		area[i] = pars[0] * math.Pow(x, -pars[1]) * math.Exp(-pars[2]/x)
	}
	return NewEffectiveArea(edges, quantity.NewArray(area, quantity.Cm2))
}
