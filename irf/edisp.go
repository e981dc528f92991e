package irf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-gamma/quantity"
)

// EnergyDispersion is a migration matrix from true-energy to
// reconstructed-energy bins.
//
// Row i holds the probability distribution of the reconstructed energy for
// events in true bin i. Rows may sum to less than one: mass migrating
// outside the reconstructed range is truncated, which is physical.
type EnergyDispersion struct {
	eTrue quantity.Array // n+1 true-energy bin edges
	eReco quantity.Array // m+1 reco-energy bin edges
	migra *mat.Dense     // n x m
}

// NewEnergyDispersion builds a dispersion from true and reconstructed bin
// edges and an n x m migration matrix.
func NewEnergyDispersion(eTrue, eReco quantity.Array, migra *mat.Dense) (*EnergyDispersion, error) {
	if err := validateEdges("true", eTrue); err != nil {
		return nil, err
	}
	if err := validateEdges("reco", eReco); err != nil {
		return nil, err
	}
	r, c := migra.Dims()
	if r != eTrue.Len()-1 || c != eReco.Len()-1 {
		return nil, fmt.Errorf("migration matrix is %dx%d for %d true and %d reco bins",
			r, c, eTrue.Len()-1, eReco.Len()-1)
	}
	return &EnergyDispersion{eTrue: eTrue, eReco: eReco, migra: migra}, nil
}

// NewEnergyDispersionFromGauss builds a dispersion whose migration
// distribution per true bin is Gaussian in Ereco/Etrue with the given width
// and relative bias, evaluated at the logarithmic center of each true bin.
func NewEnergyDispersionFromGauss(eTrue, eReco quantity.Array, sigma, bias float64) (*EnergyDispersion, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("dispersion sigma must be > 0: %g", sigma)
	}
	if err := validateEdges("true", eTrue); err != nil {
		return nil, err
	}
	if err := validateEdges("reco", eReco); err != nil {
		return nil, err
	}
	reco, err := eReco.To(eTrue.Unit)
	if err != nil {
		return nil, err
	}

	n := eTrue.Len() - 1
	m := reco.Len() - 1
	dist := distuv.Normal{Mu: 1 + bias, Sigma: sigma}

	migra := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		center := logCenter(eTrue.Values[i], eTrue.Values[i+1])
		for j := 0; j < m; j++ {
			lo := reco.Values[j] / center
			hi := reco.Values[j+1] / center
			migra.Set(i, j, dist.CDF(hi)-dist.CDF(lo))
		}
	}
	return &EnergyDispersion{eTrue: eTrue, eReco: eReco, migra: migra}, nil
}

// ETrueEdges returns the true-energy bin edges.
func (d *EnergyDispersion) ETrueEdges() quantity.Array { return d.eTrue }

// ERecoEdges returns the default reconstructed-energy bin edges.
func (d *EnergyDispersion) ERecoEdges() quantity.Array { return d.eReco }

// Apply folds a true-energy counts vector through the migration matrix.
//
// When eReco is non-empty the folded vector is re-binned onto that axis by
// overlap-fraction mass redistribution, which conserves counts inside the
// covered range. trueCounts must have one entry per true bin.
func (d *EnergyDispersion) Apply(trueCounts []float64, eReco quantity.Array) ([]float64, error) {
	n, m := d.migra.Dims()
	if len(trueCounts) != n {
		return nil, fmt.Errorf("true counts length mismatch: %d counts for %d bins", len(trueCounts), n)
	}

	var folded mat.VecDense
	folded.MulVec(d.migra.T(), mat.NewVecDense(n, trueCounts))

	out := make([]float64, m)
	copy(out, folded.RawVector().Data)

	if eReco.Len() == 0 {
		return out, nil
	}
	if err := validateEdges("reco", eReco); err != nil {
		return nil, err
	}
	target, err := eReco.To(d.eReco.Unit)
	if err != nil {
		return nil, err
	}
	return rebin(out, d.eReco.Values, target.Values), nil
}

// rebin redistributes per-bin masses from source onto target edges in
// proportion to bin overlap, assuming mass is uniform within a source bin.
func rebin(mass, source, target []float64) []float64 {
	out := make([]float64, len(target)-1)
	for j := range out {
		tLo, tHi := target[j], target[j+1]
		for i := range mass {
			if mass[i] == 0 {
				continue
			}
			sLo, sHi := source[i], source[i+1]
			lo := math.Max(sLo, tLo)
			hi := math.Min(sHi, tHi)
			if hi > lo {
				out[j] += mass[i] * (hi - lo) / (sHi - sLo)
			}
		}
	}
	return out
}

func validateEdges(name string, edges quantity.Array) error {
	if edges.Len() < 2 {
		return fmt.Errorf("dispersion %s axis requires at least 2 bin edges: %d", name, edges.Len())
	}
	if !edges.Unit.ConvertibleTo(quantity.TeV) {
		return fmt.Errorf("%w: dispersion %s edges must be energies, got %q", quantity.ErrUnitMismatch, name, edges.Unit)
	}
	for i, e := range edges.Values {
		if e <= 0 {
			return fmt.Errorf("dispersion %s edges must be > 0: %g at index %d", name, e, i)
		}
		if i > 0 && e <= edges.Values[i-1] {
			return fmt.Errorf("dispersion %s edges must be strictly increasing at index %d", name, i)
		}
	}
	return nil
}

func logCenter(lo, hi float64) float64 {
	return math.Sqrt(lo * hi)
}
