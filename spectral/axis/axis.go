package axis

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"

	"github.com/cwbudde/algo-gamma/quantity"
)

// ErrOutOfRange reports a bin-edge lookup outside the tabulated energy range.
var ErrOutOfRange = errors.New("energy outside axis range")

// Bin identifies the energy bin containing a query energy: the pixel indices
// of its lower and upper edge and the tabulated energies at those edges.
type Bin struct {
	Lo, Hi   int
	ELo, EHi quantity.Scalar
}

// LogEnergy is a log10 energy axis.
//
// It defines a transformation between energy, x = log10(energy) and a
// continuous pixel coordinate, where pixel i corresponds to x[i] and
// fractional pixels interpolate linearly in x.
type LogEnergy struct {
	energy quantity.Array
	x      []float64
	pix    []float64
	toPix  interp.PiecewiseLinear
	toX    interp.PiecewiseLinear
}

// NewLogEnergy builds a log energy axis from tabulated energies.
//
// The table must be non-empty, strictly positive and strictly increasing;
// non-positive energies have no logarithm and duplicates would make the
// transform non-invertible, so both are rejected.
func NewLogEnergy(energy quantity.Array) (*LogEnergy, error) {
	n := energy.Len()
	if n == 0 {
		return nil, fmt.Errorf("axis requires a non-empty energy table")
	}
	for i, e := range energy.Values {
		if e <= 0 {
			return nil, fmt.Errorf("axis energies must be > 0: %g at index %d", e, i)
		}
		if i > 0 && e <= energy.Values[i-1] {
			return nil, fmt.Errorf("axis energies must be strictly increasing at index %d", i)
		}
	}

	x := make([]float64, n)
	pix := make([]float64, n)
	for i, e := range energy.Values {
		x[i] = math.Log10(e)
		pix[i] = float64(i)
	}

	a := &LogEnergy{energy: energy, x: x, pix: pix}
	if n >= 2 {
		if err := a.toPix.Fit(x, pix); err != nil {
			return nil, err
		}
		if err := a.toX.Fit(pix, x); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Len returns the number of tabulated energies.
func (a *LogEnergy) Len() int { return a.energy.Len() }

// Energy returns the tabulated energy array the axis was built from.
func (a *LogEnergy) Energy() quantity.Array { return a.energy }

// WorldToPix converts energies to continuous pixel coordinates.
//
// Queries are converted to the axis unit first. Below the first or above the
// last tabulated energy the result clamps to the boundary pixel.
func (a *LogEnergy) WorldToPix(energy quantity.Array) ([]float64, error) {
	conv, err := energy.To(a.energy.Unit)
	if err != nil {
		return nil, err
	}
	out := make([]float64, conv.Len())
	for i, e := range conv.Values {
		out[i] = a.predictPix(math.Log10(e))
	}
	return out, nil
}

// PixToWorld converts continuous pixel coordinates to energies tagged with
// the axis unit. Coordinates outside [0, n-1] clamp to the boundary node.
func (a *LogEnergy) PixToWorld(pix []float64) quantity.Array {
	out := make([]float64, len(pix))
	for i, p := range pix {
		out[i] = math.Pow(10, a.predictX(p))
	}
	return quantity.NewArray(out, a.energy.Unit)
}

// ClosestPoint returns the index of the tabulated energy nearest to the
// query in log space. The query is converted to the axis unit first; ties
// break to the lowest index.
func (a *LogEnergy) ClosestPoint(energy quantity.Scalar) (int, error) {
	conv, err := energy.To(a.energy.Unit)
	if err != nil {
		return 0, err
	}
	q := math.Log10(conv.Value)
	best := 0
	bestDist := math.Abs(a.x[0] - q)
	for i := 1; i < len(a.x); i++ {
		if d := math.Abs(a.x[i] - q); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, nil
}

// BinEdges returns the bin containing the query energy, defined by the
// highest tabulated index i with energy[i] <= query (right-open bins).
//
// Queries below the first tabulated energy or at/above the last one have no
// enclosing bin and return [ErrOutOfRange].
func (a *LogEnergy) BinEdges(energy quantity.Scalar) (Bin, error) {
	conv, err := energy.To(a.energy.Unit)
	if err != nil {
		return Bin{}, err
	}
	q := conv.Value
	n := a.energy.Len()
	if q < a.energy.Values[0] || q >= a.energy.Values[n-1] {
		return Bin{}, fmt.Errorf("%w: %v not in [%g, %g)", ErrOutOfRange, conv, a.energy.Values[0], a.energy.Values[n-1])
	}

	// Last index with energy[i] <= q.
	i := sort.SearchFloat64s(a.energy.Values, q)
	if i == n || a.energy.Values[i] > q {
		i--
	}
	return Bin{Lo: i, Hi: i + 1, ELo: a.energy.At(i), EHi: a.energy.At(i + 1)}, nil
}

func (a *LogEnergy) predictPix(x float64) float64 {
	if len(a.x) == 1 {
		return 0
	}
	return a.toPix.Predict(x)
}

func (a *LogEnergy) predictX(pix float64) float64 {
	if len(a.x) == 1 {
		return a.x[0]
	}
	return a.toX.Predict(pix)
}
