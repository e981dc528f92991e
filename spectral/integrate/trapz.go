package integrate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-gamma/quantity"
)

// singularIndexTol bounds |b+1| below which a segment is integrated with the
// logarithmic branch instead of the power-law closed form.
const singularIndexTol = 1e-10

// segment integrates one local power law y = y1*(x/x1)^b over [x1, x2].
//
// Degenerate segments are decided before any arithmetic so the logarithm and
// the division are never evaluated on invalid input. A non-finite value from
// pathological samples (negative y, infinities) is forced to zero so it can
// never poison the sum.
func segment(x1, x2, y1, y2 float64) float64 {
	if y1 == 0 || y2 == 0 || x1 == x2 {
		return 0
	}

	b := math.Log10(y2/y1) / math.Log10(x2/x1)

	var v float64
	if math.Abs(b+1) <= singularIndexTol {
		v = x1 * y1 * math.Log(x2/x1)
	} else {
		v = y1 * (x2*math.Pow(x2/x1, b) - x1) / (b + 1)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func segments(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("trapz x/y length mismatch: %d != %d", len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("trapz requires at least 2 samples: %d", len(x))
	}
	out := make([]float64, len(x)-1)
	for i := range out {
		out[i] = segment(x[i], x[i+1], y[i], y[i+1])
	}
	return out, nil
}

// TrapzLogLogFloats integrates tabulated plain-numeric samples with the
// log-log trapezoidal rule.
func TrapzLogLogFloats(x, y []float64) (float64, error) {
	segs, err := segments(x, y)
	if err != nil {
		return 0, err
	}
	return floats.Sum(segs), nil
}

// TrapzLogLog integrates tabulated unit-tagged samples. Units are divided
// out before the numeric work and the result carries x.Unit * y.Unit.
func TrapzLogLog(x, y quantity.Array) (quantity.Scalar, error) {
	v, err := TrapzLogLogFloats(x.Values, y.Values)
	if err != nil {
		return quantity.Scalar{}, err
	}
	return quantity.New(v, x.Unit.Mul(y.Unit)), nil
}

// TrapzLogLogIntervals returns the per-segment partial integrals instead of
// their sum. The result has length len(x)-1 and carries x.Unit * y.Unit.
func TrapzLogLogIntervals(x, y quantity.Array) (quantity.Array, error) {
	segs, err := segments(x.Values, y.Values)
	if err != nil {
		return quantity.Array{}, err
	}
	return quantity.NewArray(segs, x.Unit.Mul(y.Unit)), nil
}

// TrapzLogLogAxis integrates a matrix of samples along the selected axis
// against a shared x grid: axis 1 integrates each row, axis 0 each column.
func TrapzLogLogAxis(x []float64, y mat.Matrix, axis int) ([]float64, error) {
	if len(x) < 2 {
		return nil, fmt.Errorf("trapz requires at least 2 samples: %d", len(x))
	}
	r, c := y.Dims()

	switch axis {
	case 1:
		if c != len(x) {
			return nil, fmt.Errorf("trapz row length mismatch: %d != %d", c, len(x))
		}
		out := make([]float64, r)
		for i := 0; i < r; i++ {
			sum := 0.0
			for j := 0; j < c-1; j++ {
				sum += segment(x[j], x[j+1], y.At(i, j), y.At(i, j+1))
			}
			out[i] = sum
		}
		return out, nil
	case 0:
		if r != len(x) {
			return nil, fmt.Errorf("trapz column length mismatch: %d != %d", r, len(x))
		}
		out := make([]float64, c)
		for j := 0; j < c; j++ {
			sum := 0.0
			for i := 0; i < r-1; i++ {
				sum += segment(x[i], x[i+1], y.At(i, j), y.At(i+1, j))
			}
			out[j] = sum
		}
		return out, nil
	default:
		return nil, fmt.Errorf("trapz axis must be 0 or 1: %d", axis)
	}
}
