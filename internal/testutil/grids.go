package testutil

import "math"

// LogSpaced returns n points between lo and hi inclusive, equally spaced in
// log10. lo and hi must be positive and n at least 2.
func LogSpaced(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	llo := math.Log10(lo)
	step := (math.Log10(hi) - llo) / float64(n-1)
	for i := range out {
		out[i] = math.Pow(10, llo+float64(i)*step)
	}
	out[0] = lo
	out[n-1] = hi
	return out
}

// PowerLaw evaluates amplitude * x^index at each grid point.
func PowerLaw(x []float64, amplitude, index float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = amplitude * math.Pow(v, index)
	}
	return out
}

// PowerLawIntegral returns the analytic integral of amplitude * x^index over
// [lo, hi], including the logarithmic index = -1 case.
func PowerLawIntegral(lo, hi, amplitude, index float64) float64 {
	if index == -1 {
		return amplitude * math.Log(hi/lo)
	}
	p := index + 1
	return amplitude * (math.Pow(hi, p) - math.Pow(lo, p)) / p
}
