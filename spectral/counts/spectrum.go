// Package counts assembles predicted event counts from a spectral model and
// instrument response functions.
package counts

import (
	"fmt"

	"github.com/cwbudde/algo-gamma/quantity"
)

// Spectrum is a counts vector over reconstructed-energy bins, paired with
// the bin edges it was computed on.
type Spectrum struct {
	Data   []float64
	Energy quantity.Array
}

// New builds a counts spectrum from per-bin counts and their bin edges.
func New(data []float64, energy quantity.Array) (*Spectrum, error) {
	if energy.Len() != len(data)+1 {
		return nil, fmt.Errorf("counts bin mismatch: %d counts for %d edges", len(data), energy.Len())
	}
	return &Spectrum{Data: data, Energy: energy}, nil
}

// Total returns the summed counts.
func (s *Spectrum) Total() float64 {
	sum := 0.0
	for _, v := range s.Data {
		sum += v
	}
	return sum
}
