// Package axis maps between physical energies and continuous pixel
// coordinates on a log10 energy scale.
//
// A [LogEnergy] axis is built once from a tabulated energy array and is
// immutable afterwards. Both transform directions share one piecewise-linear
// interpolant over (log10 energy, pixel index), so they are exact inverses at
// the tabulated nodes and clamp to the boundary node outside the table.
package axis
