// Package integrate implements the log-log trapezoidal rule for spectral
// flux integrals.
//
// The rule treats each pair of adjacent samples as one segment of a local
// power law y = y1*(x/x1)^b and integrates that closed form, so it is exact
// (up to rounding) for any tabulated power law on any grid, where the plain
// linear-space trapezoidal rule is not. The b = -1 segment reduces to the
// logarithmic integral of 1/x and is handled by an explicit branch; segments
// with a zero sample or zero width contribute exactly zero, so no invalid
// logarithm or division is ever evaluated.
//
// [Spectrum] integrates a callback over a log-spaced grid at a configurable
// density of points per decade, the standard way flux integrals of spectral
// models without a closed form are evaluated.
package integrate
