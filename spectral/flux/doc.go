// Package flux provides spectral models for differential photon fluxes.
//
// Every model evaluates dN/dE on an energy grid and integrates itself over
// an energy bin. The power law carries an analytic integral; models without
// a closed form integrate numerically on a log-spaced grid.
package flux
