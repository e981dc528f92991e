// Package irf provides table-backed instrument response functions: an
// effective-area table and an energy-dispersion matrix mapping true to
// reconstructed energy.
package irf
