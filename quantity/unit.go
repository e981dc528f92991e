// Package quantity provides unit-tagged scalars and arrays for spectral
// computations.
//
// A [Unit] carries integer dimension exponents over energy, length and time
// together with a scale factor to the base units (eV, cm, s). Two units are
// convertible exactly when their dimension vectors match; the conversion
// factor is the ratio of their scales. Dimensionless values are ordinary
// tagged values carrying [One], so unit-aware and plain-numeric code share a
// single path.
package quantity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit describes a physical unit as dimension exponents plus a scale factor
// to the base units eV, cm and s.
type Unit struct {
	symbol string
	scale  float64
	energy int
	length int
	time   int
}

// Predefined units. Composites follow the compact astronomical notation,
// e.g. "cm-2 s-1 TeV-1" for a differential photon flux.
var (
	One = Unit{symbol: "", scale: 1}

	EV  = Unit{symbol: "eV", scale: 1, energy: 1}
	KeV = Unit{symbol: "keV", scale: 1e3, energy: 1}
	MeV = Unit{symbol: "MeV", scale: 1e6, energy: 1}
	GeV = Unit{symbol: "GeV", scale: 1e9, energy: 1}
	TeV = Unit{symbol: "TeV", scale: 1e12, energy: 1}
	Erg = Unit{symbol: "erg", scale: 6.241509074e11, energy: 1}

	Second = Unit{symbol: "s", scale: 1, time: 1}
	Minute = Unit{symbol: "min", scale: 60, time: 1}
	Hour   = Unit{symbol: "h", scale: 3600, time: 1}
	Day    = Unit{symbol: "d", scale: 86400, time: 1}

	Cm = Unit{symbol: "cm", scale: 1, length: 1}
	M  = Unit{symbol: "m", scale: 100, length: 1}

	Cm2 = Unit{symbol: "cm2", scale: 1, length: 2}
	M2  = Unit{symbol: "m2", scale: 1e4, length: 2}

	// PerCm2Sec is an integrated photon flux, cm-2 s-1.
	PerCm2Sec = Unit{symbol: "cm-2 s-1", scale: 1, length: -2, time: -1}

	// PerCm2SecTeV is a differential photon flux, cm-2 s-1 TeV-1.
	PerCm2SecTeV = Unit{symbol: "cm-2 s-1 TeV-1", scale: 1e-12, energy: -1, length: -2, time: -1}

	// PerTeV is an inverse energy, TeV-1, e.g. an exponential cutoff rate.
	PerTeV = Unit{symbol: "TeV-1", scale: 1e-12, energy: -1}
)

// ConvertibleTo reports whether values in u can be converted to v, i.e.
// whether both units have the same physical dimensions.
func (u Unit) ConvertibleTo(v Unit) bool {
	return u.energy == v.energy && u.length == v.length && u.time == v.time
}

// Factor returns the multiplicative factor converting a value in u to v.
func (u Unit) Factor(v Unit) (float64, error) {
	if !u.ConvertibleTo(v) {
		return 0, fmt.Errorf("%w: cannot convert %q to %q", ErrUnitMismatch, u, v)
	}
	return u.scale / v.scale, nil
}

// Mul returns the product unit.
func (u Unit) Mul(v Unit) Unit {
	return Unit{
		symbol: mulSymbol(u.symbol, v.symbol),
		scale:  u.scale * v.scale,
		energy: u.energy + v.energy,
		length: u.length + v.length,
		time:   u.time + v.time,
	}
}

// Div returns the quotient unit.
func (u Unit) Div(v Unit) Unit {
	return u.Mul(v.Pow(-1))
}

// Pow returns the unit raised to an integer power.
func (u Unit) Pow(n int) Unit {
	return Unit{
		symbol: powSymbol(u.symbol, n),
		scale:  math.Pow(u.scale, float64(n)),
		energy: u.energy * n,
		length: u.length * n,
		time:   u.time * n,
	}
}

// Dimensionless reports whether the unit has no physical dimensions.
func (u Unit) Dimensionless() bool {
	return u.energy == 0 && u.length == 0 && u.time == 0
}

// String returns the display symbol. Symbols of derived units are composed
// mechanically and serve display only; conversion and equality always go
// through dimensions and scale.
func (u Unit) String() string {
	if u.symbol == "" && u.Dimensionless() {
		return ""
	}
	return u.symbol
}

func mulSymbol(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}

func powSymbol(s string, n int) string {
	if s == "" || n == 1 {
		return s
	}
	parts := strings.Fields(s)
	for i, p := range parts {
		parts[i] = p + strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
