package testutil

import (
	"math"
	"testing"
)

func TestLogSpaced(t *testing.T) {
	x := LogSpaced(1, 100, 5)
	want := []float64{1, math.Sqrt(10), 10, 10 * math.Sqrt(10), 100}
	RequireSliceNearlyEqual(t, x, want, 1e-9)
	if x[0] != 1 || x[4] != 100 {
		t.Fatalf("bounds not exact: %v", x)
	}
}

func TestPowerLawIntegral(t *testing.T) {
	// x^2 over [1, 2]: (8-1)/3.
	got := PowerLawIntegral(1, 2, 1, 2)
	RequireNearlyEqual(t, got, 7.0/3.0, 1e-15)

	// 1/x over [1, e]: exactly 1.
	got = PowerLawIntegral(1, math.E, 1, -1)
	RequireNearlyEqual(t, got, 1, 1e-15)
}
