package flux

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-gamma/internal/testutil"
	"github.com/cwbudde/algo-gamma/quantity"
	"github.com/cwbudde/algo-gamma/spectral/integrate"
)

func testPowerLaw(index float64) PowerLaw {
	return PowerLaw{
		Index:     index,
		Amplitude: quantity.New(2.5e-12, quantity.PerCm2SecTeV),
		Reference: quantity.New(1, quantity.TeV),
	}
}

func TestPowerLawIntegralAnalytic(t *testing.T) {
	m := testPowerLaw(2.3)

	got, err := m.Integral(quantity.New(1, quantity.TeV), quantity.New(10, quantity.TeV))
	if err != nil {
		t.Fatalf("Integral: %v", err)
	}

	// A * E0/(1-g) * ((emax/E0)^(1-g) - (emin/E0)^(1-g))
	want := 2.5e-12 / (1 - 2.3) * (0.050118723362727144 - 1)
	flux, err := got.To(quantity.PerCm2Sec)
	if err != nil {
		t.Fatalf("To: %v", err)
	}
	testutil.RequireNearlyEqual(t, flux.Value, want, 1e-12)
}

func TestPowerLawIntegralLogBranch(t *testing.T) {
	m := testPowerLaw(1)

	got, err := m.Integral(quantity.New(1, quantity.TeV), quantity.New(100, quantity.TeV))
	if err != nil {
		t.Fatalf("Integral: %v", err)
	}
	want := 2.5e-12 * 4.605170185988092 // A * E0 * ln(100)
	testutil.RequireNearlyEqual(t, got.Value, want, 1e-12)
}

func TestPowerLawIntegralMatchesNumeric(t *testing.T) {
	m := testPowerLaw(2.3)
	emin := quantity.New(0.5, quantity.TeV)
	emax := quantity.New(50, quantity.TeV)

	analytic, err := m.Integral(emin, emax)
	if err != nil {
		t.Fatalf("Integral: %v", err)
	}
	numeric, err := integrate.Spectrum(m.Eval, emin, emax)
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}
	testutil.RequireNearlyEqual(t, numeric.Value, analytic.Value, 1e-10)
}

func TestPowerLawIntegralUnitConversion(t *testing.T) {
	m := testPowerLaw(2)

	a, err := m.Integral(quantity.New(1, quantity.TeV), quantity.New(10, quantity.TeV))
	if err != nil {
		t.Fatalf("Integral: %v", err)
	}
	b, err := m.Integral(quantity.New(1000, quantity.GeV), quantity.New(10000, quantity.GeV))
	if err != nil {
		t.Fatalf("Integral: %v", err)
	}
	testutil.RequireNearlyEqual(t, b.Value, a.Value, 1e-12)
}

func TestPowerLawValidation(t *testing.T) {
	m := PowerLaw{
		Index:     2,
		Amplitude: quantity.New(1e-12, quantity.Cm2), // wrong dimensions
		Reference: quantity.New(1, quantity.TeV),
	}
	if _, err := m.Integral(quantity.New(1, quantity.TeV), quantity.New(10, quantity.TeV)); !errors.Is(err, quantity.ErrUnitMismatch) {
		t.Fatalf("expected ErrUnitMismatch, got %v", err)
	}

	m = testPowerLaw(2)
	if _, err := m.Integral(quantity.New(10, quantity.TeV), quantity.New(1, quantity.TeV)); err == nil {
		t.Fatal("expected inverted bin error")
	}
	if _, err := m.Integral(quantity.New(-1, quantity.TeV), quantity.New(1, quantity.TeV)); err == nil {
		t.Fatal("expected negative emin error")
	}
}

func TestExpCutoffApproachesPowerLaw(t *testing.T) {
	pl := testPowerLaw(2.3)
	ecpl := ExpCutoffPowerLaw{
		Index:     2.3,
		Amplitude: pl.Amplitude,
		Reference: pl.Reference,
		Lambda:    quantity.New(1e-6, quantity.PerTeV),
	}

	emin := quantity.New(1, quantity.TeV)
	emax := quantity.New(10, quantity.TeV)

	want, err := pl.Integral(emin, emax)
	if err != nil {
		t.Fatalf("PowerLaw.Integral: %v", err)
	}
	got, err := ecpl.Integral(emin, emax)
	if err != nil {
		t.Fatalf("ExpCutoffPowerLaw.Integral: %v", err)
	}
	testutil.RequireNearlyEqual(t, got.Value, want.Value, 1e-4)
}

func TestExpCutoffSuppressesHighEnergies(t *testing.T) {
	ecpl := ExpCutoffPowerLaw{
		Index:     2,
		Amplitude: quantity.New(1e-12, quantity.PerCm2SecTeV),
		Reference: quantity.New(1, quantity.TeV),
		Lambda:    quantity.New(0.1, quantity.PerTeV),
	}

	y, err := ecpl.Eval(quantity.NewArray([]float64{1, 10, 100}, quantity.TeV))
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	want := []float64{
		1e-12 * math.Exp(-0.1),
		1e-12 * 1e-2 * math.Exp(-1),
		1e-12 * 1e-4 * math.Exp(-10),
	}
	for i := range want {
		testutil.RequireNearlyEqual(t, y.Values[i], want[i], 1e-12)
	}
}

func TestLogParabolaReducesToPowerLaw(t *testing.T) {
	lp := LogParabola{
		Alpha:     2.3,
		Beta:      0,
		Amplitude: quantity.New(2.5e-12, quantity.PerCm2SecTeV),
		Reference: quantity.New(1, quantity.TeV),
	}
	pl := testPowerLaw(2.3)

	emin := quantity.New(0.1, quantity.TeV)
	emax := quantity.New(10, quantity.TeV)

	want, err := pl.Integral(emin, emax)
	if err != nil {
		t.Fatalf("PowerLaw.Integral: %v", err)
	}
	got, err := lp.Integral(emin, emax)
	if err != nil {
		t.Fatalf("LogParabola.Integral: %v", err)
	}
	testutil.RequireNearlyEqual(t, got.Value, want.Value, 1e-6)
}

func TestLogParabolaCurvature(t *testing.T) {
	lp := LogParabola{
		Alpha:     2,
		Beta:      0.5,
		Amplitude: quantity.New(1e-12, quantity.PerCm2SecTeV),
		Reference: quantity.New(1, quantity.TeV),
	}

	y, err := lp.Eval(quantity.NewArray([]float64{0.1, 1, 10}, quantity.TeV))
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	// At the reference the parabola equals the amplitude; curvature steepens
	// both wings relative to the pure power law.
	testutil.RequireNearlyEqual(t, y.Values[1], 1e-12, 1e-12)
	if y.Values[2] >= 1e-14 {
		t.Fatalf("high wing must fall below the power law: %v", y.Values[2])
	}
}
