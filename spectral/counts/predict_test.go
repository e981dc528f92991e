package counts

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-gamma/internal/testutil"
	"github.com/cwbudde/algo-gamma/irf"
	"github.com/cwbudde/algo-gamma/quantity"
	"github.com/cwbudde/algo-gamma/spectral/flux"
)

func testModel() flux.PowerLaw {
	return flux.PowerLaw{
		Index:     2.3,
		Amplitude: quantity.New(2.5e-12, quantity.PerCm2SecTeV),
		Reference: quantity.New(1, quantity.TeV),
	}
}

func testResponses(t *testing.T) (*irf.EffectiveAreaTable, *irf.EnergyDispersion) {
	t.Helper()
	eTrue := quantity.NewArray(testutil.LogSpaced(0.1, 100, 31), quantity.TeV)
	eReco := quantity.NewArray(testutil.LogSpaced(0.05, 200, 25), quantity.TeV)

	aeff, err := irf.NewEffectiveAreaFromParametrization(eTrue, irf.InstrumentHESS)
	if err != nil {
		t.Fatalf("NewEffectiveAreaFromParametrization: %v", err)
	}
	edisp, err := irf.NewEnergyDispersionFromGauss(eTrue, eReco, 0.3, 0)
	if err != nil {
		t.Fatalf("NewEnergyDispersionFromGauss: %v", err)
	}
	return aeff, edisp
}

func TestPredict(t *testing.T) {
	aeff, edisp := testResponses(t)

	npred, err := Predict(testModel(), aeff, edisp, quantity.New(1, quantity.Hour))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	if len(npred.Data) != edisp.ERecoEdges().Len()-1 {
		t.Fatalf("bin count: got %d, want %d", len(npred.Data), edisp.ERecoEdges().Len()-1)
	}
	testutil.RequireFinite(t, npred.Data)
	if npred.Total() <= 0 {
		t.Fatalf("total predicted counts must be > 0: %v", npred.Total())
	}
	for i, v := range npred.Data {
		if v < 0 {
			t.Fatalf("bin %d: negative counts %v", i, v)
		}
	}
}

func TestPredictScalesWithLivetime(t *testing.T) {
	aeff, edisp := testResponses(t)
	model := testModel()

	one, err := Predict(model, aeff, edisp, quantity.New(1, quantity.Hour))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	two, err := Predict(model, aeff, edisp, quantity.New(7200, quantity.Second))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	testutil.RequireNearlyEqual(t, two.Total(), 2*one.Total(), 1e-12)
}

func TestPredictFillsNaNArea(t *testing.T) {
	edges := quantity.NewArray(testutil.LogSpaced(0.1, 100, 31), quantity.TeV)
	area := make([]float64, edges.Len()-1)
	for i := range area {
		area[i] = 1e8
	}
	// Uncalibrated bins at both ends of the range.
	area[0] = math.NaN()
	area[1] = math.NaN()
	area[len(area)-1] = math.NaN()

	aeff, err := irf.NewEffectiveArea(edges, quantity.NewArray(area, quantity.Cm2))
	if err != nil {
		t.Fatalf("NewEffectiveArea: %v", err)
	}
	eReco := quantity.NewArray(testutil.LogSpaced(0.05, 200, 25), quantity.TeV)
	edisp, err := irf.NewEnergyDispersionFromGauss(edges, eReco, 0.3, 0)
	if err != nil {
		t.Fatalf("NewEnergyDispersionFromGauss: %v", err)
	}

	npred, err := Predict(testModel(), aeff, edisp, quantity.New(1, quantity.Hour))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	testutil.RequireFinite(t, npred.Data)
	if npred.Total() <= 0 {
		t.Fatalf("total predicted counts must be > 0: %v", npred.Total())
	}
}

func TestPredictWithRecoEdges(t *testing.T) {
	aeff, edisp := testResponses(t)
	desired := quantity.NewArray(testutil.LogSpaced(0.1, 10, 16), quantity.TeV)

	npred, err := Predict(testModel(), aeff, edisp, quantity.New(1, quantity.Hour), WithRecoEdges(desired))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if len(npred.Data) != desired.Len()-1 {
		t.Fatalf("bin count: got %d, want %d", len(npred.Data), desired.Len()-1)
	}
	if npred.Energy.Len() != desired.Len() {
		t.Fatalf("output must carry the supplied reco axis")
	}
	testutil.RequireFinite(t, npred.Data)
}

func TestPredictUnitMismatch(t *testing.T) {
	aeff, edisp := testResponses(t)

	// A live time in cm leaves residual dimensions in the counts product.
	if _, err := Predict(testModel(), aeff, edisp, quantity.New(1, quantity.Cm)); !errors.Is(err, quantity.ErrUnitMismatch) {
		t.Fatalf("expected ErrUnitMismatch, got %v", err)
	}
}

// stubArea lets the axis precondition be violated without an irf constructor
// in the way.
type stubArea struct {
	edges quantity.Array
}

func (s stubArea) EnergyEdges() quantity.Array  { return s.edges }
func (s stubArea) Evaluate(bool) quantity.Array { return quantity.NewArray(nil, quantity.Cm2) }

func TestPredictShortTrueAxis(t *testing.T) {
	_, edisp := testResponses(t)

	short := stubArea{edges: quantity.NewArray([]float64{1}, quantity.TeV)}
	if _, err := Predict(testModel(), short, edisp, quantity.New(1, quantity.Hour)); err == nil {
		t.Fatal("expected short axis error")
	}
}

func TestNewLengthCheck(t *testing.T) {
	edges := quantity.NewArray([]float64{1, 2, 4}, quantity.TeV)
	if _, err := New([]float64{1, 2}, edges); err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := New([]float64{1}, edges); err == nil {
		t.Fatal("expected bin mismatch error")
	}
}
