// Command npred prints a predicted-counts table for a spectral model folded
// through parametrized instrument responses.
//
// Usage:
//
//	npred [flags]
//
// Without flags it runs a built-in HESS-like analysis. A YAML config selects
// the instrument, binning, dispersion and model; flags override single
// fields.
//
// Examples:
//
//	npred
//	npred -config analysis.yaml
//	npred -instrument cta -livetime 5
//	npred -index 2.0 -sigma 0.2
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-gamma/irf"
	"github.com/cwbudde/algo-gamma/quantity"
	"github.com/cwbudde/algo-gamma/spectral/counts"
	"github.com/cwbudde/algo-gamma/spectral/flux"
)

type gridConfig struct {
	MinTeV float64 `yaml:"min_tev"`
	MaxTeV float64 `yaml:"max_tev"`
	Bins   int     `yaml:"bins"`
}

type dispersionConfig struct {
	Sigma float64 `yaml:"sigma"`
	Bias  float64 `yaml:"bias"`
}

type modelConfig struct {
	Type         string  `yaml:"type"`
	Index        float64 `yaml:"index"`
	Amplitude    float64 `yaml:"amplitude"` // cm-2 s-1 TeV-1
	ReferenceTeV float64 `yaml:"reference_tev"`
	LambdaPerTeV float64 `yaml:"lambda_per_tev"`
	Alpha        float64 `yaml:"alpha"`
	Beta         float64 `yaml:"beta"`
}

type analysisConfig struct {
	Instrument    string           `yaml:"instrument"`
	LivetimeHours float64          `yaml:"livetime_hours"`
	ETrue         gridConfig       `yaml:"e_true"`
	EReco         gridConfig       `yaml:"e_reco"`
	Dispersion    dispersionConfig `yaml:"dispersion"`
	Model         modelConfig      `yaml:"model"`
}

func defaultConfig() analysisConfig {
	return analysisConfig{
		Instrument:    "hess",
		LivetimeHours: 1,
		ETrue:         gridConfig{MinTeV: 0.01, MaxTeV: 300, Bins: 108},
		EReco:         gridConfig{MinTeV: 0.01, MaxTeV: 100, Bins: 72},
		Dispersion:    dispersionConfig{Sigma: 0.3},
		Model: modelConfig{
			Type:         "power-law",
			Index:        2.3,
			Amplitude:    2.5e-12,
			ReferenceTeV: 1,
		},
	}
}

var instruments = map[string]irf.Instrument{
	"hess":  irf.InstrumentHESS,
	"hess2": irf.InstrumentHESS2,
	"cta":   irf.InstrumentCTA,
}

func main() {
	configPath := flag.String("config", "", "YAML analysis config file")
	instrument := flag.String("instrument", "", "effective-area parametrization (hess, hess2, cta)")
	livetime := flag.Float64("livetime", math.NaN(), "observation live time in hours")
	sigma := flag.Float64("sigma", math.NaN(), "energy dispersion width")
	index := flag.Float64("index", math.NaN(), "spectral index of the model")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: npred [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints predicted counts per reconstructed-energy bin.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	if *instrument != "" {
		cfg.Instrument = *instrument
	}
	if !math.IsNaN(*livetime) {
		cfg.LivetimeHours = *livetime
	}
	if !math.IsNaN(*sigma) {
		cfg.Dispersion.Sigma = *sigma
	}
	if !math.IsNaN(*index) {
		cfg.Model.Index = *index
	}

	npred, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	printTable(npred)
}

func loadConfig(path string, cfg *analysisConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func run(cfg analysisConfig) (*counts.Spectrum, error) {
	inst, ok := instruments[strings.ToLower(strings.TrimSpace(cfg.Instrument))]
	if !ok {
		return nil, fmt.Errorf("unknown instrument %q (want hess, hess2 or cta)", cfg.Instrument)
	}

	eTrue, err := logEdges(cfg.ETrue)
	if err != nil {
		return nil, fmt.Errorf("e_true: %w", err)
	}
	eReco, err := logEdges(cfg.EReco)
	if err != nil {
		return nil, fmt.Errorf("e_reco: %w", err)
	}

	aeff, err := irf.NewEffectiveAreaFromParametrization(eTrue, inst)
	if err != nil {
		return nil, err
	}
	edisp, err := irf.NewEnergyDispersionFromGauss(eTrue, eReco, cfg.Dispersion.Sigma, cfg.Dispersion.Bias)
	if err != nil {
		return nil, err
	}
	model, err := buildModel(cfg.Model)
	if err != nil {
		return nil, err
	}

	return counts.Predict(model, aeff, edisp, quantity.New(cfg.LivetimeHours, quantity.Hour))
}

func logEdges(g gridConfig) (quantity.Array, error) {
	if g.MinTeV <= 0 || g.MaxTeV <= g.MinTeV {
		return quantity.Array{}, fmt.Errorf("bounds must satisfy 0 < min < max: %g, %g", g.MinTeV, g.MaxTeV)
	}
	if g.Bins < 1 {
		return quantity.Array{}, fmt.Errorf("bins must be >= 1: %d", g.Bins)
	}
	edges := make([]float64, g.Bins+1)
	floats.LogSpan(edges, g.MinTeV, g.MaxTeV)
	return quantity.NewArray(edges, quantity.TeV), nil
}

func buildModel(m modelConfig) (counts.SpectralModel, error) {
	amplitude := quantity.New(m.Amplitude, quantity.PerCm2SecTeV)
	reference := quantity.New(m.ReferenceTeV, quantity.TeV)

	switch strings.ToLower(strings.TrimSpace(m.Type)) {
	case "", "power-law":
		return flux.PowerLaw{Index: m.Index, Amplitude: amplitude, Reference: reference}, nil
	case "exp-cutoff-power-law":
		return flux.ExpCutoffPowerLaw{
			Index:     m.Index,
			Amplitude: amplitude,
			Reference: reference,
			Lambda:    quantity.New(m.LambdaPerTeV, quantity.PerTeV),
		}, nil
	case "log-parabola":
		return flux.LogParabola{
			Alpha:     m.Alpha,
			Beta:      m.Beta,
			Amplitude: amplitude,
			Reference: reference,
		}, nil
	default:
		return nil, fmt.Errorf("unknown model type %q", m.Type)
	}
}

func printTable(npred *counts.Spectrum) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tE lo [TeV]\tE hi [TeV]\tCounts\n")
	fmt.Fprintf(tw, "---\t----------\t----------\t------\n")
	for i, v := range npred.Data {
		fmt.Fprintf(tw, "%d\t%.4g\t%.4g\t%.4g\n", i, npred.Energy.Values[i], npred.Energy.Values[i+1], v)
	}
	fmt.Fprintf(tw, "\t\tTotal\t%.4g\n", npred.Total())
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
