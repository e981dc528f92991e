package main

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestConfigRoundTrip(t *testing.T) {
	cfg := defaultConfig()
	cfg.Instrument = "cta"
	cfg.Model.Type = "log-parabola"
	cfg.Model.Alpha = 2.1
	cfg.Model.Beta = 0.2

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "analysis.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loaded := defaultConfig()
	if err := loadConfig(path, &loaded); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if loaded != cfg {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", loaded, cfg)
	}
}

func TestRunDefaults(t *testing.T) {
	cfg := defaultConfig()
	cfg.ETrue.Bins = 24
	cfg.EReco.Bins = 12

	npred, err := run(cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(npred.Data) != cfg.EReco.Bins {
		t.Fatalf("bins: got %d, want %d", len(npred.Data), cfg.EReco.Bins)
	}
	if npred.Total() <= 0 {
		t.Fatalf("total counts must be > 0: %v", npred.Total())
	}
}

func TestRunRejectsUnknownInstrument(t *testing.T) {
	cfg := defaultConfig()
	cfg.Instrument = "magic"
	if _, err := run(cfg); err == nil {
		t.Fatal("expected unknown instrument error")
	}
}
