package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Iterations != 10000 {
		t.Errorf("expected 10000 iterations, got %d", cfg.Iterations)
	}
	if cfg.MinTime != 0.1 {
		t.Errorf("expected 0.1s min time, got %f", cfg.MinTime)
	}
	if cfg.Repetitions != 1 {
		t.Errorf("expected 1 repetition, got %d", cfg.Repetitions)
	}
	if cfg.Unit != "ms" {
		t.Errorf("expected ms unit, got %s", cfg.Unit)
	}
	if cfg.DataDir != DefaultDataDir {
		t.Errorf("expected %s data dir, got %s", DefaultDataDir, cfg.DataDir)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("quick")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Iterations != 500 {
		t.Errorf("expected 500 iterations, got %d", cfg.Iterations)
	}
	if cfg.DataDir != DefaultDataDir {
		t.Errorf("preset should fill in the default data dir, got %q", cfg.DataDir)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	data := []byte("iterations: 250\nmin_time: 0.5\nrepetitions: 4\nfilter: generic\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Iterations != 250 {
		t.Errorf("expected 250 iterations, got %d", cfg.Iterations)
	}
	if cfg.MinTime != 0.5 {
		t.Errorf("expected 0.5 min time, got %f", cfg.MinTime)
	}
	if cfg.Repetitions != 4 {
		t.Errorf("expected 4 repetitions, got %d", cfg.Repetitions)
	}
	if cfg.Filter != "generic" {
		t.Errorf("expected generic filter, got %s", cfg.Filter)
	}
	// Unset fields keep their defaults.
	if cfg.Unit != "ms" {
		t.Errorf("expected default ms unit, got %s", cfg.Unit)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBenchConfig(t *testing.T) {
	cfg := DefaultConfig()
	bc, err := cfg.BenchConfig()
	if err != nil {
		t.Fatal(err)
	}
	if bc.Iterations != 10000 {
		t.Errorf("expected 10000 iterations, got %d", bc.Iterations)
	}
	if bc.MinTime != 100*time.Millisecond {
		t.Errorf("expected 100ms, got %v", bc.MinTime)
	}
	if bc.Unit != time.Millisecond {
		t.Errorf("expected millisecond unit, got %v", bc.Unit)
	}
}

func TestBenchConfig_Units(t *testing.T) {
	tests := []struct {
		unit string
		want time.Duration
	}{
		{"", time.Millisecond},
		{"ms", time.Millisecond},
		{"us", time.Microsecond},
		{"s", time.Second},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Unit = tt.unit
		bc, err := cfg.BenchConfig()
		if err != nil {
			t.Fatalf("unit %q: %v", tt.unit, err)
		}
		if bc.Unit != tt.want {
			t.Errorf("unit %q: expected %v, got %v", tt.unit, tt.want, bc.Unit)
		}
	}

	cfg := DefaultConfig()
	cfg.Unit = "fortnights"
	if _, err := cfg.BenchConfig(); err == nil {
		t.Error("expected error for unknown unit")
	}
}
