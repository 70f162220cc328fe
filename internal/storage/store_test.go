package storage

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/san-kum/kurasim/internal/sim"
)

func testSamples() []sim.Sample {
	return []sim.Sample{
		{Time: 0.01, R: 0.31},
		{Time: 0.02, R: 0.35},
		{Time: 0.03, R: 0.42},
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	params := sim.DefaultParameters()
	params.Seed = 42
	metrics := map[string]float64{"mean_resonance": 0.36}

	runID, err := store.Save(params, testSamples(), metrics)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.ID != runID {
		t.Errorf("id = %q, expected %q", meta.ID, runID)
	}
	if meta.Count != params.Count {
		t.Errorf("count = %d, expected %d", meta.Count, params.Count)
	}
	if meta.Seed != 42 {
		t.Errorf("seed = %d, expected 42", meta.Seed)
	}
	if meta.Steps != 3 {
		t.Errorf("steps = %d, expected 3", meta.Steps)
	}
	if meta.Metrics["mean_resonance"] != 0.36 {
		t.Errorf("metrics not preserved: %v", meta.Metrics)
	}
}

func TestLoadSeries(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	samples := testSamples()
	runID, err := store.Save(sim.DefaultParameters(), samples, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}

	if len(loaded) != len(samples) {
		t.Fatalf("got %d samples, expected %d", len(loaded), len(samples))
	}
	for i := range samples {
		if math.Abs(loaded[i].Time-samples[i].Time) > 1e-6 {
			t.Errorf("sample %d time = %v, expected %v", i, loaded[i].Time, samples[i].Time)
		}
		if math.Abs(loaded[i].R-samples[i].R) > 1e-6 {
			t.Errorf("sample %d R = %v, expected %v", i, loaded[i].R, samples[i].R)
		}
	}
}

func TestList(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected empty store, got %d runs", len(runs))
	}

	if _, err := store.Save(sim.DefaultParameters(), testSamples(), nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "never-created"))
	runs, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := store.Save(sim.DefaultParameters(), testSamples(), nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	out := filepath.Join(dir, "export.json")
	if err := store.ExportJSON(runID, out); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	if err := store.ExportJSON("missing-run", out); err == nil {
		t.Error("expected error for unknown run id")
	}
}
