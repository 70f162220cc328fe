package analysis

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/kurasim/internal/sim"
)

func sweepConfig() SweepConfig {
	params := sim.DefaultParameters()
	params.Count = 30
	params.Seed = 17
	return SweepConfig{
		Params:  params,
		MaxK:    6.0,
		Points:  7,
		Burn:    500,
		Measure: 200,
	}
}

func TestCouplingSweep(t *testing.T) {
	points, err := CouplingSweep(context.Background(), sweepConfig())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(points) != 7 {
		t.Fatalf("got %d points, expected 7", len(points))
	}
	if points[0].Coupling != 0 {
		t.Errorf("first coupling = %v, expected 0", points[0].Coupling)
	}
	if points[len(points)-1].Coupling != 6.0 {
		t.Errorf("last coupling = %v, expected 6.0", points[len(points)-1].Coupling)
	}

	for i, p := range points {
		if p.Resonance < 0 || p.Resonance > 1 {
			t.Errorf("point %d: resonance %v outside [0, 1]", i, p.Resonance)
		}
	}

	// the transition: strong coupling must synchronize far better than none
	if points[len(points)-1].Resonance < points[0].Resonance+0.3 {
		t.Errorf("no visible transition: R(0) = %v, R(Kmax) = %v",
			points[0].Resonance, points[len(points)-1].Resonance)
	}
}

func TestCouplingSweepInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SweepConfig)
	}{
		{"one point", func(c *SweepConfig) { c.Points = 1 }},
		{"zero range", func(c *SweepConfig) { c.MaxK = 0 }},
		{"range above max", func(c *SweepConfig) { c.MaxK = sim.MaxCoupling + 1 }},
		{"negative burn", func(c *SweepConfig) { c.Burn = -1 }},
		{"zero measure", func(c *SweepConfig) { c.Measure = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sweepConfig()
			tt.mutate(&cfg)
			if _, err := CouplingSweep(context.Background(), cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestCouplingSweepZeroSeedSharesOneDraw(t *testing.T) {
	cfg := sweepConfig()
	cfg.Params.Seed = 0
	cfg.MaxK = 0.001
	cfg.Points = 4
	cfg.Burn = 0
	cfg.Measure = 1

	points, err := CouplingSweep(context.Background(), cfg)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	// over a vanishing coupling range one shared draw keeps the measured
	// resonance essentially constant; independent draws of 30 oscillators
	// would scatter it by ~0.1
	for _, p := range points[1:] {
		if math.Abs(p.Resonance-points[0].Resonance) > 1e-3 {
			t.Errorf("K=%v: resonance %v differs from K=0's %v, points did not share a draw",
				p.Coupling, p.Resonance, points[0].Resonance)
		}
	}
}

func TestCouplingSweepCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := CouplingSweep(ctx, sweepConfig()); err == nil {
		t.Error("expected context error, got nil")
	}
}

func TestCriticalCoupling(t *testing.T) {
	points := []SweepPoint{{0, 0.1}, {1, 0.2}, {2, 0.8}, {3, 0.9}}

	kc, ok := CriticalCoupling(points, 0.5)
	if !ok {
		t.Fatal("expected a crossing")
	}
	// interpolated between K=1 (R=0.2) and K=2 (R=0.8)
	if kc < 1 || kc > 2 {
		t.Errorf("Kc = %v, expected within (1, 2)", kc)
	}
	if diff := kc - 1.5; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("Kc = %v, expected 1.5", kc)
	}

	if _, ok := CriticalCoupling(points, 0.99); ok {
		t.Error("expected no crossing above the sweep's maximum resonance")
	}

	kc, ok = CriticalCoupling([]SweepPoint{{0, 0.7}, {1, 0.9}}, 0.5)
	if !ok || kc != 0 {
		t.Errorf("first point already above threshold: got %v, %v", kc, ok)
	}
}

func TestRenderSweep(t *testing.T) {
	if RenderSweep(nil, 40, 10) != "" {
		t.Error("expected empty chart for no points")
	}

	points := []SweepPoint{{0, 0.1}, {1, 0.2}, {2, 0.8}, {3, 0.9}}
	chart := RenderSweep(points, 40, 10)
	if chart == "" {
		t.Fatal("expected non-empty chart")
	}
	if !strings.Contains(chart, "coupling strength") {
		t.Error("chart missing caption")
	}
}
