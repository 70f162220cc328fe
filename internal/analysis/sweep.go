package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/kurasim/internal/sim"
)

// SweepPoint is the settled resonance index at one coupling strength.
type SweepPoint struct {
	Coupling  float64
	Resonance float64
}

// SweepConfig controls a coupling sweep.
type SweepConfig struct {
	Params  sim.Parameters // Coupling field is ignored; the sweep overrides it
	MaxK    float64        // sweep range is [0, MaxK]
	Points  int            // number of coupling values to test
	Burn    int            // transient steps discarded before measuring
	Measure int            // steps averaged after the transient
}

// CouplingSweep measures steady-state resonance across coupling strengths,
// exposing the synchronization transition: below the critical coupling the
// population stays incoherent, above it a synchronized cluster forms. For
// each K the system runs Burn transient steps, then the resonance index is
// averaged over Measure further steps.
func CouplingSweep(ctx context.Context, cfg SweepConfig) ([]SweepPoint, error) {
	if cfg.Points < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 points, got %d", cfg.Points)
	}
	if cfg.MaxK <= 0 || cfg.MaxK > sim.MaxCoupling {
		return nil, fmt.Errorf("sweep range must be in (0, %g], got %v", sim.MaxCoupling, cfg.MaxK)
	}
	if cfg.Burn < 0 || cfg.Measure < 1 {
		return nil, fmt.Errorf("invalid burn/measure steps: %d/%d", cfg.Burn, cfg.Measure)
	}

	// every K starts from the same seeded draw so the transition, not the
	// initial condition, drives the differences; a zero seed is pinned here
	// so the points share a draw instead of each taking one from the clock
	base := cfg.Params
	if base.Seed == 0 {
		base.Seed = time.Now().UnixNano()
	}

	step := cfg.MaxK / float64(cfg.Points-1)
	points := make([]SweepPoint, 0, cfg.Points)

	for i := 0; i < cfg.Points; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		k := float64(i) * step
		p := base
		p.Coupling = k
		if err := p.Validate(); err != nil {
			return nil, err
		}

		state, err := sim.NewState(p)
		if err != nil {
			return nil, err
		}

		for s := 0; s < cfg.Burn; s++ {
			if err := state.Tick(k, p.Dt); err != nil {
				return nil, err
			}
		}

		sum := 0.0
		for s := 0; s < cfg.Measure; s++ {
			if err := state.Tick(k, p.Dt); err != nil {
				return nil, err
			}
			sum += state.Resonance()
		}

		points = append(points, SweepPoint{Coupling: k, Resonance: sum / float64(cfg.Measure)})
	}

	return points, nil
}

// CriticalCoupling estimates the onset of synchronization from sweep
// results: the coupling at which the resonance index first crosses the
// threshold, linearly interpolated between the bracketing points. The
// second return is false when the sweep never crosses.
func CriticalCoupling(points []SweepPoint, threshold float64) (float64, bool) {
	for i, p := range points {
		if p.Resonance < threshold {
			continue
		}
		if i == 0 {
			return p.Coupling, true
		}
		prev := points[i-1]
		frac := (threshold - prev.Resonance) / (p.Resonance - prev.Resonance)
		return prev.Coupling + frac*(p.Coupling-prev.Coupling), true
	}
	return 0, false
}

// RenderSweep draws the R-versus-K curve as an ASCII chart.
func RenderSweep(points []SweepPoint, width, height int) string {
	if len(points) == 0 {
		return ""
	}
	series := make([]float64, len(points))
	for i, p := range points {
		series[i] = p.Resonance
	}
	caption := fmt.Sprintf("resonance index vs coupling strength (K: 0..%.2f)",
		points[len(points)-1].Coupling)
	return asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)
}
