package sim

import (
	"fmt"
	"math"
)

// Parameter defaults and hard bounds. The bounds follow the interactive
// sliders: values outside them are rejected, not clamped.
const (
	DefaultCount    = 20
	DefaultCoupling = 2.0
	DefaultDt       = 0.01
	DefaultFreqMin  = -1.0
	DefaultFreqMax  = 1.0
	DefaultSpeed    = 1.0

	MaxCount    = 1000
	MaxCoupling = 10.0
	MaxDt       = 1.0
	MinSpeed    = 0.1
	MaxSpeed    = 10.0
)

// Parameters configures a simulation run. Instances are treated as values
// and replaced wholesale, never mutated field by field, so an adopted
// Parameters is always internally consistent.
//
// Seed selects the random phase/frequency draw; zero means "pick one from
// the wall clock" so repeated resets see fresh initial conditions.
type Parameters struct {
	Count    int     // number of oscillators, 1..MaxCount
	Coupling float64 // K, 0..MaxCoupling
	Dt       float64 // Euler time step, (0, MaxDt]
	FreqMin  float64 // lower bound of the intrinsic frequency draw
	FreqMax  float64 // upper bound, strictly greater than FreqMin
	Speed    float64 // animation speed multiplier, MinSpeed..MaxSpeed
	Seed     int64
}

func DefaultParameters() Parameters {
	return Parameters{
		Count:    DefaultCount,
		Coupling: DefaultCoupling,
		Dt:       DefaultDt,
		FreqMin:  DefaultFreqMin,
		FreqMax:  DefaultFreqMax,
		Speed:    DefaultSpeed,
	}
}

// Validate checks every field against its domain. A Parameters value that
// fails here is never adopted anywhere in the package.
func (p Parameters) Validate() error {
	if p.Count < 1 || p.Count > MaxCount {
		return fmt.Errorf("oscillator count must be in [1, %d], got %d", MaxCount, p.Count)
	}
	if !isFinite(p.Coupling) || p.Coupling < 0 || p.Coupling > MaxCoupling {
		return fmt.Errorf("coupling strength must be in [0, %g], got %v", MaxCoupling, p.Coupling)
	}
	if !isFinite(p.Dt) || p.Dt <= 0 || p.Dt > MaxDt {
		return fmt.Errorf("time step must be in (0, %g], got %v", MaxDt, p.Dt)
	}
	if !isFinite(p.FreqMin) || !isFinite(p.FreqMax) {
		return fmt.Errorf("frequency range must be finite, got [%v, %v]", p.FreqMin, p.FreqMax)
	}
	if p.FreqMin >= p.FreqMax {
		return fmt.Errorf("frequency range min must be < max, got [%v, %v]", p.FreqMin, p.FreqMax)
	}
	if !isFinite(p.Speed) || p.Speed < MinSpeed || p.Speed > MaxSpeed {
		return fmt.Errorf("animation speed must be in [%g, %g], got %v", MinSpeed, MaxSpeed, p.Speed)
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
