package kuramoto

import (
	"errors"
	"math"
	"testing"
)

func TestWrapPhase(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"zero", 0, 0},
		{"in range", 1.5, 1.5},
		{"exactly two pi", 2 * math.Pi, 0},
		{"above two pi", 2*math.Pi + 0.5, 0.5},
		{"negative", -0.5, 2*math.Pi - 0.5},
		{"large positive", 10 * math.Pi, 0},
		{"large negative", -7 * math.Pi, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapPhase(tt.in)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("WrapPhase(%v) = %v, expected %v", tt.in, got, tt.expected)
			}
			if got < 0 || got >= 2*math.Pi {
				t.Errorf("WrapPhase(%v) = %v, outside [0, 2π)", tt.in, got)
			}
		})
	}
}

func TestWrapPhaseTinyNegative(t *testing.T) {
	got := WrapPhase(-1e-20)
	if got < 0 || got >= 2*math.Pi {
		t.Errorf("WrapPhase(-1e-20) = %v, outside [0, 2π)", got)
	}
}

func TestNewOscillator(t *testing.T) {
	osc, err := NewOscillator(3*math.Pi, 0.7)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if math.Abs(osc.Phase-math.Pi) > 1e-12 {
		t.Errorf("phase not wrapped: got %v, expected π", osc.Phase)
	}
	if osc.Frequency != 0.7 {
		t.Errorf("frequency changed: got %v", osc.Frequency)
	}
}

func TestNewOscillatorNonFinite(t *testing.T) {
	tests := []struct {
		name  string
		phase float64
		freq  float64
	}{
		{"nan frequency", 0, math.NaN()},
		{"positive inf frequency", 0, math.Inf(1)},
		{"negative inf frequency", 0, math.Inf(-1)},
		{"nan phase", math.NaN(), 1.0},
		{"positive inf phase", math.Inf(1), 1.0},
		{"negative inf phase", math.Inf(-1), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc, err := NewOscillator(tt.phase, tt.freq)
			if err == nil {
				t.Fatalf("expected error, got oscillator with phase %v", osc.Phase)
			}
			if !errors.Is(err, ErrInvalidOscillator) {
				t.Errorf("expected ErrInvalidOscillator, got %v", err)
			}
		})
	}
}

func TestAdvance(t *testing.T) {
	got := Advance(math.Pi, math.Pi+0.1)
	if math.Abs(got-0.1) > 1e-12 {
		t.Errorf("Advance(π, π+0.1) = %v, expected 0.1", got)
	}

	got = Advance(0.5, -1.0)
	if math.Abs(got-(2*math.Pi-0.5)) > 1e-12 {
		t.Errorf("Advance(0.5, -1.0) = %v, expected 2π-0.5", got)
	}
}
