package sim

import (
	"math"
	"testing"
)

func TestDefaultParametersValid(t *testing.T) {
	if err := DefaultParameters().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestParametersValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{"zero count", func(p *Parameters) { p.Count = 0 }},
		{"negative count", func(p *Parameters) { p.Count = -3 }},
		{"count above max", func(p *Parameters) { p.Count = MaxCount + 1 }},
		{"negative coupling", func(p *Parameters) { p.Coupling = -0.1 }},
		{"coupling above max", func(p *Parameters) { p.Coupling = MaxCoupling + 1 }},
		{"nan coupling", func(p *Parameters) { p.Coupling = math.NaN() }},
		{"inf coupling", func(p *Parameters) { p.Coupling = math.Inf(1) }},
		{"zero dt", func(p *Parameters) { p.Dt = 0 }},
		{"negative dt", func(p *Parameters) { p.Dt = -0.01 }},
		{"dt above max", func(p *Parameters) { p.Dt = MaxDt * 2 }},
		{"nan dt", func(p *Parameters) { p.Dt = math.NaN() }},
		{"inverted freq range", func(p *Parameters) { p.FreqMin, p.FreqMax = 1, -1 }},
		{"equal freq range", func(p *Parameters) { p.FreqMin, p.FreqMax = 0.5, 0.5 }},
		{"nan freq min", func(p *Parameters) { p.FreqMin = math.NaN() }},
		{"inf freq max", func(p *Parameters) { p.FreqMax = math.Inf(1) }},
		{"speed below min", func(p *Parameters) { p.Speed = 0.01 }},
		{"speed above max", func(p *Parameters) { p.Speed = MaxSpeed + 1 }},
		{"nan speed", func(p *Parameters) { p.Speed = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParametersBoundaryValues(t *testing.T) {
	p := DefaultParameters()
	p.Count = 1
	p.Coupling = 0
	p.Dt = MaxDt
	p.Speed = MinSpeed
	if err := p.Validate(); err != nil {
		t.Errorf("boundary values should validate: %v", err)
	}

	p.Count = MaxCount
	p.Coupling = MaxCoupling
	p.Speed = MaxSpeed
	if err := p.Validate(); err != nil {
		t.Errorf("upper boundary values should validate: %v", err)
	}
}
