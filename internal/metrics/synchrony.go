package metrics

import "math"

// Metric accumulates a scalar over per-tick observations of the network.
type Metric interface {
	Name() string
	Observe(phases []float64, r, t float64)
	Value() float64
	Reset()
}

// MeanResonance tracks the average resonance index over a run.
type MeanResonance struct {
	sum     float64
	samples int
}

func NewMeanResonance() *MeanResonance { return &MeanResonance{} }

func (m *MeanResonance) Name() string { return "mean_resonance" }

func (m *MeanResonance) Observe(phases []float64, r, t float64) {
	m.sum += r
	m.samples++
}

func (m *MeanResonance) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanResonance) Reset() {
	m.sum = 0
	m.samples = 0
}

// LockTime records the first simulation time at which the resonance index
// reaches a threshold. Value is -1 if the run never locked.
type LockTime struct {
	threshold float64
	locked    bool
	at        float64
}

func NewLockTime(threshold float64) *LockTime {
	return &LockTime{threshold: threshold}
}

func (l *LockTime) Name() string { return "lock_time" }

func (l *LockTime) Observe(phases []float64, r, t float64) {
	if !l.locked && r >= l.threshold {
		l.locked = true
		l.at = t
	}
}

func (l *LockTime) Value() float64 {
	if !l.locked {
		return -1
	}
	return l.at
}

func (l *LockTime) Reset() {
	l.locked = false
	l.at = 0
}

// PhaseSpread reports the circular standard deviation of the latest
// observation, sqrt(-2·ln R). Zero means perfect alignment; it grows
// without bound as R approaches 0.
type PhaseSpread struct {
	spread float64
}

func NewPhaseSpread() *PhaseSpread { return &PhaseSpread{} }

func (p *PhaseSpread) Name() string { return "phase_spread" }

func (p *PhaseSpread) Observe(phases []float64, r, t float64) {
	if r <= 0 {
		p.spread = math.Inf(1)
		return
	}
	p.spread = math.Sqrt(-2 * math.Log(r))
}

func (p *PhaseSpread) Value() float64 { return p.spread }

func (p *PhaseSpread) Reset() { p.spread = 0 }
