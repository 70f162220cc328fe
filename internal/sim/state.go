package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/kurasim/internal/kuramoto"
)

// State owns the oscillator network, the elapsed simulation time, and the
// current resonance index. Only Tick and Reset mutate it; every accessor
// returns a snapshot copy.
type State struct {
	net       *kuramoto.Network
	time      float64
	resonance float64
}

// NewState draws Count oscillators with phases uniform in [0, 2π) and
// frequencies uniform in [FreqMin, FreqMax), then computes the resonance
// index from those initial phases. Random phases almost never start exactly
// desynchronized, so the index is not forced to zero.
func NewState(params Parameters) (*State, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	oscs := make([]kuramoto.Oscillator, params.Count)
	for i := range oscs {
		osc, err := kuramoto.NewOscillator(
			rng.Float64()*2*math.Pi,
			params.FreqMin+rng.Float64()*(params.FreqMax-params.FreqMin),
		)
		if err != nil {
			return nil, err
		}
		oscs[i] = osc
	}

	s := &State{net: kuramoto.NewNetwork(oscs)}
	s.resonance = s.net.Order().R
	return s, nil
}

// Tick advances the network one Euler step, then moves time and the
// resonance index together. On invalid input nothing is mutated: the
// network rejects bad k/dt before touching any phase.
func (s *State) Tick(coupling, dt float64) error {
	if err := s.net.Step(coupling, dt); err != nil {
		return err
	}
	s.time += dt
	s.resonance = s.net.Order().R
	return nil
}

// Reset discards the current oscillators and reinitializes from params.
func (s *State) Reset(params Parameters) error {
	fresh, err := NewState(params)
	if err != nil {
		return err
	}
	*s = *fresh
	return nil
}

func (s *State) Size() int          { return s.net.Size() }
func (s *State) Time() float64      { return s.time }
func (s *State) Resonance() float64 { return s.resonance }

// Phases returns a copy of the current phases, ordered, all in [0, 2π).
func (s *State) Phases() []float64 { return s.net.Phases() }

// Frequencies returns a copy of the intrinsic frequencies.
func (s *State) Frequencies() []float64 { return s.net.Frequencies() }

// Order returns the current order parameter (mean phase included).
func (s *State) Order() kuramoto.OrderParameter { return s.net.Order() }
