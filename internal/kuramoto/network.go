package kuramoto

import (
	"fmt"
	"math"
)

// Network is an all-to-all coupled set of phase oscillators. Phases and
// frequencies live in parallel slices owned exclusively by the network;
// accessors hand out copies.
type Network struct {
	phases []float64
	freqs  []float64
}

// NewNetwork builds a network from oscillators. Phases are wrapped into
// [0, 2π); frequencies are taken as-is (finite by Oscillator construction).
func NewNetwork(oscs []Oscillator) *Network {
	n := &Network{
		phases: make([]float64, len(oscs)),
		freqs:  make([]float64, len(oscs)),
	}
	for i, o := range oscs {
		n.phases[i] = WrapPhase(o.Phase)
		n.freqs[i] = o.Frequency
	}
	return n
}

func (n *Network) Size() int { return len(n.phases) }

// Phases returns a copy of the current phases, all in [0, 2π).
func (n *Network) Phases() []float64 {
	out := make([]float64, len(n.phases))
	copy(out, n.phases)
	return out
}

// Frequencies returns a copy of the intrinsic frequencies.
func (n *Network) Frequencies() []float64 {
	out := make([]float64, len(n.freqs))
	copy(out, n.freqs)
	return out
}

// Order returns the order parameter of the current phases.
func (n *Network) Order() OrderParameter {
	return Order(n.phases)
}

// Step advances every phase by one Euler step:
//
//	θ_j ← (θ_j + dt·(ω_j + K·R·sin(Ψ−θ_j))) mod 2π
//
// where R, Ψ come from the order parameter of the phases before this step.
// Every delta is computed against that one snapshot, so no oscillator sees
// a partially updated neighbor. Invalid k or dt leaves the network
// untouched.
//
// Large K·dt can overshoot and oscillate in the discretized system even
// though the continuous ODE is stable. Step does not clamp or sub-step;
// the jumpy output is the honest result of the requested step size.
func (n *Network) Step(k, dt float64) error {
	if math.IsNaN(k) || math.IsInf(k, 0) || k < 0 {
		return fmt.Errorf("%w, got %v", ErrInvalidCoupling, k)
	}
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return fmt.Errorf("%w, got %v", ErrInvalidTimeStep, dt)
	}

	op := Order(n.phases)
	for j, th := range n.phases {
		n.phases[j] = Advance(th, dt*(n.freqs[j]+k*op.R*math.Sin(op.Psi-th)))
	}
	return nil
}
