package kuramoto

import (
	"math"
	"math/rand"
	"testing"
)

func TestOrderAligned(t *testing.T) {
	phases := []float64{1.2, 1.2, 1.2, 1.2}
	op := Order(phases)

	if math.Abs(op.R-1) > 1e-12 {
		t.Errorf("aligned phases: R = %v, expected 1", op.R)
	}
	if math.Abs(op.Psi-1.2) > 1e-12 {
		t.Errorf("aligned phases: Psi = %v, expected 1.2", op.Psi)
	}
}

func TestOrderAntipodal(t *testing.T) {
	op := Order([]float64{0, math.Pi})
	if math.Abs(op.R) > 1e-12 {
		t.Errorf("antipodal pair: R = %v, expected 0", op.R)
	}
}

// Phases {0, π/2, π} are the unit vectors {1, i, −1}; their mean is i/3,
// so R must be 1/3.
func TestOrderThreeQuarterTurns(t *testing.T) {
	op := Order([]float64{0, math.Pi / 2, math.Pi})
	if math.Abs(op.R-1.0/3.0) > 1e-12 {
		t.Errorf("R = %v, expected 1/3", op.R)
	}
	if math.Abs(op.Psi-math.Pi/2) > 1e-12 {
		t.Errorf("Psi = %v, expected π/2", op.Psi)
	}
}

func TestOrderSingleOscillatorExact(t *testing.T) {
	for _, phase := range []float64{0, 0.1, 1.0, math.Pi, 5.9} {
		op := Order([]float64{phase})
		if op.R != 1 {
			t.Errorf("single phase %v: R = %v, expected exactly 1", phase, op.R)
		}
	}
}

func TestOrderEmpty(t *testing.T) {
	op := Order(nil)
	if op.R != 0 || op.Psi != 0 {
		t.Errorf("empty input: got %+v, expected zero value", op)
	}
}

func TestOrderBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(50)
		phases := make([]float64, n)
		for i := range phases {
			phases[i] = rng.Float64() * 2 * math.Pi
		}
		op := Order(phases)
		if op.R < 0 || op.R > 1 {
			t.Fatalf("trial %d: R = %v, outside [0, 1]", trial, op.R)
		}
	}
}
