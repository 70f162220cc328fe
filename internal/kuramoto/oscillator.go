package kuramoto

import (
	"fmt"
	"math"
)

const twoPi = 2 * math.Pi

// Oscillator is a single phase/frequency pair. The intrinsic frequency is
// fixed for the oscillator's lifetime; only the phase evolves.
type Oscillator struct {
	Phase     float64
	Frequency float64
}

// NewOscillator builds an oscillator with the phase wrapped into [0, 2π).
// Phase is a periodic quantity, so any finite out-of-range input is
// normalized rather than rejected; a non-finite phase or frequency is an
// error, since the modulo wrap cannot bring NaN or ±Inf into the domain.
func NewOscillator(phase, frequency float64) (Oscillator, error) {
	if math.IsNaN(phase) || math.IsInf(phase, 0) {
		return Oscillator{}, fmt.Errorf("%w, got phase %v", ErrInvalidOscillator, phase)
	}
	if math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return Oscillator{}, fmt.Errorf("%w, got frequency %v", ErrInvalidOscillator, frequency)
	}
	return Oscillator{Phase: WrapPhase(phase), Frequency: frequency}, nil
}

// Advance returns the wrapped phase after adding delta. Pure function.
func Advance(phase, delta float64) float64 {
	return WrapPhase(phase + delta)
}

// WrapPhase normalizes an angle into [0, 2π).
func WrapPhase(theta float64) float64 {
	theta = math.Mod(theta, twoPi)
	if theta < 0 {
		theta += twoPi
	}
	if theta == twoPi {
		// a tiny negative angle lands exactly on 2π after the shift
		return 0
	}
	return theta
}
