package kuramoto

import "errors"

// Domain errors for oscillator and network construction.
var (
	// ErrInvalidOscillator indicates a non-finite phase or intrinsic frequency.
	ErrInvalidOscillator = errors.New("kuramoto: oscillator phase and frequency must be finite")

	// ErrInvalidCoupling indicates a coupling strength that is negative or non-finite.
	ErrInvalidCoupling = errors.New("kuramoto: coupling strength must be finite and >= 0")

	// ErrInvalidTimeStep indicates a time step that is not positive and finite.
	ErrInvalidTimeStep = errors.New("kuramoto: time step must be positive and finite")
)
