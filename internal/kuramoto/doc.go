// Package kuramoto implements the phase-oscillator model at the heart of
// the simulation: single oscillators, the complex order parameter, and the
// all-to-all coupled network update.
//
// The network update uses the mean-field form of the Kuramoto law. For
// oscillator j,
//
//	dθ_j/dt = ω_j + (K/N) Σ_k sin(θ_k − θ_j)
//
// and with R·e^{iΨ} = (1/N) Σ_k e^{iθ_k} the coupling sum collapses exactly
// to K·R·sin(Ψ−θ_j). One order-parameter pass therefore advances the whole
// network in O(N) instead of O(N²).
//
// # Example
//
//	net := kuramoto.NewNetwork(oscs)
//	_ = net.Step(2.0, 0.01)
//	r := net.Order().R
//
// # Thread Safety
//
// Network instances are NOT thread-safe; each is owned and stepped by a
// single simulation loop.
package kuramoto
