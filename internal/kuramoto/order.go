package kuramoto

import "math"

// OrderParameter is the complex mean Z = (1/N) Σ e^{iθ_j} of a set of
// phases. R is |Z|, the resonance index in [0, 1]: 0 means fully
// desynchronized, 1 fully phase-aligned. Psi is arg(Z), the mean phase.
type OrderParameter struct {
	R   float64
	Psi float64
}

// Order reduces phases to their order parameter via summed cosine/sine
// components, one pass over the input.
func Order(phases []float64) OrderParameter {
	n := len(phases)
	if n == 0 {
		return OrderParameter{}
	}
	if n == 1 {
		// a single unit vector has magnitude 1 by definition
		return OrderParameter{R: 1, Psi: math.Atan2(math.Sin(phases[0]), math.Cos(phases[0]))}
	}

	var sumCos, sumSin float64
	for _, th := range phases {
		sumCos += math.Cos(th)
		sumSin += math.Sin(th)
	}
	re := sumCos / float64(n)
	im := sumSin / float64(n)

	r := math.Hypot(re, im)
	if r > 1 {
		// rounding can push the mean a hair past the unit circle
		r = 1
	}
	return OrderParameter{R: r, Psi: math.Atan2(im, re)}
}
