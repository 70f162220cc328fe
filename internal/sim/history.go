package sim

// DefaultHistorySize bounds the resonance trend buffer.
const DefaultHistorySize = 1000

// Sample is one (time, resonance) observation.
type Sample struct {
	Time float64
	R    float64
}

// History is a bounded, insertion-ordered buffer of resonance samples.
// Once full, the oldest sample is evicted first. Samples are never mutated
// after insertion, so times are non-decreasing as long as the producer's
// clock is.
type History struct {
	samples  []Sample
	capacity int
}

func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &History{
		samples:  make([]Sample, 0, capacity),
		capacity: capacity,
	}
}

func (h *History) Append(t, r float64) {
	h.samples = append(h.samples, Sample{Time: t, R: r})
	if len(h.samples) > h.capacity {
		h.samples = h.samples[1:]
	}
}

func (h *History) Len() int { return len(h.samples) }

func (h *History) Clear() { h.samples = h.samples[:0] }

// Samples returns a copy of the retained samples, oldest first.
func (h *History) Samples() []Sample {
	out := make([]Sample, len(h.samples))
	copy(out, h.samples)
	return out
}

// Resonance returns just the R values, oldest first, ready for charting.
func (h *History) Resonance() []float64 {
	out := make([]float64, len(h.samples))
	for i, s := range h.samples {
		out[i] = s.R
	}
	return out
}
