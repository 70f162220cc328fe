package sim

import (
	"context"
	"fmt"
	"sync"
)

// Ensemble runs several independent realizations of the same parameter
// set, differing only by seed, and averages their resonance trajectories.
// Useful for smoothing out the noise of any single random initial draw.
type Ensemble struct {
	params   Parameters
	runs     int
	seedBase int64
}

func NewEnsemble(params Parameters, runs int, seedBase int64) *Ensemble {
	return &Ensemble{params: params, runs: runs, seedBase: seedBase}
}

// Run advances every member for steps ticks concurrently and returns the
// per-tick mean resonance trajectory.
func (e *Ensemble) Run(ctx context.Context, steps int) ([]float64, error) {
	if err := e.params.Validate(); err != nil {
		return nil, err
	}
	if e.runs < 1 {
		return nil, fmt.Errorf("ensemble needs at least 1 run, got %d", e.runs)
	}
	if steps < 1 {
		return nil, fmt.Errorf("steps must be positive, got %d", steps)
	}

	traces := make([][]float64, e.runs)
	errs := make([]error, e.runs)

	var wg sync.WaitGroup
	for i := 0; i < e.runs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			p := e.params
			p.Seed = e.seedBase + int64(idx)

			state, err := NewState(p)
			if err != nil {
				errs[idx] = err
				return
			}

			trace := make([]float64, 0, steps)
			for s := 0; s < steps; s++ {
				select {
				case <-ctx.Done():
					errs[idx] = ctx.Err()
					return
				default:
				}
				if err := state.Tick(p.Coupling, p.Dt); err != nil {
					errs[idx] = err
					return
				}
				trace = append(trace, state.Resonance())
			}
			traces[idx] = trace
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	mean := make([]float64, steps)
	for _, trace := range traces {
		for j, r := range trace {
			mean[j] += r
		}
	}
	for j := range mean {
		mean[j] /= float64(e.runs)
	}
	return mean, nil
}
