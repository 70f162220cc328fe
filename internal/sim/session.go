package sim

import "github.com/san-kum/kurasim/internal/kuramoto"

// Session is the explicit, long-lived simulation context handed to the
// host loop. It owns the oscillator state, the run/pause status, the
// adopted and staged parameter sets, and the resonance history; nothing
// else mutates any of them.
type Session struct {
	state   *State
	status  Status
	params  Parameters
	staged  *Parameters
	history *History
}

// NewSession builds a running session from params. Sessions auto-start.
func NewSession(params Parameters) (*Session, error) {
	state, err := NewState(params)
	if err != nil {
		return nil, err
	}
	return &Session{
		state:   state,
		status:  Running,
		params:  params,
		history: NewHistory(DefaultHistorySize),
	}, nil
}

// Tick advances the simulation one step and appends the new (time, R)
// sample to the history. While paused it is a no-op: no phase, time, or
// resonance mutation, and staged edits stay staged.
func (s *Session) Tick() error {
	if s.status != Running {
		return nil
	}
	if s.staged != nil {
		if err := s.applyStaged(); err != nil {
			return err
		}
	}
	if err := s.state.Tick(s.params.Coupling, s.params.Dt); err != nil {
		return err
	}
	s.history.Append(s.state.Time(), s.state.Resonance())
	return nil
}

// SetParameters stages a whole-object parameter replacement. An invalid
// set is rejected outright and the previously adopted set stays in effect.
//
// While running, the replacement is adopted immediately: a count change
// reinitializes the network on the spot (the collection cannot be resized
// in place) and clears the history across that discontinuity; any other
// change simply governs the next tick. While paused, the replacement stays
// staged and takes effect on the first tick after Resume.
func (s *Session) SetParameters(p Parameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.staged = &p
	if s.status == Running {
		return s.applyStaged()
	}
	return nil
}

func (s *Session) applyStaged() error {
	p := *s.staged
	if p.Count != s.params.Count {
		if err := s.state.Reset(p); err != nil {
			return err
		}
		s.history.Clear()
	}
	s.params = p
	s.staged = nil
	return nil
}

// Pause suspends ticking. Pausing a paused session is a no-op.
func (s *Session) Pause() { s.status = Paused }

// Resume returns the session to Running. The most recently staged
// parameters, if any, govern the first subsequent tick.
func (s *Session) Resume() { s.status = Running }

// Reset adopts any staged parameters, rebuilds the state from scratch,
// clears the history, and returns to Running regardless of prior status.
func (s *Session) Reset() error {
	if s.staged != nil {
		// staged sets were validated when staged
		s.params = *s.staged
		s.staged = nil
	}
	if err := s.state.Reset(s.params); err != nil {
		return err
	}
	s.history.Clear()
	s.status = Running
	return nil
}

func (s *Session) Status() Status         { return s.status }
func (s *Session) Parameters() Parameters { return s.params }
func (s *Session) Time() float64          { return s.state.Time() }
func (s *Session) Resonance() float64     { return s.state.Resonance() }
func (s *Session) Size() int              { return s.state.Size() }

// Phases returns a snapshot of the current phases.
func (s *Session) Phases() []float64 { return s.state.Phases() }

// Order returns the current order parameter.
func (s *Session) Order() kuramoto.OrderParameter { return s.state.Order() }

// History returns a copy of the retained (time, R) samples, oldest first.
func (s *Session) History() []Sample { return s.history.Samples() }

// ResonanceSeries returns the retained R values for the trend chart.
func (s *Session) ResonanceSeries() []float64 { return s.history.Resonance() }
