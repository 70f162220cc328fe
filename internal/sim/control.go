package sim

// Status is the run/pause state of a session. Modeling it as a single
// enumeration makes "running and paused at once" unrepresentable.
type Status int

const (
	Running Status = iota
	Paused
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}
