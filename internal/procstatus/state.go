package procstatus

// State is the monitor's position in its lifecycle.
type State int

const (
	// Polling is the initial state.
	Polling State = iota
	// Completed means the process finished successfully.
	Completed
	// Failed means the process finished unsuccessfully.
	Failed
	// Stalled means the status did not change within the stall timeout.
	Stalled
	// Unreachable means a status request failed.
	Unreachable
	// Stopped means the monitor was cancelled before a result.
	Stopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Polling:
		return "polling"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	case Stalled:
		return "stalled"
	case Unreachable:
		return "unreachable"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further polls follow s.
func (s State) Terminal() bool {
	return s != Polling
}

// Status is one decoded status payload.
type Status struct {
	IsComplete    bool
	WasSuccessful bool
	Status        string
}
