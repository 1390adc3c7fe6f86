package speech

// State of the engine process handle.
type State int

const (
	// StateIdle indicates no engine process is owned.
	StateIdle State = iota
	// StateRunning indicates the engine is speaking.
	StateRunning
	// StatePaused indicates the engine is suspended.
	StatePaused
	// StateTerminated indicates the engine was killed or exited.
	StateTerminated
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
