// Package state defines the engine's lifecycle states.
package state

// EngineState represents where the engine is in its lifecycle
type EngineState int

const (
	StateCreated EngineState = iota
	StateInitialized
	StateRunning
	StatePaused
	StateExiting
	StateStopped
)

// String returns the string representation of the engine state
func (s EngineState) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateInitialized:
		return "Initialized"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateExiting:
		return "Exiting"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Ticking reports whether the game loop should keep stepping in s.
func (s EngineState) Ticking() bool {
	return s == StateRunning || s == StatePaused
}

// CanTransition reports whether the engine may move from s to next.
func (s EngineState) CanTransition(next EngineState) bool {
	switch s {
	case StateCreated:
		return next == StateInitialized || next == StateStopped
	case StateInitialized:
		return next == StateRunning || next == StateStopped
	case StateRunning:
		return next == StatePaused || next == StateExiting || next == StateStopped
	case StatePaused:
		return next == StateRunning || next == StateExiting || next == StateStopped
	case StateExiting:
		return next == StateStopped
	default:
		return false
	}
}
