// Package state defines the lifecycle phases of a match.
package state

// Phase represents where a match is in its lifecycle
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver // Terminal
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further simulation can happen in this phase
func (p Phase) IsTerminal() bool {
	return p == PhaseGameOver
}
