package engine

// EventKind identifies a discrete change produced by a step
type EventKind int

const (
	EventScoreChanged EventKind = iota
	EventMultiplierChanged
	EventTimeChanged
	EventHit
	EventOrbCollected
	EventGameOver
)

// String returns the event kind name
func (k EventKind) String() string {
	switch k {
	case EventScoreChanged:
		return "ScoreChanged"
	case EventMultiplierChanged:
		return "MultiplierChanged"
	case EventTimeChanged:
		return "TimeChanged"
	case EventHit:
		return "Hit"
	case EventOrbCollected:
		return "OrbCollected"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is one entry of the list returned by Update.
// Only the fields relevant to Kind are set:
//   - ScoreChanged, OrbCollected: Score
//   - MultiplierChanged: Multiplier
//   - TimeChanged: TimeLeft (whole seconds, rounded up)
//   - GameOver: Score, NewHighScore
type Event struct {
	Kind         EventKind
	Score        int
	Multiplier   float64
	TimeLeft     int
	NewHighScore bool
}

// Has reports whether events contains at least one event of kind
func Has(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}
