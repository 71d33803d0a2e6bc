package audio

import (
	"sync"

	"github.com/younwookim/neondodge/internal/application/engine"
)

// Output plays a tone without blocking the caller
type Output interface {
	Play(t Tone)
}

// Sink maps match events to tones
type Sink struct {
	mu      sync.Mutex
	out     Output
	enabled bool
}

// NewSink creates a sink. A nil out makes the sink silent.
func NewSink(out Output, enabled bool) *Sink {
	return &Sink{out: out, enabled: enabled}
}

// SetEnabled turns sound on or off
func (s *Sink) SetEnabled(enabled bool) {
	s.mu.Lock()
	s.enabled = enabled
	s.mu.Unlock()
}

// Enabled reports whether tones are played
func (s *Sink) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled && s.out != nil
}

// Handle plays the tones for events
func (s *Sink) Handle(events []engine.Event) {
	if !s.Enabled() {
		return
	}
	for _, ev := range events {
		if t, ok := ToneFor(ev.Kind); ok {
			s.out.Play(t)
		}
	}
}

// ToneFor returns the tone of an event kind, if it has one
func ToneFor(kind engine.EventKind) (Tone, bool) {
	switch kind {
	case engine.EventHit:
		return ToneHit, true
	case engine.EventOrbCollected:
		return ToneOrb, true
	case engine.EventGameOver:
		return ToneGameOver, true
	default:
		return 0, false
	}
}
