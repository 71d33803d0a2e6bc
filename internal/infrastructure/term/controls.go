package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/neondodge/internal/application/system"
	"github.com/younwookim/neondodge/internal/domain/geom"
)

// DefaultHold is how long a direction stays held after its key event.
// Terminals report key repeats but never key releases.
const DefaultHold = 150 * time.Millisecond

// Action is a discrete command decoded from a key
type Action int

const (
	ActionNone Action = iota
	ActionMove        // Direction key, already folded into the held state
	ActionDash
	ActionPause
	ActionRestart
	ActionSound
	ActionMotion
	ActionQuit
)

const (
	dirLeft = iota
	dirRight
	dirUp
	dirDown
	dirCount
)

// Controls turns key events into a movement vector and actions
type Controls struct {
	hold    time.Duration
	pressed [dirCount]time.Time
}

// NewControls creates controls with the given hold window
func NewControls(hold time.Duration) *Controls {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Controls{hold: hold}
}

// HandleKey records direction keys and decodes the rest
func (c *Controls) HandleKey(ev *tcell.EventKey, now time.Time) Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		c.pressed[dirLeft] = now
		return ActionMove
	case tcell.KeyRight:
		c.pressed[dirRight] = now
		return ActionMove
	case tcell.KeyUp:
		c.pressed[dirUp] = now
		return ActionMove
	case tcell.KeyDown:
		c.pressed[dirDown] = now
		return ActionMove
	case tcell.KeyEscape:
		return ActionPause
	case tcell.KeyEnter:
		return ActionRestart
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case 'a', 'A':
		c.pressed[dirLeft] = now
		return ActionMove
	case 'd', 'D':
		c.pressed[dirRight] = now
		return ActionMove
	case 'w', 'W':
		c.pressed[dirUp] = now
		return ActionMove
	case 's', 'S':
		c.pressed[dirDown] = now
		return ActionMove
	case ' ':
		return ActionDash
	case 'p', 'P':
		return ActionPause
	case 'r', 'R':
		return ActionRestart
	case 'o', 'O':
		return ActionSound
	case 'm', 'M':
		return ActionMotion
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// Vector returns the normalised direction of the keys held at now
func (c *Controls) Vector(now time.Time) geom.Vector2 {
	return system.KeyVector(c.held(dirLeft, now), c.held(dirRight, now), c.held(dirUp, now), c.held(dirDown, now))
}

// Clear releases every direction
func (c *Controls) Clear() {
	c.pressed = [dirCount]time.Time{}
}

func (c *Controls) held(dir int, now time.Time) bool {
	t := c.pressed[dir]
	return !t.IsZero() && now.Sub(t) < c.hold
}
