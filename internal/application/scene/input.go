package scene

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/neondodge/internal/application/system"
)

// InputSystem samples touch, mouse and keyboard input
type InputSystem struct {
	joystick *system.Joystick

	touchID  ebiten.TouchID
	touching bool
	mouse    bool

	touchBuf   []ebiten.TouchID
	pressedBuf []ebiten.TouchID
}

// NewInputSystem creates an input system with a joystick of the given radius
func NewInputSystem(joystickRadius float64) *InputSystem {
	return &InputSystem{joystick: system.NewJoystick(joystickRadius)}
}

// Joystick returns the on-screen stick for drawing
func (s *InputSystem) Joystick() *system.Joystick {
	return s.joystick
}

// Reset releases every pointer, e.g. when a match starts
func (s *InputSystem) Reset() {
	s.joystick.Release()
	s.touching = false
	s.mouse = false
}

// Poll reads the current input state. Call once per frame.
func (s *InputSystem) Poll() system.InputState {
	var st system.InputState

	s.touchBuf = ebiten.AppendTouchIDs(s.touchBuf[:0])
	s.pressedBuf = inpututil.AppendJustPressedTouchIDs(s.pressedBuf[:0])

	// First touch drives the stick, any further touch dashes
	if s.touching {
		if slices.Contains(s.touchBuf, s.touchID) {
			x, y := ebiten.TouchPosition(s.touchID)
			s.joystick.Move(float64(x), float64(y))
		} else {
			s.joystick.Release()
			s.touching = false
		}
	}
	for _, id := range s.pressedBuf {
		if !s.touching && !s.mouse {
			s.touchID = id
			s.touching = true
			x, y := ebiten.TouchPosition(id)
			s.joystick.Press(float64(x), float64(y))
			continue
		}
		if id != s.touchID {
			st.Dash = true
		}
	}

	// Mouse stands in for a touch on desktop
	if !s.touching {
		mx, my := ebiten.CursorPosition()
		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			s.mouse = true
			s.joystick.Press(float64(mx), float64(my))
		case s.mouse && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
			s.joystick.Move(float64(mx), float64(my))
		case s.mouse:
			s.mouse = false
			s.joystick.Release()
		}
	}

	if s.joystick.Active() {
		st.Move = s.joystick.Direction()
	} else {
		st.Move = system.KeyVector(
			ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
			ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
			ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
			ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		)
	}

	st.Dash = st.Dash ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	st.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)

	return st
}
