package system

import "github.com/younwookim/neondodge/internal/domain/geom"

// DefaultJoystickRadius is the maximum knob travel (px)
const DefaultJoystickRadius = 35

// Joystick is a floating virtual stick.
// The press point becomes the centre and the knob follows the pointer,
// clamped to Radius.
type Joystick struct {
	Radius float64

	active bool
	center geom.Vector2
	knob   geom.Vector2 // Offset from center
}

// NewJoystick creates an idle joystick
func NewJoystick(radius float64) *Joystick {
	return &Joystick{Radius: radius}
}

// Press anchors the stick at (x, y) with the knob centred
func (j *Joystick) Press(x, y float64) {
	j.active = true
	j.center = geom.Vector2{X: x, Y: y}
	j.knob = geom.Zero
}

// Move drags the knob towards (x, y). Ignored while released.
func (j *Joystick) Move(x, y float64) {
	if !j.active {
		return
	}
	offset := geom.Vector2{X: x, Y: y}.Sub(j.center)
	if dist := geom.Magnitude(offset); dist > j.Radius {
		offset = geom.Normalize(offset).Scale(j.Radius)
	}
	j.knob = offset
}

// Release recentres the knob
func (j *Joystick) Release() {
	j.active = false
	j.knob = geom.Zero
}

// Active reports whether the stick is held
func (j *Joystick) Active() bool {
	return j.active
}

// Center returns the anchor point
func (j *Joystick) Center() geom.Vector2 {
	return j.center
}

// Knob returns the knob position in screen space
func (j *Joystick) Knob() geom.Vector2 {
	return j.center.Add(j.knob)
}

// Direction returns the deflection with each component in [-1, 1]
func (j *Joystick) Direction() geom.Vector2 {
	if !j.active || j.Radius <= 0 {
		return geom.Zero
	}
	return j.knob.Scale(1 / j.Radius)
}

// InputState holds the input sampled for one frame
type InputState struct {
	Move  geom.Vector2 // Stick deflection, magnitude <= 1
	Dash  bool
	Pause bool
}

// KeyVector converts digital directions into a unit-length stick deflection
func KeyVector(left, right, up, down bool) geom.Vector2 {
	var v geom.Vector2
	if left {
		v.X--
	}
	if right {
		v.X++
	}
	if up {
		v.Y--
	}
	if down {
		v.Y++
	}
	return geom.Normalize(v)
}
