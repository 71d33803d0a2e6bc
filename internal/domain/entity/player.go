package entity

import "github.com/younwookim/neondodge/internal/domain/geom"

// MovementParams tunes the player's drag-based movement model
type MovementParams struct {
	Radius       float64 // Visual radius, also used to keep the player on screen
	HitboxRadius float64 // Collision radius, smaller than Radius to be forgiving
	MaxSpeed     float64 // px/frame, ignored while dashing
	Acceleration float64 // px/frame² at full stick deflection
	Friction     float64 // Velocity multiplier applied every frame
	Deadzone     float64 // Stick magnitude below which input is ignored
}

// DefaultMovementParams returns the stock movement tuning
func DefaultMovementParams() MovementParams {
	return MovementParams{
		Radius:       15,
		HitboxRadius: 12,
		MaxSpeed:     5,
		Acceleration: 0.8,
		Friction:     0.85,
		Deadzone:     0.1,
	}
}

// Player is the dot the user steers
type Player struct {
	Position     geom.Vector2
	Velocity     geom.Vector2
	Radius       float64
	HitboxRadius float64
}

// NewPlayer creates a player at the centre of the screen with zero velocity
func NewPlayer(screenW, screenH float64, params MovementParams) *Player {
	return &Player{
		Position:     geom.Vector2{X: screenW / 2, Y: screenH / 2},
		Radius:       params.Radius,
		HitboxRadius: params.HitboxRadius,
	}
}

// UpdateMovement advances the player by one frame.
//
// Velocity and position are integrated once per call and are not scaled by
// elapsed time; the host is expected to call this at a steady frame rate.
func (p *Player) UpdateMovement(input geom.Vector2, screenW, screenH float64, dashing bool, params MovementParams) {
	if geom.Magnitude(input) > params.Deadzone {
		p.Velocity = p.Velocity.Add(input.Scale(params.Acceleration))
	}

	p.Velocity = p.Velocity.Scale(params.Friction)

	// Dash velocity is allowed to exceed the cap until the dash ends
	if !dashing {
		speed := geom.Magnitude(p.Velocity)
		if speed > params.MaxSpeed {
			p.Velocity = p.Velocity.Scale(params.MaxSpeed / speed)
		}
	}

	p.Position = p.Position.Add(p.Velocity)

	p.Position.X = geom.Clamp(p.Position.X, p.Radius, screenW-p.Radius)
	p.Position.Y = geom.Clamp(p.Position.Y, p.Radius, screenH-p.Radius)
}

// Speed returns the current speed in px/frame
func (p *Player) Speed() float64 {
	return geom.Magnitude(p.Velocity)
}
