package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/neondodge/internal/domain/geom"
)

func TestNewPlayer(t *testing.T) {
	player := NewPlayer(400, 800, DefaultMovementParams())

	require.NotNil(t, player)
	assert.Equal(t, geom.Vector2{X: 200, Y: 400}, player.Position)
	assert.Equal(t, geom.Zero, player.Velocity)
	assert.Equal(t, 15.0, player.Radius)
	assert.Equal(t, 12.0, player.HitboxRadius)
	assert.LessOrEqual(t, player.HitboxRadius, player.Radius, "hitbox must be at most the visual radius")
}

func TestPlayer_UpdateMovement(t *testing.T) {
	params := DefaultMovementParams()

	tests := []struct {
		name      string
		velocity  geom.Vector2
		input     geom.Vector2
		dashing   bool
		wantVel   geom.Vector2
		wantDelta geom.Vector2
	}{
		{
			name:      "idle applies friction only",
			velocity:  geom.Vector2{X: 2, Y: 0},
			input:     geom.Zero,
			wantVel:   geom.Vector2{X: 1.7, Y: 0}, // 2 * 0.85
			wantDelta: geom.Vector2{X: 1.7, Y: 0},
		},
		{
			name:      "input inside deadzone is ignored",
			velocity:  geom.Zero,
			input:     geom.Vector2{X: 0.05, Y: 0.05},
			wantVel:   geom.Zero,
			wantDelta: geom.Zero,
		},
		{
			name:      "full right accelerates then drags",
			velocity:  geom.Zero,
			input:     geom.Vector2{X: 1, Y: 0},
			wantVel:   geom.Vector2{X: 0.68, Y: 0}, // 0.8 * 0.85
			wantDelta: geom.Vector2{X: 0.68, Y: 0},
		},
		{
			name:      "speed capped when not dashing",
			velocity:  geom.Vector2{X: 0, Y: 12},
			input:     geom.Zero,
			wantVel:   geom.Vector2{X: 0, Y: 5},
			wantDelta: geom.Vector2{X: 0, Y: 5},
		},
		{
			name:      "dash speed exceeds cap",
			velocity:  geom.Vector2{X: 0, Y: 12},
			input:     geom.Zero,
			dashing:   true,
			wantVel:   geom.Vector2{X: 0, Y: 10.2}, // 12 * 0.85
			wantDelta: geom.Vector2{X: 0, Y: 10.2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := NewPlayer(400, 800, params)
			start := player.Position
			player.Velocity = tt.velocity

			player.UpdateMovement(tt.input, 400, 800, tt.dashing, params)

			assert.InDelta(t, tt.wantVel.X, player.Velocity.X, 1e-9, "vx mismatch")
			assert.InDelta(t, tt.wantVel.Y, player.Velocity.Y, 1e-9, "vy mismatch")
			assert.InDelta(t, start.X+tt.wantDelta.X, player.Position.X, 1e-9, "x mismatch")
			assert.InDelta(t, start.Y+tt.wantDelta.Y, player.Position.Y, 1e-9, "y mismatch")
		})
	}
}

func TestPlayer_UpdateMovement_CapPreservesDirection(t *testing.T) {
	params := DefaultMovementParams()
	player := NewPlayer(400, 800, params)
	player.Velocity = geom.Vector2{X: 30, Y: 40}

	player.UpdateMovement(geom.Zero, 400, 800, false, params)

	// 50 px/frame * 0.85 friction, rescaled to the 5 px/frame cap along (3, 4)
	assert.InDelta(t, params.MaxSpeed, player.Speed(), 1e-9)
	assert.InDelta(t, 3.0, player.Velocity.X, 1e-9)
	assert.InDelta(t, 4.0, player.Velocity.Y, 1e-9)
}

func TestPlayer_UpdateMovement_StaysOnScreen(t *testing.T) {
	params := DefaultMovementParams()
	player := NewPlayer(400, 800, params)

	// Hold up-left long enough to reach the corner
	for i := 0; i < 500; i++ {
		player.UpdateMovement(geom.Vector2{X: -1, Y: -1}, 400, 800, false, params)
	}
	assert.Equal(t, player.Radius, player.Position.X)
	assert.Equal(t, player.Radius, player.Position.Y)

	// Dash velocity into the bottom-right corner
	for i := 0; i < 500; i++ {
		player.Velocity = geom.Vector2{X: 50, Y: 50}
		player.UpdateMovement(geom.Zero, 400, 800, true, params)
	}
	assert.Equal(t, 400-player.Radius, player.Position.X)
	assert.Equal(t, 800-player.Radius, player.Position.Y)
}

func TestPlayer_UpdateMovement_Converges(t *testing.T) {
	params := DefaultMovementParams()
	player := NewPlayer(4000, 4000, params)

	for i := 0; i < 200; i++ {
		player.UpdateMovement(geom.Vector2{X: 1, Y: 0}, 4000, 4000, false, params)
	}

	// Terminal speed under drag: a*f / (1-f) = 0.68/0.15 ≈ 4.53, below the cap
	assert.InDelta(t, 0.68/0.15, player.Speed(), 1e-6)
}
