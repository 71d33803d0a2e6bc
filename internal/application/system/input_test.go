package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/neondodge/internal/domain/geom"
)

func TestJoystick_Idle(t *testing.T) {
	j := NewJoystick(35)

	assert.False(t, j.Active())
	assert.Equal(t, geom.Zero, j.Direction())

	// Moves before a press are ignored
	j.Move(100, 100)
	assert.Equal(t, geom.Zero, j.Direction())
}

func TestJoystick_Drag(t *testing.T) {
	tests := []struct {
		name   string
		moveX  float64
		moveY  float64
		wantX  float64
		wantY  float64
		onEdge bool
	}{
		{"centre", 100, 200, 0, 0, false},
		{"half right", 117.5, 200, 0.5, 0, false},
		{"full up", 100, 165, 0, -1, true},
		{"beyond radius is clamped", 100, 300, 0, 1, true},
		{"diagonal clamped", 200, 300, math.Sqrt2 / 2, math.Sqrt2 / 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := NewJoystick(35)
			j.Press(100, 200)
			j.Move(tt.moveX, tt.moveY)

			dir := j.Direction()
			assert.InDelta(t, tt.wantX, dir.X, 1e-9)
			assert.InDelta(t, tt.wantY, dir.Y, 1e-9)
			assert.LessOrEqual(t, geom.Magnitude(dir), 1+1e-9)
			if tt.onEdge {
				assert.InDelta(t, 35.0, geom.Distance(j.Center(), j.Knob()), 1e-9)
			}
		})
	}
}

func TestJoystick_PressRecentres(t *testing.T) {
	j := NewJoystick(35)
	j.Press(50, 50)
	j.Move(85, 50)
	assert.InDelta(t, 1.0, j.Direction().X, 1e-9)

	j.Press(300, 300)
	assert.Equal(t, geom.Vector2{X: 300, Y: 300}, j.Center())
	assert.Equal(t, geom.Zero, j.Direction())
}

func TestJoystick_Release(t *testing.T) {
	j := NewJoystick(35)
	j.Press(50, 50)
	j.Move(60, 70)

	j.Release()

	assert.False(t, j.Active())
	assert.Equal(t, geom.Zero, j.Direction())
	assert.Equal(t, j.Center(), j.Knob())
}

func TestKeyVector(t *testing.T) {
	tests := []struct {
		name                  string
		left, right, up, down bool
		want                  geom.Vector2
	}{
		{"none", false, false, false, false, geom.Zero},
		{"left", true, false, false, false, geom.Vector2{X: -1}},
		{"down", false, false, false, true, geom.Vector2{Y: 1}},
		{"opposites cancel", true, true, false, false, geom.Zero},
		{"diagonal", false, true, true, false, geom.Vector2{X: math.Sqrt2 / 2, Y: -math.Sqrt2 / 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeyVector(tt.left, tt.right, tt.up, tt.down)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}
