package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/neondodge/internal/domain/geom"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.SoundEnabled)
	assert.False(t, s.ReducedMotion)
}

func TestObstacleKind_String(t *testing.T) {
	tests := []struct {
		kind     ObstacleKind
		expected string
	}{
		{ObstacleDrifter, "drifter"},
		{ObstacleBigBlock, "big_block"},
		{ObstacleFastDart, "fast_dart"},
		{ObstacleKind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestParseObstacleKind(t *testing.T) {
	for _, k := range ObstacleKinds {
		parsed, err := ParseObstacleKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := ParseObstacleKind("boulder")
	assert.Error(t, err)
}

func TestDefaultObstacleProfiles(t *testing.T) {
	profiles := DefaultObstacleProfiles()
	require.Len(t, profiles, len(ObstacleKinds))

	for i, p := range profiles {
		assert.Equal(t, ObstacleKinds[i], p.Kind, "table must be ordered by kind")
	}

	// The base kind must be available from the first frame
	assert.Equal(t, 0.0, profiles[0].AvailableFrom)
	assert.Equal(t, 20.0, profiles[1].AvailableFrom)
	assert.Equal(t, 40.0, profiles[2].AvailableFrom)
	assert.Equal(t, 25.0, profiles[0].Size)
	assert.Equal(t, 5.0, profiles[2].Speed)
}

func TestObstacle_Update(t *testing.T) {
	o := &Obstacle{
		Position: geom.Vector2{X: 10, Y: -25},
		Velocity: geom.Vector2{X: 0.5, Y: 2.5},
		Size:     25,
	}

	o.Update()
	assert.Equal(t, geom.Vector2{X: 10.5, Y: -22.5}, o.Position)

	o.Update()
	assert.Equal(t, geom.Vector2{X: 11, Y: -20}, o.Position)
}

func TestObstacle_Bounds(t *testing.T) {
	o := &Obstacle{Position: geom.Vector2{X: 100, Y: 50}, Size: 40}
	x, y, size := o.Bounds()
	assert.Equal(t, 80.0, x)
	assert.Equal(t, 30.0, y)
	assert.Equal(t, 40.0, size)
}
