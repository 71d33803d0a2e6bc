package entity

import (
	"fmt"
	"image/color"

	"github.com/younwookim/neondodge/internal/domain/geom"
)

// ObstacleKind is one of the closed set of obstacle types
type ObstacleKind int

const (
	ObstacleDrifter  ObstacleKind = iota // Medium, unlocked from the start
	ObstacleBigBlock                     // Large and slow
	ObstacleFastDart                     // Small and fast
)

// ObstacleKinds lists every kind in table order
var ObstacleKinds = []ObstacleKind{ObstacleDrifter, ObstacleBigBlock, ObstacleFastDart}

// String returns the config name of the kind
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleDrifter:
		return "drifter"
	case ObstacleBigBlock:
		return "big_block"
	case ObstacleFastDart:
		return "fast_dart"
	default:
		return "unknown"
	}
}

// ParseObstacleKind converts a config name back into a kind
func ParseObstacleKind(name string) (ObstacleKind, error) {
	for _, k := range ObstacleKinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown obstacle kind %q", name)
}

// ObstacleProfile is the fixed configuration of one obstacle kind
type ObstacleProfile struct {
	Kind          ObstacleKind
	Size          float64 // Side length of the rendered square (px)
	Speed         float64 // Inward speed (px/frame)
	Color         color.RGBA
	AvailableFrom float64 // Seconds into the match before this kind may spawn
}

// DefaultObstacleProfiles returns the stock obstacle table, ordered by kind
func DefaultObstacleProfiles() []ObstacleProfile {
	return []ObstacleProfile{
		{Kind: ObstacleDrifter, Size: 25, Speed: 2.5, Color: color.RGBA{255, 0, 255, 255}, AvailableFrom: 0},
		{Kind: ObstacleBigBlock, Size: 40, Speed: 1.5, Color: color.RGBA{255, 102, 0, 255}, AvailableFrom: 20},
		{Kind: ObstacleFastDart, Size: 15, Speed: 5, Color: color.RGBA{0, 255, 255, 255}, AvailableFrom: 40},
	}
}

// Obstacle is a square hazard drifting across the playfield.
// Obstacles survive hits; they are only removed once off screen.
type Obstacle struct {
	ID       EntityID
	Kind     ObstacleKind
	Position geom.Vector2 // Centre
	Velocity geom.Vector2 // px/frame
	Size     float64
	Color    color.RGBA
}

// Update translates the obstacle by one frame of velocity
func (o *Obstacle) Update() {
	o.Position = o.Position.Add(o.Velocity)
}

// Bounds returns the top-left corner and side length of the rendered square
func (o *Obstacle) Bounds() (x, y, size float64) {
	return o.Position.X - o.Size/2, o.Position.Y - o.Size/2, o.Size
}
