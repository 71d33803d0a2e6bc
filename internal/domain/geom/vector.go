// Package geom provides the scalar and 2D vector helpers shared by the
// simulation. Every function is pure; randomness comes from a caller-owned
// *rand.Rand so a match can be reproduced from its seed.
package geom

import (
	"math"
	"math/rand"
)

// Vector2 is a point or direction in screen space (pixels, y grows downward)
type Vector2 struct {
	X, Y float64
}

// Zero is the zero vector
var Zero = Vector2{}

// Add returns a + b
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns a - b
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// IsZero reports whether both components are exactly zero
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Clamp restricts value to [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, value))
}

// Lerp interpolates linearly between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Distance returns the Euclidean distance between p and q
func Distance(p, q Vector2) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Magnitude returns the length of v
func Magnitude(v Vector2) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length.
// A zero-length vector normalizes to the zero vector.
func Normalize(v Vector2) Vector2 {
	length := Magnitude(v)
	if length == 0 {
		return Zero
	}
	return Vector2{X: v.X / length, Y: v.Y / length}
}

// RandomRange returns a uniform value in [lo, hi)
func RandomRange(rng *rand.Rand, lo, hi float64) float64 {
	return rng.Float64()*(hi-lo) + lo
}

// RandomChoice picks a uniform element of items.
// items must not be empty.
func RandomChoice[T any](rng *rand.Rand, items []T) T {
	if len(items) == 0 {
		panic("geom: RandomChoice called with no candidates")
	}
	return items[rng.Intn(len(items))]
}
