// Package sim runs matches headlessly from generated input scripts.
package sim

import (
	"math"
	"math/rand"

	"github.com/younwookim/neondodge/internal/domain/geom"
)

// FrameInput is the input handed to one engine step
type FrameInput struct {
	ElapsedMs float64
	Move      geom.Vector2
	Dash      bool
}

// Script is a fixed input sequence derived from a seed
type Script struct {
	Seed   int64
	Frames []FrameInput
}

// Policy parameters for NewScript
const (
	turnEveryFrames = 45   // Frames between heading changes
	dashChance      = 0.02 // Per frame
	idleChance      = 0.15 // Chance a heading is "stand still"
)

// NewScript generates a wandering input sequence of n frames at frameMs each.
// The same seed always yields the same script.
func NewScript(seed int64, n int, frameMs float64) Script {
	rng := rand.New(rand.NewSource(seed))
	frames := make([]FrameInput, n)

	var heading geom.Vector2
	for i := range frames {
		if i%turnEveryFrames == 0 {
			heading = geom.Vector2{}
			if rng.Float64() >= idleChance {
				a := rng.Float64() * 2 * math.Pi
				heading = geom.Vector2{X: math.Cos(a), Y: math.Sin(a)}
			}
		}
		frames[i] = FrameInput{
			ElapsedMs: frameMs,
			Move:      heading,
			Dash:      rng.Float64() < dashChance,
		}
	}

	return Script{Seed: seed, Frames: frames}
}

// Cursor walks a script frame by frame
type Cursor struct {
	script Script
	frame  int
}

// NewCursor creates a cursor at the first frame
func NewCursor(script Script) *Cursor {
	return &Cursor{script: script}
}

// Next returns the input for the current frame and advances
func (c *Cursor) Next() (FrameInput, bool) {
	if c.frame >= len(c.script.Frames) {
		return FrameInput{}, false
	}
	fi := c.script.Frames[c.frame]
	c.frame++
	return fi, true
}

// CurrentFrame returns the current frame number
func (c *Cursor) CurrentFrame() int {
	return c.frame
}

// TotalFrames returns the total number of frames
func (c *Cursor) TotalFrames() int {
	return len(c.script.Frames)
}

// Seed returns the seed the script was generated from
func (c *Cursor) Seed() int64 {
	return c.script.Seed
}

// Reset rewinds to the first frame
func (c *Cursor) Reset() {
	c.frame = 0
}
