package playing

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/neondodge/internal/domain/geom"
)

// Shake is a screen shake that fades out linearly
type Shake struct {
	intensity float64
	duration  float64 // ms
	remaining float64 // ms
}

// Start (re)starts the shake
func (s *Shake) Start(intensity, durationMs float64) {
	s.intensity = intensity
	s.duration = durationMs
	s.remaining = durationMs
}

// Update advances the shake by dtMs
func (s *Shake) Update(dtMs float64) {
	s.remaining = max(0, s.remaining-dtMs)
}

// Active reports whether the shake still moves the screen
func (s *Shake) Active() bool {
	return s.remaining > 0
}

// Offset returns this frame's displacement
func (s *Shake) Offset(rng *rand.Rand) geom.Vector2 {
	if !s.Active() || s.duration <= 0 {
		return geom.Zero
	}
	amp := s.intensity * s.remaining / s.duration
	return geom.Vector2{
		X: geom.RandomRange(rng, -amp, amp),
		Y: geom.RandomRange(rng, -amp, amp),
	}
}

// Vibrator triggers a haptic pulse
type Vibrator func(duration time.Duration, magnitude float64)

// ebitenVibrate vibrates the device on platforms that support it
func ebitenVibrate(duration time.Duration, magnitude float64) {
	ebiten.Vibrate(&ebiten.VibrateOptions{
		Duration:  duration,
		Magnitude: magnitude,
	})
}
