package config

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/younwookim/neondodge/internal/domain/entity"
)

// DefaultTuning returns the stock tuning, identical to configs/tuning.json
func DefaultTuning() *Tuning {
	return &Tuning{
		Display: DisplayConfig{
			ScreenWidth:  400,
			ScreenHeight: 800,
			Scale:        1,
			Framerate:    60,
		},
		Match: MatchConfig{DurationSec: 60},
		Player: PlayerConfig{
			Radius:       15,
			HitboxRadius: 12,
			MaxSpeed:     5,
			Acceleration: 0.8,
			Friction:     0.85,
			Deadzone:     0.1,
		},
		Dash: DashConfig{
			Speed:      12,
			DurationMs: 150,
			CooldownMs: 2000,
		},
		Scoring: ScoringConfig{
			SurvivalIntervalMs: 1000,
			SurvivalPoints:     1,
			OrbPoints:          10,
			MultiplierStep:     0.1,
		},
		Spawning: SpawningConfig{
			InitialIntervalMs:  1200,
			MinIntervalMs:      400,
			DecreasePerLevelMs: 50,
			DifficultyStepSec:  10,
		},
		Orb: OrbConfig{
			Radius:          entity.DefaultOrbRadius,
			SpawnIntervalMs: 5000,
			MaxActive:       2,
			Color:           "#00ff88",
		},
		Obstacles: map[string]ObstacleConfig{
			"drifter":   {Size: 25, Speed: 2.5, Color: "#ff00ff", AvailableFromSec: 0},
			"big_block": {Size: 40, Speed: 1.5, Color: "#ff6600", AvailableFromSec: 20},
			"fast_dart": {Size: 15, Speed: 5, Color: "#00ffff", AvailableFromSec: 40},
		},
		Feedback: FeedbackConfig{
			ScreenShake: ScreenShakeConfig{Intensity: 8, DurationMs: 200},
			Haptics: HapticsConfig{
				HitMs:       60,
				HitStrength: 0.6,
				OrbMs:       25,
				OrbStrength: 0.3,
			},
		},
	}
}

// Movement converts the player section into entity movement params
func (t *Tuning) Movement() entity.MovementParams {
	return entity.MovementParams{
		Radius:       t.Player.Radius,
		HitboxRadius: t.Player.HitboxRadius,
		MaxSpeed:     t.Player.MaxSpeed,
		Acceleration: t.Player.Acceleration,
		Friction:     t.Player.Friction,
		Deadzone:     t.Player.Deadzone,
	}
}

// ObstacleProfiles converts the obstacles section into a profile table ordered by kind
func (t *Tuning) ObstacleProfiles() ([]entity.ObstacleProfile, error) {
	profiles := make([]entity.ObstacleProfile, 0, len(t.Obstacles))
	for name, oc := range t.Obstacles {
		kind, err := entity.ParseObstacleKind(name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse obstacles: %w", err)
		}
		c, err := ParseColor(oc.Color)
		if err != nil {
			return nil, fmt.Errorf("failed to parse color of %s: %w", name, err)
		}
		profiles = append(profiles, entity.ObstacleProfile{
			Kind:          kind,
			Size:          oc.Size,
			Speed:         oc.Speed,
			Color:         c,
			AvailableFrom: oc.AvailableFromSec,
		})
	}

	// Map order is random; the spawner needs a stable table to stay reproducible
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Kind < profiles[j].Kind })
	return profiles, nil
}

// OrbColor returns the parsed orb colour
func (t *Tuning) OrbColor() (color.RGBA, error) {
	return ParseColor(t.Orb.Color)
}

// ParseColor parses a "#rrggbb" string into an opaque colour
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Validate rejects tuning the engine cannot run with
func (t *Tuning) Validate() error {
	var errs []error

	if t.Display.ScreenWidth <= 0 || t.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display: screen size must be positive, got %dx%d", t.Display.ScreenWidth, t.Display.ScreenHeight))
	}
	if t.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display: framerate must be positive, got %d", t.Display.Framerate))
	}
	if t.Match.DurationSec <= 0 {
		errs = append(errs, fmt.Errorf("match: duration must be positive, got %v", t.Match.DurationSec))
	}
	if t.Player.HitboxRadius <= 0 || t.Player.HitboxRadius > t.Player.Radius {
		errs = append(errs, fmt.Errorf("player: hitbox radius must be in (0, radius], got %v", t.Player.HitboxRadius))
	}
	if t.Player.Friction <= 0 || t.Player.Friction > 1 {
		errs = append(errs, fmt.Errorf("player: friction must be in (0, 1], got %v", t.Player.Friction))
	}
	if t.Dash.CooldownMs <= 0 {
		errs = append(errs, fmt.Errorf("dash: cooldown must be positive, got %v", t.Dash.CooldownMs))
	}
	if t.Scoring.SurvivalIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("scoring: survival interval must be positive, got %v", t.Scoring.SurvivalIntervalMs))
	}
	if t.Scoring.MultiplierStep < 0 {
		errs = append(errs, fmt.Errorf("scoring: multiplier step must not be negative, got %v", t.Scoring.MultiplierStep))
	}
	if t.Spawning.MinIntervalMs <= 0 || t.Spawning.DifficultyStepSec <= 0 {
		errs = append(errs, errors.New("spawning: minimum interval and difficulty step must be positive"))
	}
	if t.Orb.MaxActive < 0 {
		errs = append(errs, fmt.Errorf("orb: max active must not be negative, got %d", t.Orb.MaxActive))
	}
	if _, err := t.OrbColor(); err != nil {
		errs = append(errs, fmt.Errorf("orb: %w", err))
	}

	profiles, err := t.ObstacleProfiles()
	if err != nil {
		errs = append(errs, err)
	} else {
		// The spawner must always have a candidate
		hasBase := false
		for _, p := range profiles {
			if p.AvailableFrom <= 0 {
				hasBase = true
			}
		}
		if !hasBase {
			errs = append(errs, errors.New("obstacles: at least one kind must be available from 0s"))
		}
	}

	return errors.Join(errs...)
}
