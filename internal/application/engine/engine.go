// Package engine implements the match state machine: timers, scoring,
// spawning, movement and collision for one round of play.
//
// The engine is single-writer. Update, the control operations and the
// accessors must all be called from the goroutine driving the frame loop.
package engine

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/younwookim/neondodge/internal/application/state"
	"github.com/younwookim/neondodge/internal/application/system"
	"github.com/younwookim/neondodge/internal/domain/entity"
	"github.com/younwookim/neondodge/internal/domain/geom"
	"github.com/younwookim/neondodge/internal/infrastructure/config"
)

// Engine runs a single match
type Engine struct {
	screenW float64
	screenH float64

	settings  entity.Settings
	highScore int

	tuning   *config.Tuning
	movement entity.MovementParams
	spawner  *system.Spawner

	phase     state.Phase
	player    *entity.Player
	obstacles []*entity.Obstacle
	orbs      []*entity.EnergyOrb

	score         int
	multiplier    float64
	timeRemaining float64 // seconds

	// Accumulators (ms)
	scoreTimer    float64
	obstacleTimer float64
	orbTimer      float64

	dashing      bool
	dashTimer    float64 // ms spent in the current dash
	dashCooldown float64 // ms until the next dash is allowed
}

// New creates an engine in the Running phase with a full match clock.
// settings and highScore are the values read from the store at match start;
// highScore is not refreshed during the match. A nil tuning selects
// config.DefaultTuning.
func New(screenW, screenH float64, settings entity.Settings, highScore int, tuning *config.Tuning, rng *rand.Rand) (*Engine, error) {
	if tuning == nil {
		tuning = config.DefaultTuning()
	}
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	if screenW <= 0 || screenH <= 0 {
		return nil, fmt.Errorf("failed to create engine: screen size must be positive, got %vx%v", screenW, screenH)
	}

	profiles, err := tuning.ObstacleProfiles()
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	movement := tuning.Movement()

	return &Engine{
		screenW:       screenW,
		screenH:       screenH,
		settings:      settings,
		highScore:     highScore,
		tuning:        tuning,
		movement:      movement,
		spawner:       system.NewSpawner(rng, profiles, tuning.Orb.Radius),
		phase:         state.PhaseRunning,
		player:        entity.NewPlayer(screenW, screenH, movement),
		score:         0,
		multiplier:    1,
		timeRemaining: tuning.Match.DurationSec,
	}, nil
}

// Update advances the match by elapsedMs and returns the events produced.
// It is a no-op returning nil while Paused or GameOver.
//
// Timers advance by elapsedMs, but movement is integrated once per call
// regardless of elapsedMs, so the host should call Update at a steady rate.
func (e *Engine) Update(elapsedMs float64, input geom.Vector2) []Event {
	if e.phase != state.PhaseRunning {
		return nil
	}

	var events []Event

	// 1. Clocks
	e.timeRemaining -= elapsedMs / 1000
	e.scoreTimer += elapsedMs
	e.obstacleTimer += elapsedMs
	e.orbTimer += elapsedMs
	if e.dashing {
		e.dashTimer += elapsedMs
	}
	if e.dashCooldown > 0 {
		e.dashCooldown = math.Max(0, e.dashCooldown-elapsedMs)
	}

	// 2. Match end
	if e.timeRemaining <= 0 {
		e.timeRemaining = 0
		e.phase = state.PhaseGameOver
		return append(events, Event{
			Kind:         EventGameOver,
			Score:        e.score,
			NewHighScore: e.score > e.highScore,
		})
	}

	// 3. Survival score, remainder carried over
	if e.scoreTimer >= e.tuning.Scoring.SurvivalIntervalMs {
		e.score += e.tuning.Scoring.SurvivalPoints
		e.scoreTimer -= e.tuning.Scoring.SurvivalIntervalMs
		events = append(events, Event{Kind: EventScoreChanged, Score: e.score})
	}

	// 4. HUD clock
	events = append(events, Event{Kind: EventTimeChanged, TimeLeft: int(math.Ceil(e.timeRemaining))})

	// 5-6. Obstacle spawning
	if e.obstacleTimer >= e.SpawnIntervalMs() {
		e.obstacles = append(e.obstacles, e.spawner.SpawnObstacle(e.screenW, e.screenH, e.ElapsedSec()))
		e.obstacleTimer = 0
	}

	// 7. Orb spawning; the accumulator resets even when the cap blocks the spawn
	if e.orbTimer >= e.tuning.Orb.SpawnIntervalMs {
		if len(e.orbs) < e.tuning.Orb.MaxActive {
			e.orbs = append(e.orbs, e.spawner.SpawnOrb(e.screenW, e.screenH))
		}
		e.orbTimer = 0
	}

	// 8. Player
	e.player.UpdateMovement(input, e.screenW, e.screenH, e.dashing, e.movement)

	// 9. Obstacles move, then leave
	kept := e.obstacles[:0]
	for _, o := range e.obstacles {
		o.Update()
		if !system.IsOffScreen(o.Position, o.Size, e.screenW, e.screenH) {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(e.obstacles); i++ {
		e.obstacles[i] = nil
	}
	e.obstacles = kept

	// 10. At most one hit per step; dashing grants invulnerability
	if !e.dashing {
		for _, o := range e.obstacles {
			if system.PlayerHitsObstacle(e.player, o) {
				e.multiplier = 1
				events = append(events,
					Event{Kind: EventMultiplierChanged, Multiplier: e.multiplier},
					Event{Kind: EventHit},
				)
				break
			}
		}
	}

	// 11. Orbs, newest first
	for i := len(e.orbs) - 1; i >= 0; i-- {
		if !system.PlayerHitsOrb(e.player, e.orbs[i]) {
			continue
		}
		e.score += int(math.Floor(e.tuning.Scoring.OrbPoints * e.multiplier))
		e.multiplier += e.tuning.Scoring.MultiplierStep
		e.orbs = append(e.orbs[:i], e.orbs[i+1:]...)
		events = append(events,
			Event{Kind: EventScoreChanged, Score: e.score},
			Event{Kind: EventMultiplierChanged, Multiplier: e.multiplier},
			Event{Kind: EventOrbCollected, Score: e.score},
		)
	}

	// 12. Dash expiry
	if e.dashing && e.dashTimer >= e.tuning.Dash.DurationMs {
		e.dashing = false
		e.dashTimer = 0
	}

	return events
}

// ActivateDash launches the player along dir.
// It returns false without changing anything when the match is not running,
// a dash is in progress, the cooldown is active, or dir is the zero vector.
func (e *Engine) ActivateDash(dir geom.Vector2) bool {
	if e.phase != state.PhaseRunning || e.dashing || e.dashCooldown > 0 {
		return false
	}

	n := geom.Normalize(dir)
	if n.IsZero() {
		return false
	}

	e.player.Velocity = n.Scale(e.tuning.Dash.Speed)
	e.dashing = true
	e.dashTimer = 0
	e.dashCooldown = e.tuning.Dash.CooldownMs
	return true
}

// DashCooldownPercent returns 0 right after a dash and 1 once a dash is available again
func (e *Engine) DashCooldownPercent() float64 {
	return geom.Clamp(1-e.dashCooldown/e.tuning.Dash.CooldownMs, 0, 1)
}

// Pause stops the match clock. No-op unless Running.
func (e *Engine) Pause() {
	if e.phase == state.PhaseRunning {
		e.phase = state.PhasePaused
	}
}

// Resume restarts the match clock. No-op unless Paused.
func (e *Engine) Resume() {
	if e.phase == state.PhasePaused {
		e.phase = state.PhaseRunning
	}
}

// TogglePause switches between Running and Paused. No-op once GameOver.
func (e *Engine) TogglePause() {
	switch e.phase {
	case state.PhaseRunning:
		e.phase = state.PhasePaused
	case state.PhasePaused:
		e.phase = state.PhaseRunning
	}
}

// Phase returns the current phase
func (e *Engine) Phase() state.Phase {
	return e.phase
}

// Score returns the current score
func (e *Engine) Score() int {
	return e.score
}

// Multiplier returns the current orb multiplier (always >= 1)
func (e *Engine) Multiplier() float64 {
	return e.multiplier
}

// TimeRemaining returns the match clock in seconds
func (e *Engine) TimeRemaining() float64 {
	return e.timeRemaining
}

// ElapsedSec returns the seconds played so far
func (e *Engine) ElapsedSec() float64 {
	return e.tuning.Match.DurationSec - e.timeRemaining
}

// DifficultyLevel returns the number of completed difficulty steps
func (e *Engine) DifficultyLevel() int {
	return int(math.Floor(e.ElapsedSec() / e.tuning.Spawning.DifficultyStepSec))
}

// SpawnIntervalMs returns the current obstacle spawn interval
func (e *Engine) SpawnIntervalMs() float64 {
	sp := e.tuning.Spawning
	return math.Max(sp.MinIntervalMs, sp.InitialIntervalMs-float64(e.DifficultyLevel())*sp.DecreasePerLevelMs)
}

// IsDashing reports whether a dash is in progress
func (e *Engine) IsDashing() bool {
	return e.dashing
}

// Settings returns the settings supplied at construction
func (e *Engine) Settings() entity.Settings {
	return e.settings
}

// HighScore returns the high score supplied at construction
func (e *Engine) HighScore() int {
	return e.highScore
}

// ScreenSize returns the playfield size
func (e *Engine) ScreenSize() (w, h float64) {
	return e.screenW, e.screenH
}
