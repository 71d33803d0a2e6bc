// Package playing is the in-match scene: it drives one engine per match
// and turns its events into HUD updates, sound, haptics and screen shake.
package playing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/younwookim/neondodge/internal/application/engine"
	"github.com/younwookim/neondodge/internal/application/scene"
	"github.com/younwookim/neondodge/internal/application/state"
	"github.com/younwookim/neondodge/internal/application/system"
	"github.com/younwookim/neondodge/internal/domain/entity"
)

// hud mirrors the values reported through events
type hud struct {
	timeLeft   int
	score      int
	multiplier float64
}

// Playing is the match scene
type Playing struct {
	env    *scene.Env
	router scene.Router
	logger *zap.Logger

	engine   *engine.Engine
	input    *scene.InputSystem
	matchID  uuid.UUID
	seed     int64
	settings entity.Settings
	initErr  error

	hud     hud
	shake   Shake
	fxRng   *rand.Rand // Cosmetic randomness, kept apart from the engine's RNG
	vibrate Vibrator

	pauseButton   *scene.Button
	resumeButton  *scene.Button
	restartButton *scene.Button
	quitButton    *scene.Button
	soundButton   *scene.Button
	motionButton  *scene.Button
}

// New creates a match scene. The engine is built in OnEnter.
func New(env *scene.Env, router scene.Router) *Playing {
	w, h := env.ScreenSize()
	cx := w / 2
	return &Playing{
		env:     env,
		router:  router,
		logger:  env.Logger,
		input:   scene.NewInputSystem(system.DefaultJoystickRadius),
		vibrate: ebitenVibrate,

		pauseButton:   scene.NewButton("||", w-30, 10, 40, 40),
		resumeButton:  scene.NewButton("RESUME", cx, h/2-110, 200, 40),
		restartButton: scene.NewButton("RESTART", cx, h/2-60, 200, 40),
		soundButton:   scene.NewButton("", cx, h/2-10, 200, 40),
		motionButton:  scene.NewButton("", cx, h/2+40, 200, 40),
		quitButton:    scene.NewButton("QUIT", cx, h/2+90, 200, 40),
	}
}

// OnEnter starts a fresh match
func (p *Playing) OnEnter() {
	p.seed = p.env.NewSeed()
	p.matchID = uuid.New()
	p.settings = p.env.Store.LoadSettings()
	p.fxRng = rand.New(rand.NewSource(p.seed ^ 0x5eed))
	p.input.Reset()
	p.shake = Shake{}

	w, h := p.env.ScreenSize()
	e, err := engine.New(float64(w), float64(h), p.settings, p.env.Store.LoadHighScore(), p.env.Tuning, rand.New(rand.NewSource(p.seed)))
	if err != nil {
		p.initErr = fmt.Errorf("failed to start match: %w", err)
		return
	}
	p.engine = e
	p.env.Sink.SetEnabled(p.settings.SoundEnabled)
	p.hud = hud{
		timeLeft:   int(e.TimeRemaining()),
		multiplier: e.Multiplier(),
	}

	p.logger.Info("match started",
		zap.Stringer("match_id", p.matchID),
		zap.Int64("seed", p.seed),
		zap.Int("high_score", e.HighScore()),
	)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	if p.engine != nil && p.engine.Phase() != state.PhaseGameOver {
		p.logger.Info("match abandoned",
			zap.Stringer("match_id", p.matchID),
			zap.Int("score", p.engine.Score()),
		)
	}
}

// Update proceeds the match (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.initErr != nil {
		return nil, p.initErr
	}

	in := p.input.Poll()
	if p.pauseButton.Clicked() && p.engine.Phase() == state.PhaseRunning {
		in.Pause = true
	}

	if p.engine.Phase() == state.PhasePaused && !in.Pause {
		return p.updatePauseMenu(), nil
	}

	return p.step(in, dt*1000), nil
}

// step runs one frame of the match with already sampled input
func (p *Playing) step(in system.InputState, dtMs float64) scene.Scene {
	if in.Pause {
		p.engine.TogglePause()
		return nil
	}

	if in.Dash {
		dir := in.Move
		if dir.IsZero() {
			dir = p.engine.Snapshot().Player.Velocity
		}
		p.engine.ActivateDash(dir)
	}

	events := p.engine.Update(dtMs, in.Move)
	p.shake.Update(dtMs)
	return p.handleEvents(events)
}

// handleEvents applies the events of one step to the HUD and feedback sinks
func (p *Playing) handleEvents(events []engine.Event) scene.Scene {
	p.env.Sink.Handle(events)
	fb := p.env.Tuning.Feedback

	for _, ev := range events {
		switch ev.Kind {
		case engine.EventScoreChanged:
			p.hud.score = ev.Score
		case engine.EventMultiplierChanged:
			p.hud.multiplier = ev.Multiplier
		case engine.EventTimeChanged:
			p.hud.timeLeft = ev.TimeLeft
		case engine.EventHit:
			if !p.settings.ReducedMotion {
				p.shake.Start(fb.ScreenShake.Intensity, fb.ScreenShake.DurationMs)
				p.vibrate(time.Duration(fb.Haptics.HitMs)*time.Millisecond, fb.Haptics.HitStrength)
			}
		case engine.EventOrbCollected:
			if !p.settings.ReducedMotion {
				p.vibrate(time.Duration(fb.Haptics.OrbMs)*time.Millisecond, fb.Haptics.OrbStrength)
			}
		case engine.EventGameOver:
			return p.finish(ev)
		}
	}
	return nil
}

// finish records the result and moves to the game over screen
func (p *Playing) finish(ev engine.Event) scene.Scene {
	result := scene.Result{
		MatchID:      p.matchID,
		Seed:         p.seed,
		Score:        ev.Score,
		HighScore:    max(ev.Score, p.engine.HighScore()),
		NewHighScore: ev.NewHighScore,
	}

	if ev.NewHighScore {
		if err := p.env.Store.SaveHighScore(ev.Score); err != nil {
			p.logger.Error("failed to save high score", zap.Error(err), zap.Int("score", ev.Score))
		}
	}

	p.logger.Info("match finished",
		zap.Stringer("match_id", p.matchID),
		zap.Int("score", ev.Score),
		zap.Bool("new_high_score", ev.NewHighScore),
		zap.Uint64("fingerprint", p.engine.Fingerprint()),
	)
	return p.router.GameOver(result)
}

// updatePauseMenu handles the pause overlay
func (p *Playing) updatePauseMenu() scene.Scene {
	switch {
	case p.resumeButton.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		p.engine.Resume()
	case p.restartButton.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyR):
		return p.router.Playing()
	case p.quitButton.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return p.router.Title()
	case p.soundButton.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyS):
		p.toggleSound()
	case p.motionButton.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyM):
		p.toggleReducedMotion()
	}
	return nil
}

func (p *Playing) toggleSound() {
	p.settings.SoundEnabled = !p.settings.SoundEnabled
	p.env.Sink.SetEnabled(p.settings.SoundEnabled)
	p.saveSettings()
}

func (p *Playing) toggleReducedMotion() {
	p.settings.ReducedMotion = !p.settings.ReducedMotion
	if p.settings.ReducedMotion {
		p.shake = Shake{}
	}
	p.saveSettings()
}

func (p *Playing) saveSettings() {
	if err := p.env.Store.SaveSettings(p.settings); err != nil {
		p.logger.Error("failed to save settings", zap.Error(err))
	}
}
