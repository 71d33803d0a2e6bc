package term

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/younwookim/neondodge/internal/application/engine"
	"github.com/younwookim/neondodge/internal/application/state"
	"github.com/younwookim/neondodge/internal/domain/entity"
	"github.com/younwookim/neondodge/internal/infrastructure/audio"
	"github.com/younwookim/neondodge/internal/infrastructure/config"
	"github.com/younwookim/neondodge/internal/infrastructure/storage"
)

// Options configures a Session
type Options struct {
	Tuning  *config.Tuning
	Store   storage.Store
	Sink    *audio.Sink
	Logger  *zap.Logger
	NewSeed func() int64
	Hold    time.Duration // Key hold window, DefaultHold when zero
}

// Session plays consecutive matches on one terminal screen
type Session struct {
	opts     Options
	logger   *zap.Logger
	renderer *Renderer
	controls *Controls

	engine   *engine.Engine
	matchID  uuid.UUID
	seed     int64
	settings entity.Settings

	flashMs float64
	banner  []string
}

// NewSession creates a session and starts the first match
func NewSession(screen tcell.Screen, opts Options) (*Session, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Sink == nil {
		opts.Sink = audio.NewSink(nil, false)
	}
	if opts.NewSeed == nil {
		opts.NewSeed = func() int64 { return time.Now().UnixNano() }
	}

	renderer, err := NewRenderer(screen, opts.Tuning)
	if err != nil {
		return nil, err
	}

	s := &Session{
		opts:     opts,
		logger:   opts.Logger,
		renderer: renderer,
		controls: NewControls(opts.Hold),
	}
	if err := s.Start(); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins a fresh match
func (s *Session) Start() error {
	s.seed = s.opts.NewSeed()
	s.matchID = uuid.New()
	s.settings = s.opts.Store.LoadSettings()
	s.opts.Sink.SetEnabled(s.settings.SoundEnabled)
	s.controls.Clear()
	s.flashMs = 0
	s.banner = nil

	w, h := float64(s.opts.Tuning.Display.ScreenWidth), float64(s.opts.Tuning.Display.ScreenHeight)
	e, err := engine.New(w, h, s.settings, s.opts.Store.LoadHighScore(), s.opts.Tuning, rand.New(rand.NewSource(s.seed)))
	if err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}
	s.engine = e

	s.logger.Info("match started",
		zap.Stringer("match_id", s.matchID),
		zap.Int64("seed", s.seed),
		zap.Int("high_score", e.HighScore()),
	)
	return nil
}

// Engine returns the running match
func (s *Session) Engine() *engine.Engine {
	return s.engine
}

// Settings returns the settings of the current match
func (s *Session) Settings() entity.Settings {
	return s.settings
}

// HandleKey applies ev. It returns false once the player asked to quit.
func (s *Session) HandleKey(ev *tcell.EventKey, now time.Time) bool {
	action := s.controls.HandleKey(ev, now)
	over := s.engine.Phase() == state.PhaseGameOver
	paused := s.engine.Phase() == state.PhasePaused

	switch action {
	case ActionQuit:
		if !over {
			s.logger.Info("match abandoned",
				zap.Stringer("match_id", s.matchID),
				zap.Int("score", s.engine.Score()),
			)
		}
		return false
	case ActionPause:
		s.engine.TogglePause()
	case ActionDash:
		dir := s.controls.Vector(now)
		if dir.IsZero() {
			dir = s.engine.Snapshot().Player.Velocity
		}
		s.engine.ActivateDash(dir)
	case ActionRestart:
		if over || paused {
			if err := s.Start(); err != nil {
				s.logger.Error("failed to restart", zap.Error(err))
				return false
			}
		}
	case ActionSound:
		if paused || over {
			s.settings.SoundEnabled = !s.settings.SoundEnabled
			s.opts.Sink.SetEnabled(s.settings.SoundEnabled)
			s.saveSettings()
		}
	case ActionMotion:
		if paused || over {
			s.settings.ReducedMotion = !s.settings.ReducedMotion
			s.saveSettings()
		}
	}
	return true
}

// Tick advances the match by elapsedMs using the keys held at now
func (s *Session) Tick(elapsedMs float64, now time.Time) {
	if s.flashMs > 0 {
		s.flashMs -= elapsedMs
	}

	events := s.engine.Update(elapsedMs, s.controls.Vector(now))
	s.opts.Sink.Handle(events)

	for _, ev := range events {
		switch ev.Kind {
		case engine.EventHit:
			if !s.settings.ReducedMotion {
				s.flashMs = s.opts.Tuning.Feedback.ScreenShake.DurationMs
			}
		case engine.EventGameOver:
			s.finish(ev)
		}
	}
}

// Flashing reports whether hit feedback is showing
func (s *Session) Flashing() bool {
	return s.flashMs > 0
}

func (s *Session) finish(ev engine.Event) {
	best := s.engine.HighScore()
	if ev.NewHighScore {
		best = ev.Score
		if err := s.opts.Store.SaveHighScore(ev.Score); err != nil {
			s.logger.Error("failed to save high score", zap.Error(err))
		}
	}

	s.logger.Info("match finished",
		zap.Stringer("match_id", s.matchID),
		zap.Int64("seed", s.seed),
		zap.Int("score", ev.Score),
		zap.Bool("new_high_score", ev.NewHighScore),
		zap.Uint64("fingerprint", s.engine.Fingerprint()),
	)

	s.banner = []string{
		"GAME OVER",
		"",
		fmt.Sprintf("SCORE %d", ev.Score),
		fmt.Sprintf("HIGH SCORE %d", best),
	}
	if ev.NewHighScore {
		s.banner = append(s.banner, "* NEW RECORD! *")
	}
	s.banner = append(s.banner, "", "R play again  Q quit")
}

// Banner returns the lines shown over the playfield, if any
func (s *Session) Banner() []string {
	return s.banner
}

// Draw renders the current frame
func (s *Session) Draw() {
	s.renderer.Draw(Frame{
		Snapshot: s.engine.Snapshot(),
		Flash:    s.Flashing(),
		Banner:   s.banner,
	})
}

func (s *Session) saveSettings() {
	if err := s.opts.Store.SaveSettings(s.settings); err != nil {
		s.logger.Error("failed to save settings", zap.Error(err))
	}
}

// Run drives the session until the player quits or events closes.
// tick is the frame period; the engine receives the measured elapsed time.
func (s *Session) Run(events <-chan tcell.Event, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	last := time.Now()
	s.Draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !s.HandleKey(ev, time.Now()) {
					return
				}
			case *tcell.EventResize:
				s.renderer.screen.Sync()
			}

		case now := <-ticker.C:
			s.Tick(float64(now.Sub(last).Microseconds())/1000, now)
			last = now
			s.Draw()
		}
	}
}
