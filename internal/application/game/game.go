// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/neondodge/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	logger  *zap.Logger
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
// framerate sets the fixed delta time handed to scenes.
func New(initialScene scene.Scene, screenW, screenH, framerate int, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	if framerate <= 0 {
		framerate = 60
	}
	g := &Game{
		current: initialScene,
		logger:  logger,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(framerate),
	}
	g.logger.Debug("enter scene", zap.String("scene", sceneName(initialScene)))
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
// scene.ErrQuit is translated into ebiten.Termination for a clean shutdown.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		if errors.Is(err, scene.ErrQuit) {
			g.current.OnExit()
			return ebiten.Termination
		}
		return err
	}

	// Handle scene transition
	if next != nil {
		g.logger.Debug("switch scene",
			zap.String("from", sceneName(g.current)),
			zap.String("to", sceneName(next)))
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

func sceneName(s scene.Scene) string {
	return fmt.Sprintf("%T", s)
}
