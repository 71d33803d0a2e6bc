// Package scene defines the Scene interface for game screens.
//
// Each game screen (title, playing, game over) implements the Scene
// interface to handle its own update logic and rendering. Screens never
// import each other; transitions go through a Router.
package scene

import (
	"errors"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/neondodge/internal/infrastructure/audio"
	"github.com/younwookim/neondodge/internal/infrastructure/config"
	"github.com/younwookim/neondodge/internal/infrastructure/storage"
)

// ErrQuit is returned from Update to close the game
var ErrQuit = errors.New("quit requested")

// Scene represents a game screen (title, playing, game over)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}

// Result summarises a finished match
type Result struct {
	MatchID      uuid.UUID
	Seed         int64
	Score        int
	HighScore    int // Best score including this match
	NewHighScore bool
}

// Router builds the scene to switch to
type Router interface {
	Title() Scene
	Playing() Scene
	GameOver(result Result) Scene
}

// Env carries the collaborators shared by every scene
type Env struct {
	Tuning  *config.Tuning
	Store   storage.Store
	Sink    *audio.Sink
	Logger  *zap.Logger
	NewSeed func() int64 // Seed for the next match
}

// ScreenSize returns the logical screen size
func (e *Env) ScreenSize() (w, h int) {
	return e.Tuning.Display.ScreenWidth, e.Tuning.Display.ScreenHeight
}
