// Package title is the start screen: high score, Start and the two
// settings toggles.
package title

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/younwookim/neondodge/internal/application/scene"
	"github.com/younwookim/neondodge/internal/domain/entity"
)

// Title is the start screen
type Title struct {
	env    *scene.Env
	router scene.Router

	settings  entity.Settings
	highScore int

	startButton  *scene.Button
	soundButton  *scene.Button
	motionButton *scene.Button
}

// New creates the start screen
func New(env *scene.Env, router scene.Router) *Title {
	w, h := env.ScreenSize()
	cx := w / 2
	return &Title{
		env:          env,
		router:       router,
		startButton:  scene.NewButton("START", cx, h/2, 200, 48),
		soundButton:  scene.NewButton("", cx, h/2+70, 200, 40),
		motionButton: scene.NewButton("", cx, h/2+120, 200, 40),
	}
}

// OnEnter refreshes the persisted values
func (t *Title) OnEnter() {
	t.settings = t.env.Store.LoadSettings()
	t.highScore = t.env.Store.LoadHighScore()
	t.env.Sink.SetEnabled(t.settings.SoundEnabled)
}

// OnExit is called when leaving this scene
func (t *Title) OnExit() {}

// Update handles the menu (implements scene.Scene)
func (t *Title) Update(_ float64) (scene.Scene, error) {
	switch {
	case t.startButton.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return t.router.Playing(), nil
	case t.soundButton.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyS):
		t.ToggleSound()
	case t.motionButton.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyM):
		t.ToggleReducedMotion()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return nil, scene.ErrQuit
	}
	return nil, nil
}

// ToggleSound flips the sound setting and persists it immediately
func (t *Title) ToggleSound() {
	t.settings.SoundEnabled = !t.settings.SoundEnabled
	t.env.Sink.SetEnabled(t.settings.SoundEnabled)
	t.save()
}

// ToggleReducedMotion flips the reduced motion setting and persists it immediately
func (t *Title) ToggleReducedMotion() {
	t.settings.ReducedMotion = !t.settings.ReducedMotion
	t.save()
}

func (t *Title) save() {
	if err := t.env.Store.SaveSettings(t.settings); err != nil {
		t.env.Logger.Error("failed to save settings", zap.Error(err))
	}
}

// Draw renders the start screen (implements scene.Scene)
func (t *Title) Draw(screen *ebiten.Image) {
	w, h := t.env.ScreenSize()
	scene.DrawGrid(screen, 40, 0, 0)

	scene.DrawTextCentered(screen, "N E O N   D O D G E", w/2, h/4)
	scene.DrawTextCentered(screen, "Dodge the blocks. Grab the orbs.", w/2, h/4+30)
	scene.DrawTextCentered(screen, fmt.Sprintf("HIGH SCORE %d", t.highScore), w/2, h/2-60)

	t.soundButton.Label = "SOUND " + scene.OnOff(t.settings.SoundEnabled)
	t.motionButton.Label = "REDUCED MOTION " + scene.OnOff(t.settings.ReducedMotion)
	t.startButton.Draw(screen, scene.ColorPrimary)
	t.soundButton.Draw(screen, scene.ColorDim)
	t.motionButton.Draw(screen, scene.ColorDim)

	scene.DrawTextCentered(screen, "Drag or WASD to move, SPACE / 2nd finger to dash", w/2, h-60)
	scene.DrawTextCentered(screen, "ESC or P to pause", w/2, h-44)
}
