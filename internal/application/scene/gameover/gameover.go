// Package gameover shows the final score of a match
package gameover

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/neondodge/internal/application/scene"
)

// GameOver is the results screen
type GameOver struct {
	env    *scene.Env
	router scene.Router
	result scene.Result

	againButton *scene.Button
	menuButton  *scene.Button
}

// New creates the results screen for result
func New(env *scene.Env, router scene.Router, result scene.Result) *GameOver {
	w, h := env.ScreenSize()
	return &GameOver{
		env:         env,
		router:      router,
		result:      result,
		againButton: scene.NewButton("PLAY AGAIN", w/2, h/2+40, 200, 48),
		menuButton:  scene.NewButton("MAIN MENU", w/2, h/2+100, 200, 40),
	}
}

// OnEnter is called when entering this scene
func (g *GameOver) OnEnter() {}

// OnExit is called when leaving this scene
func (g *GameOver) OnExit() {}

// Result returns the match being shown
func (g *GameOver) Result() scene.Result {
	return g.result
}

// Update handles the two buttons (implements scene.Scene)
func (g *GameOver) Update(_ float64) (scene.Scene, error) {
	switch {
	case g.againButton.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyR):
		return g.router.Playing(), nil
	case g.menuButton.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return g.router.Title(), nil
	}
	return nil, nil
}

// Draw renders the results (implements scene.Scene)
func (g *GameOver) Draw(screen *ebiten.Image) {
	w, h := g.env.ScreenSize()
	scene.DrawGrid(screen, 40, 0, 0)

	scene.DrawTextCentered(screen, "GAME OVER", w/2, h/4)
	scene.DrawTextCentered(screen, fmt.Sprintf("SCORE %d", g.result.Score), w/2, h/4+40)
	scene.DrawTextCentered(screen, fmt.Sprintf("HIGH SCORE %d", g.result.HighScore), w/2, h/4+60)
	if g.result.NewHighScore {
		scene.DrawTextCentered(screen, "* NEW RECORD! *", w/2, h/4+90)
	}

	g.againButton.Draw(screen, scene.ColorPrimary)
	g.menuButton.Draw(screen, scene.ColorDim)
}
