package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/neondodge/internal/application/engine"
	"github.com/younwookim/neondodge/internal/application/scene"
	"github.com/younwookim/neondodge/internal/application/state"
)

// Colors for rendering
var (
	colorPlayer      = color.RGBA{0, 255, 255, 255}
	colorPlayerDash  = color.RGBA{255, 255, 255, 255}
	colorHitbox      = color.RGBA{255, 255, 255, 60}
	colorCooldown    = color.RGBA{0, 255, 136, 200}
	colorCooldownBG  = color.RGBA{255, 255, 255, 40}
	colorJoystickBG  = color.RGBA{255, 255, 255, 30}
	colorJoystickKnb = color.RGBA{0, 255, 136, 200}
)

// cooldownSegments is the number of line segments of the dash ring
const cooldownSegments = 32

// Draw renders the match (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	if p.engine == nil {
		screen.Fill(scene.ColorBackground)
		return
	}
	snap := p.engine.Snapshot()

	off := p.shake.Offset(p.fxRng)
	ox, oy := float32(off.X), float32(off.Y)

	scene.DrawGrid(screen, 40, ox, oy)
	p.drawOrbs(screen, snap, ox, oy)
	p.drawObstacles(screen, snap, ox, oy)
	p.drawPlayer(screen, snap, ox, oy)
	p.drawJoystick(screen)
	p.drawHUD(screen, snap)

	if snap.Phase == state.PhasePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawOrbs(screen *ebiten.Image, snap engine.Snapshot, ox, oy float32) {
	orbColor, err := p.env.Tuning.OrbColor()
	if err != nil {
		orbColor = scene.ColorPrimary
	}
	glow := orbColor
	glow.A = 60

	for _, orb := range snap.Orbs {
		x, y := float32(orb.Position.X)+ox, float32(orb.Position.Y)+oy
		r := float32(orb.Radius)
		vector.DrawFilledCircle(screen, x, y, r*1.8, glow, true)
		vector.DrawFilledCircle(screen, x, y, r, orbColor, true)
	}
}

func (p *Playing) drawObstacles(screen *ebiten.Image, snap engine.Snapshot, ox, oy float32) {
	for _, o := range snap.Obstacles {
		x, y, size := o.Bounds()
		fill := o.Color
		fill.A = 90
		vector.DrawFilledRect(screen, float32(x)+ox, float32(y)+oy, float32(size), float32(size), fill, false)
		vector.StrokeRect(screen, float32(x)+ox, float32(y)+oy, float32(size), float32(size), 2, o.Color, false)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, snap engine.Snapshot, ox, oy float32) {
	pl := snap.Player
	x, y := float32(pl.Position.X)+ox, float32(pl.Position.Y)+oy

	c := colorPlayer
	if snap.IsDashing {
		c = colorPlayerDash
	}
	vector.DrawFilledCircle(screen, x, y, float32(pl.Radius), c, true)
	vector.StrokeCircle(screen, x, y, float32(pl.HitboxRadius), 1, colorHitbox, true)

	// Dash cooldown ring, full when a dash is available
	ringR := float32(pl.Radius) + 6
	vector.StrokeCircle(screen, x, y, ringR, 2, colorCooldownBG, true)
	drawArc(screen, x, y, ringR, snap.DashCooldownPercent, colorCooldown)
}

// drawArc strokes a clockwise arc from 12 o'clock covering fraction of the circle
func drawArc(screen *ebiten.Image, cx, cy, r float32, fraction float64, c color.Color) {
	n := int(math.Round(fraction * cooldownSegments))
	for i := 0; i < n; i++ {
		a0 := -math.Pi/2 + 2*math.Pi*float64(i)/cooldownSegments
		a1 := -math.Pi/2 + 2*math.Pi*float64(i+1)/cooldownSegments
		vector.StrokeLine(screen,
			cx+r*float32(math.Cos(a0)), cy+r*float32(math.Sin(a0)),
			cx+r*float32(math.Cos(a1)), cy+r*float32(math.Sin(a1)),
			3, c, true)
	}
}

func (p *Playing) drawJoystick(screen *ebiten.Image) {
	j := p.input.Joystick()
	if !j.Active() {
		return
	}
	c, k := j.Center(), j.Knob()
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(j.Radius*2), colorJoystickBG, true)
	vector.DrawFilledCircle(screen, float32(k.X), float32(k.Y), float32(j.Radius), colorJoystickKnb, true)
}

func (p *Playing) drawHUD(screen *ebiten.Image, snap engine.Snapshot) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TIME %ds", p.hud.timeLeft), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", p.hud.score), 10, 26)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("x%.1f", p.hud.multiplier), 10, 42)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HIGH %d", snap.HighScore), 10, 58)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LV %d", snap.DifficultyLevel+1), 10, 74)
	p.pauseButton.Draw(screen, scene.ColorDim)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	w, h := p.env.ScreenSize()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), scene.ColorOverlay, false)

	scene.DrawTextCentered(screen, "PAUSED", w/2, h/2-160)
	p.soundButton.Label = "SOUND " + scene.OnOff(p.settings.SoundEnabled)
	p.motionButton.Label = "REDUCED MOTION " + scene.OnOff(p.settings.ReducedMotion)

	for _, b := range []*scene.Button{p.resumeButton, p.restartButton, p.soundButton, p.motionButton, p.quitButton} {
		b.Draw(screen, scene.ColorPrimary)
	}
}
