// Package term renders and drives a match in a text terminal through tcell.
package term

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/younwookim/neondodge/internal/application/engine"
	"github.com/younwookim/neondodge/internal/application/state"
	"github.com/younwookim/neondodge/internal/infrastructure/config"
)

// Glyphs
const (
	glyphPlayer   = '@'
	glyphDash     = '*'
	glyphOrb      = 'o'
	glyphObstacle = '#'
	glyphGrid     = '.'
	glyphBorder   = '!'
)

// Renderer maps the playfield onto the terminal grid. Row 0 holds the HUD.
type Renderer struct {
	screen tcell.Screen
	worldW float64
	worldH float64

	base   tcell.Style
	text   tcell.Style
	grid   tcell.Style
	orb    tcell.Style
	player tcell.Style
	dash   tcell.Style
	alert  tcell.Style
}

// NewRenderer creates a renderer for the playfield described by tuning
func NewRenderer(screen tcell.Screen, tuning *config.Tuning) (*Renderer, error) {
	orb, err := tuning.OrbColor()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	base := tcell.StyleDefault.Background(tcell.NewRGBColor(10, 10, 20))
	return &Renderer{
		screen: screen,
		worldW: float64(tuning.Display.ScreenWidth),
		worldH: float64(tuning.Display.ScreenHeight),
		base:   base,
		text:   base.Foreground(tcell.NewRGBColor(230, 230, 255)).Bold(true),
		grid:   base.Foreground(blend(orb, color.RGBA{10, 10, 20, 255}, 0.85)),
		orb:    base.Foreground(toTcell(orb)).Bold(true),
		player: base.Foreground(tcell.NewRGBColor(0, 200, 255)).Bold(true),
		dash:   base.Foreground(tcell.NewRGBColor(255, 255, 255)).Bold(true),
		alert:  base.Foreground(tcell.NewRGBColor(255, 40, 80)).Bold(true),
	}, nil
}

// Cell maps a playfield position to a terminal cell inside the play area
func (r *Renderer) Cell(x, y float64) (col, row int) {
	cols, rows := r.playArea()
	col = int(math.Floor(x / r.worldW * float64(cols)))
	row = int(math.Floor(y / r.worldH * float64(rows)))
	return clampInt(col, 0, cols-1), 1 + clampInt(row, 0, rows-1)
}

func (r *Renderer) playArea() (cols, rows int) {
	w, h := r.screen.Size()
	return max(w, 1), max(h-1, 1)
}

// Frame is everything one terminal frame shows
type Frame struct {
	Snapshot engine.Snapshot
	Flash    bool // Hit feedback border
	Banner   []string
}

// Draw renders f and shows it
func (r *Renderer) Draw(f Frame) {
	r.screen.SetStyle(r.base)
	r.screen.Clear()

	r.drawGrid()
	snap := f.Snapshot

	for _, orb := range snap.Orbs {
		col, row := r.Cell(orb.Position.X, orb.Position.Y)
		r.screen.SetContent(col, row, glyphOrb, nil, r.orb)
	}

	for _, o := range snap.Obstacles {
		x, y, size := o.Bounds()
		c0, r0 := r.Cell(x, y)
		c1, r1 := r.Cell(x+size, y+size)
		style := r.base.Foreground(toTcell(o.Color))
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				r.screen.SetContent(col, row, glyphObstacle, nil, style)
			}
		}
	}

	col, row := r.Cell(snap.Player.Position.X, snap.Player.Position.Y)
	if snap.IsDashing {
		r.screen.SetContent(col, row, glyphDash, nil, r.dash)
	} else {
		r.screen.SetContent(col, row, glyphPlayer, nil, r.player)
	}

	if f.Flash {
		r.drawBorder()
	}
	r.drawHUD(snap)

	switch {
	case len(f.Banner) > 0:
		r.drawBanner(f.Banner)
	case snap.Phase == state.PhasePaused:
		r.drawBanner([]string{"PAUSED", "", "P resume  R restart  Q quit", "O sound  M reduced motion"})
	}

	r.screen.Show()
}

func (r *Renderer) drawGrid() {
	cols, rows := r.playArea()
	for row := 0; row < rows; row += 4 {
		for col := 0; col < cols; col += 8 {
			r.screen.SetContent(col, row+1, glyphGrid, nil, r.grid)
		}
	}
}

func (r *Renderer) drawBorder() {
	cols, rows := r.playArea()
	for col := 0; col < cols; col++ {
		r.screen.SetContent(col, 1, glyphBorder, nil, r.alert)
		r.screen.SetContent(col, rows, glyphBorder, nil, r.alert)
	}
	for row := 1; row <= rows; row++ {
		r.screen.SetContent(0, row, glyphBorder, nil, r.alert)
		r.screen.SetContent(cols-1, row, glyphBorder, nil, r.alert)
	}
}

// HUDLine formats the status row
func HUDLine(snap engine.Snapshot) string {
	const meter = 10
	filled := int(math.Round(snap.DashCooldownPercent * meter))
	return fmt.Sprintf("TIME %2d  SCORE %d  BEST %d  x%.1f  LV %d  DASH [%s%s]",
		int(math.Ceil(snap.TimeRemaining)),
		snap.Score,
		snap.HighScore,
		snap.Multiplier,
		snap.DifficultyLevel,
		strings.Repeat("=", filled),
		strings.Repeat(" ", meter-filled),
	)
}

func (r *Renderer) drawHUD(snap engine.Snapshot) {
	r.print(0, 0, HUDLine(snap), r.text)
}

func (r *Renderer) drawBanner(lines []string) {
	w, h := r.screen.Size()
	top := h/2 - len(lines)/2
	for i, line := range lines {
		r.print(w/2-len(line)/2, top+i, line, r.text)
	}
}

func (r *Renderer) print(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blend mixes a towards b in Lab space
func blend(a, b color.RGBA, t float64) tcell.Color {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
