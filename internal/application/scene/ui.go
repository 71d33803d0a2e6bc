package scene

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Palette
var (
	ColorBackground = color.RGBA{10, 10, 26, 255}
	ColorGrid       = color.RGBA{30, 30, 60, 255}
	ColorPrimary    = color.RGBA{0, 255, 136, 255}
	ColorAccent     = color.RGBA{255, 0, 255, 255}
	ColorText       = color.RGBA{255, 255, 255, 255}
	ColorDim        = color.RGBA{255, 255, 255, 150}
	ColorOverlay    = color.RGBA{0, 0, 0, 190}
)

// debugCharW and debugCharH are the glyph size of the debug font
const (
	debugCharW = 6
	debugCharH = 16
)

// Button is a rectangular tap target
type Button struct {
	Label string
	Rect  image.Rectangle
}

// NewButton creates a button of size w x h centred on cx
func NewButton(label string, cx, y, w, h int) *Button {
	return &Button{
		Label: label,
		Rect:  image.Rect(cx-w/2, y, cx+w/2, y+h),
	}
}

// Hit reports whether the point lies inside the button
func (b *Button) Hit(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Clicked reports whether the button was clicked or tapped this frame
func (b *Button) Clicked() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if b.Hit(ebiten.CursorPosition()) {
			return true
		}
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if b.Hit(ebiten.TouchPosition(id)) {
			return true
		}
	}
	return false
}

// Draw renders the button outline and centred label
func (b *Button) Draw(screen *ebiten.Image, c color.Color) {
	r := b.Rect
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, c, true)
	DrawTextCentered(screen, b.Label, r.Min.X+r.Dx()/2, r.Min.Y+(r.Dy()-debugCharH)/2)
}

// DrawTextCentered prints text horizontally centred on cx
func DrawTextCentered(screen *ebiten.Image, text string, cx, y int) {
	ebitenutil.DebugPrintAt(screen, text, cx-len(text)*debugCharW/2, y)
}

// OnOff formats a toggle state
func OnOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

// DrawGrid fills the background with the neon grid
func DrawGrid(screen *ebiten.Image, spacing int, offsetX, offsetY float32) {
	screen.Fill(ColorBackground)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	for x := 0; x <= w; x += spacing {
		vector.StrokeLine(screen, float32(x)+offsetX, 0, float32(x)+offsetX, float32(h), 1, ColorGrid, false)
	}
	for y := 0; y <= h; y += spacing {
		vector.StrokeLine(screen, 0, float32(y)+offsetY, float32(w), float32(y)+offsetY, 1, ColorGrid, false)
	}
}
