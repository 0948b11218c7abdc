// Package gui runs the game in a desktop window with ebiten. Sprites are
// drawn as filled rectangles and text with the ebiten debug font.
package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy-coins/internal/games/flappy"
)

// Debug font metrics in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// Sprite colors
var (
	skyColor    = color.RGBA{0x4e, 0xc0, 0xca, 0xff}
	birdColor   = color.RGBA{0xf8, 0xd8, 0x20, 0xff}
	beakColor   = color.RGBA{0xf0, 0x80, 0x20, 0xff}
	pipeColor   = color.RGBA{0x5c, 0xa8, 0x30, 0xff}
	capColor    = color.RGBA{0x88, 0xd8, 0x48, 0xff}
	coinColor   = color.RGBA{0xff, 0xc8, 0x00, 0xff}
	shadeColor  = color.RGBA{0x00, 0x00, 0x00, 0xa0}
	panelColor  = color.RGBA{0x12, 0x16, 0x24, 0xe6}
	pipeCapSize = float32(12)
)

// Surface draws field coordinates onto an ebiten image. The field and the
// window share one coordinate system (see Game.Layout).
type Surface struct {
	dst *ebiten.Image
}

// NewSurface wraps dst.
func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst}
}

// Clear fills the image with black.
func (s *Surface) Clear() {
	s.dst.Clear()
}

// DrawImage draws a sprite as colored rectangles.
func (s *Surface) DrawImage(sprite flappy.Sprite, x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)

	switch sprite {
	case flappy.SpriteBackground:
		vector.DrawFilledRect(s.dst, fx, fy, fw, fh, skyColor, false)

	case flappy.SpritePlayer:
		vector.DrawFilledRect(s.dst, fx, fy, fw, fh, birdColor, false)
		vector.DrawFilledRect(s.dst, fx+fw*0.75, fy+fh*0.4, fw*0.25, fh*0.2, beakColor, false)

	case flappy.SpritePipe:
		vector.DrawFilledRect(s.dst, fx, fy, fw, fh, pipeColor, false)
		// Caps face the gap: a segment anchored at the top ends in the gap.
		capH := min(pipeCapSize, fh)
		if y <= 0 {
			vector.DrawFilledRect(s.dst, fx-2, fy+fh-capH, fw+4, capH, capColor, false)
		} else {
			vector.DrawFilledRect(s.dst, fx-2, fy, fw+4, capH, capColor, false)
		}

	case flappy.SpriteCoin:
		r := fw / 2
		vector.DrawFilledCircle(s.dst, fx+r, fy+fh/2, r, coinColor, true)
	}
}

// DrawText draws text with the debug font. The font size is ignored.
func (s *Surface) DrawText(text string, x, y float64, style flappy.TextStyle) {
	px := int(x)
	switch style.Align {
	case flappy.AlignCenter:
		px -= textWidth(text) / 2
	case flappy.AlignRight:
		px -= textWidth(text)
	}
	ebitenutil.DebugPrintAt(s.dst, text, px, int(y)-glyphH/2)
}

// textWidth returns the debug font width of text in pixels.
func textWidth(text string) int {
	return len([]rune(text)) * glyphW
}

// drawPanel draws a centered message box over the whole image.
func drawPanel(dst *ebiten.Image, title string, lines ...string) {
	b := dst.Bounds()
	w := textWidth(title)
	for _, l := range lines {
		w = max(w, textWidth(l))
	}
	boxW := w + 4*glyphW
	boxH := (len(lines) + 3) * glyphH
	boxX := (b.Dx() - boxW) / 2
	boxY := (b.Dy() - boxH) / 2

	vector.DrawFilledRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), shadeColor, false)
	vector.DrawFilledRect(dst, float32(boxX), float32(boxY), float32(boxW), float32(boxH), panelColor, false)

	ebitenutil.DebugPrintAt(dst, title, boxX+(boxW-textWidth(title))/2, boxY+glyphH/2)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(dst, l, boxX+(boxW-textWidth(l))/2, boxY+glyphH/2+(i+2)*glyphH)
	}
}
