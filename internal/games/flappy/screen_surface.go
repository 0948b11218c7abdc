package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-coins/internal/config"
	"github.com/vovakirdan/flappy-coins/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '▶'
	PlayerBody    = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	CoinChar      = '◉'
)

// ScreenSurface draws field coordinates onto a terminal cell buffer.
type ScreenSurface struct {
	screen *core.Screen
	cellW  float64
	cellH  float64
}

// NewScreenSurface wraps dst, mapping one cell to display.CellWidth x display.CellHeight units.
func NewScreenSurface(dst *core.Screen, display config.DisplayConfig) *ScreenSurface {
	return &ScreenSurface{
		screen: dst,
		cellW:  display.CellWidth,
		cellH:  display.CellHeight,
	}
}

// Clear blanks the buffer.
func (s *ScreenSurface) Clear() {
	s.screen.Clear()
}

// cells converts a field box to a cell box. Non-empty boxes keep at least one cell.
func (s *ScreenSurface) cells(x, y, w, h float64) core.Rect {
	x0 := int(math.Round(x / s.cellW))
	y0 := int(math.Round(y / s.cellH))
	x1 := int(math.Round((x + w) / s.cellW))
	y1 := int(math.Round((y + h) / s.cellH))
	if w > 0 && x1 == x0 {
		x1 = x0 + 1
	}
	if h > 0 && y1 == y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// DrawImage draws a sprite as colored runes.
func (s *ScreenSurface) DrawImage(sprite Sprite, x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	r := s.cells(x, y, w, h)

	switch sprite {
	case SpriteBackground:
		s.screen.DrawRectColored(r, ' ', core.ColorDefault)

	case SpritePlayer:
		s.screen.DrawRectColored(r, PlayerBody, core.ColorBrightYellow)
		s.screen.SetColored(r.Right()-1, r.Y, PlayerChar, core.ColorOrange)

	case SpritePipe:
		s.screen.DrawRectColored(r, PipeChar, core.ColorGreen)
		// Caps face the gap: a segment anchored at the top ends in the gap.
		if y <= 0 {
			s.screen.DrawRectColored(core.NewRect(r.X, r.Bottom()-1, r.W, 1), PipeCapTop, core.ColorBrightGreen)
		} else {
			s.screen.DrawRectColored(core.NewRect(r.X, r.Y, r.W, 1), PipeCapBottom, core.ColorBrightGreen)
		}

	case SpriteCoin:
		s.screen.DrawRectColored(r, CoinChar, core.ColorBrightYellow)
	}
}

// DrawText draws text anchored at the cell containing (x, y).
func (s *ScreenSurface) DrawText(text string, x, y float64, style TextStyle) {
	cx := int(x / s.cellW)
	cy := int(y / s.cellH)
	n := len([]rune(text))

	switch style.Align {
	case AlignCenter:
		cx -= n / 2
	case AlignRight:
		cx -= n
	}
	s.screen.DrawTextColored(cx, cy, text, style.Color)
}
