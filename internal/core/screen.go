package core

import "strings"

// Cell is a single screen position: a rune and its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorDefault}

// Box-drawing runes for panel frames.
const (
	frameTopLeft     = '┌'
	frameTopRight    = '┐'
	frameBottomLeft  = '└'
	frameBottomRight = '┘'
	frameHorizontal  = '─'
	frameVertical    = '│'
)

// Screen is a row-major cell buffer. Games draw into it and the platform
// turns it into terminal output; writes outside the buffer are dropped.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a blank screen with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the dimensions and blanks the buffer. Every frame is
// drawn from scratch, so nothing is carried over.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width != s.width || height != s.height || s.cells == nil {
		s.width, s.height = width, height
		s.cells = make([]Cell, width*height)
	}
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetColored places a colored rune at (x, y).
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

// GetCell returns the cell at (x, y), or a blank cell outside the buffer.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y*s.width+x]
}

// DrawText writes uncolored text starting at (x, y), clipped to the buffer.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes colored text starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawRectColored fills r with a colored rune.
func (s *Screen) DrawRectColored(r Rect, fill rune, c Color) {
	for y := max(r.Y, 0); y < min(r.Bottom(), s.height); y++ {
		for x := max(r.X, 0); x < min(r.Right(), s.width); x++ {
			s.cells[y*s.width+x] = Cell{Rune: fill, Color: c}
		}
	}
}

// DrawBox blanks r and frames it with box-drawing runes in color c.
func (s *Screen) DrawBox(r Rect, c Color) {
	if r.Empty() {
		return
	}
	s.DrawRectColored(r, ' ', ColorDefault)

	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.SetColored(x, r.Y, frameHorizontal, c)
		s.SetColored(x, bottom, frameHorizontal, c)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetColored(r.X, y, frameVertical, c)
		s.SetColored(right, y, frameVertical, c)
	}
	s.SetColored(r.X, r.Y, frameTopLeft, c)
	s.SetColored(right, r.Y, frameTopRight, c)
	s.SetColored(r.X, bottom, frameBottomLeft, c)
	s.SetColored(right, bottom, frameBottomRight, c)
}

// Row returns row y as plain text; rows outside the buffer are blank.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the buffer as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
