// Package core holds the primitives shared by the simulation and the
// platforms: boxes, the cell screen, colours, actions and lifecycle state.
// It imports nothing outside the standard library so game logic stays pure.
package core

// Rect is an axis-aligned box in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a cell rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the box.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first row past the box.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the box covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// RectF is an axis-aligned bounding box in logical field units.
// Collisions are resolved on RectF; rendering converts to Rect.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a field rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// OverlapsX reports a strict overlap of the horizontal spans.
// Boxes sharing only an edge do not overlap.
func (r RectF) OverlapsX(other RectF) bool {
	return r.X < other.Right() && other.X < r.Right()
}

// OverlapsY reports a strict overlap of the vertical spans.
func (r RectF) OverlapsY(other RectF) bool {
	return r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Intersects reports a strict overlap on both axes.
func (r RectF) Intersects(other RectF) bool {
	return r.OverlapsX(other) && r.OverlapsY(other)
}

// ClampF restricts v to [lo, hi]. lo wins when the range is inverted.
func ClampF(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
