package flappy

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/flappy-coins/internal/config"
	"github.com/vovakirdan/flappy-coins/internal/core"
)

// Field is the play area in logical units. It is fixed for a session.
type Field struct {
	W, H float64
}

// FieldForScreen maps a terminal size to a field using the display cell size.
func FieldForScreen(cols, rows int, display config.DisplayConfig) Field {
	return Field{
		W: float64(cols) * display.CellWidth,
		H: float64(rows) * display.CellHeight,
	}
}

// Player is the bird. Only Pos.Y and Velocity change after spawn.
type Player struct {
	Pos      mgl64.Vec2 // Top-left corner
	Velocity float64    // Vertical velocity, positive is down

	size    mgl64.Vec2
	gravity float64
	jump    float64
}

// NewPlayer spawns the player at a fixed fraction of the field.
func NewPlayer(field Field, pc config.FlappyPlayer, phys config.FlappyPhysics) Player {
	return Player{
		Pos:     mgl64.Vec2{field.W * pc.SpawnX, field.H * pc.SpawnY},
		size:    mgl64.Vec2{pc.Width, pc.Height},
		gravity: phys.Gravity,
		jump:    phys.JumpImpulse,
	}
}

// Size returns the hitbox width and height.
func (p Player) Size() mgl64.Vec2 { return p.size }

// Gravity returns the per-tick acceleration.
func (p Player) Gravity() float64 { return p.gravity }

// JumpImpulse returns the upward speed set by a jump.
func (p Player) JumpImpulse() float64 { return p.jump }

// Bounds returns the player's collision box.
func (p Player) Bounds() core.RectF {
	return core.NewRectF(p.Pos.X(), p.Pos.Y(), p.size.X(), p.size.Y())
}

// integrate applies one tick of gravity: velocity first, then position.
func (p *Player) integrate() {
	p.Velocity += p.gravity
	p.Pos[1] += p.Velocity
}

// Pipe represents a vertical obstacle with a gap for the player to pass through.
type Pipe struct {
	X         float64 // Horizontal position (left edge)
	GapY      float64 // Y position where gap starts (top of gap)
	GapHeight float64 // Height of the passable gap
}

// GapBottom returns the first row of the bottom segment.
func (p Pipe) GapBottom() float64 {
	return p.GapY + p.GapHeight
}

// Column returns the full-height box the pipe occupies.
func (p Pipe) Column(width, fieldH float64) core.RectF {
	return core.NewRectF(p.X, 0, width, fieldH)
}

// TopRect returns the rectangle of the top segment.
func (p Pipe) TopRect(width float64) core.RectF {
	return core.NewRectF(p.X, 0, width, p.GapY)
}

// BottomRect returns the rectangle of the bottom segment.
func (p Pipe) BottomRect(width, fieldH float64) core.RectF {
	return core.NewRectF(p.X, p.GapBottom(), width, fieldH-p.GapBottom())
}

// Blocks reports whether the player hits this pipe: the horizontal spans
// overlap and the player's top edge is outside [GapY, GapY+GapHeight).
func (p Pipe) Blocks(player core.RectF, width, fieldH float64) bool {
	if !player.OverlapsX(p.Column(width, fieldH)) {
		return false
	}
	return player.Y < p.GapY || player.Y >= p.GapBottom()
}

// Coin is a collectible worth one point.
type Coin struct {
	Pos mgl64.Vec2 // Top-left corner
}

// Bounds returns the coin's collision box.
func (c Coin) Bounds(size float64) core.RectF {
	return core.NewRectF(c.Pos.X(), c.Pos.Y(), size, size)
}
