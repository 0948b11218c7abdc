package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy-coins/internal/core"
)

// Sprite identifies what a DrawImage call depicts.
type Sprite int

const (
	SpriteBackground Sprite = iota
	SpritePlayer
	SpritePipe
	SpriteCoin
)

// String returns the sprite name.
func (s Sprite) String() string {
	switch s {
	case SpriteBackground:
		return "background"
	case SpritePlayer:
		return "player"
	case SpritePipe:
		return "pipe"
	case SpriteCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Align is the horizontal anchor of a text draw.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font describes the requested typeface. Surfaces may approximate it.
type Font struct {
	Family string
	Size   float64
}

// TextStyle groups the font, color and alignment of a text draw.
type TextStyle struct {
	Font  Font
	Color core.Color
	Align Align
}

// ScoreStyle is the style of the in-game score readout.
var ScoreStyle = TextStyle{
	Font:  Font{Family: "Arial", Size: 30},
	Color: core.ColorBrightWhite,
	Align: AlignCenter,
}

// scoreTextY is the baseline of the score readout in field units.
const scoreTextY = 50

// Surface receives draw calls in field coordinates.
type Surface interface {
	Clear()
	DrawImage(sprite Sprite, x, y, w, h float64)
	DrawText(text string, x, y float64, style TextStyle)
}

// Render projects the session onto dst in a fixed order: clear, background,
// player, pipes (top then bottom segment), coins, score. When the session is
// over, ui is told to show the game-over panel. Render never mutates s.
func Render(s *Session, dst Surface, ui Presenter) {
	cfg := s.Config()
	w, h := s.Field.W, s.Field.H

	dst.Clear()
	dst.DrawImage(SpriteBackground, 0, 0, w, h)

	size := s.Player.Size()
	dst.DrawImage(SpritePlayer, s.Player.Pos.X(), s.Player.Pos.Y(), size.X(), size.Y())

	pipeW := cfg.Obstacles.Width
	for _, p := range s.Pipes {
		dst.DrawImage(SpritePipe, p.X, 0, pipeW, p.GapY)
		dst.DrawImage(SpritePipe, p.X, p.GapBottom(), pipeW, h-p.GapBottom())
	}

	coin := cfg.Collectibles.Size
	for _, c := range s.Coins {
		dst.DrawImage(SpriteCoin, c.Pos.X(), c.Pos.Y(), coin, coin)
	}

	dst.DrawText(fmt.Sprintf("Score: %d", s.Score), w/2, scoreTextY, ScoreStyle)

	if s.Phase == core.PhaseOver && ui != nil {
		ui.ShowGameOver(s.Score, s.Best)
	}
}
