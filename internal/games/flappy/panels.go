package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy-coins/internal/core"
)

// Panels is the terminal presenter: it remembers which panel is visible
// and draws it over the field.
type Panels struct {
	start bool
	over  bool
	score int
	best  int
}

// ShowStart makes the start panel visible.
func (p *Panels) ShowStart() { p.start = true }

// HideStart hides the start panel.
func (p *Panels) HideStart() { p.start = false }

// ShowGameOver makes the game-over panel visible with the final scores.
func (p *Panels) ShowGameOver(score, best int) {
	p.over = true
	p.score = score
	p.best = best
}

// HideGameOver hides the game-over panel.
func (p *Panels) HideGameOver() { p.over = false }

// Pause box text.
const (
	PausedTitle = "PAUSED"
	PausedHint  = "Press P to resume"
)

// Message returns the text of the visible panel. The game-over panel wins
// if both are visible.
func (p *Panels) Message(best int) (title string, lines []string, ok bool) {
	switch {
	case p.over:
		return "GAME OVER", []string{
			fmt.Sprintf("Score: %d  |  Best: %d", p.score, p.best),
			"R to restart  |  Q to quit",
		}, true
	case p.start:
		return "FLAPPY COINS", []string{
			"Space to start  |  Q to quit",
			fmt.Sprintf("Best: %d", best),
		}, true
	}
	return "", nil, false
}

// Draw overlays the visible panel on dst.
func (p *Panels) Draw(dst *core.Screen, best int) {
	if title, lines, ok := p.Message(best); ok {
		drawCenteredMessage(dst, title, lines...)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorGray)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l)
	}
}
