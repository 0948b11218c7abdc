package flappy

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/flappy-coins/internal/config"
	"github.com/vovakirdan/flappy-coins/internal/core"
)

func TestRenderCallOrder(t *testing.T) {
	s := newTestSession()
	s.Pipes = append(s.Pipes, Pipe{X: 500, GapY: 100, GapHeight: 200})
	s.Coins = append(s.Coins, Coin{Pos: mgl64.Vec2{400, 200}})
	s.Score = 2

	dst := &recordingSurface{}
	Render(s, dst, nil)

	want := []string{
		"clear",
		"background 0,0 800x600",
		"player 100,300 60x60",
		"pipe 500,0 70x100",
		"pipe 500,300 70x300",
		"coin 400,200 40x40",
		"text",
	}
	if !reflect.DeepEqual(dst.calls, want) {
		t.Errorf("calls = %q\nexpected %q", dst.calls, want)
	}
	if len(dst.texts) != 1 || dst.texts[0] != "Score: 2" {
		t.Errorf("texts = %q, expected [\"Score: 2\"]", dst.texts)
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	s := newRunningSession()
	s.Step()
	before := *s
	pipes := append([]Pipe(nil), s.Pipes...)

	Render(s, &recordingSurface{}, &recordingPresenter{})

	if s.Player != before.Player || s.Score != before.Score || s.Phase != before.Phase {
		t.Error("render changed the session")
	}
	if !reflect.DeepEqual(s.Pipes, pipes) {
		t.Error("render changed the pipes")
	}
}

func TestRenderShowsGameOver(t *testing.T) {
	s := newTestSession()
	ui := &recordingPresenter{}

	Render(s, &recordingSurface{}, ui)
	if len(ui.events) != 0 {
		t.Errorf("events before game over: %q", ui.events)
	}

	s.Phase = core.PhaseOver
	s.Score = 3
	s.Best = 5
	Render(s, &recordingSurface{}, ui)
	if len(ui.events) != 1 || ui.events[0] != "show-over 3/5" {
		t.Errorf("events = %q, expected [show-over 3/5]", ui.events)
	}
}

func TestScreenSurfacePipeCaps(t *testing.T) {
	screen := core.NewScreen(80, 30)
	surface := NewScreenSurface(screen, config.DefaultFlappyConfig().Display)

	surface.DrawImage(SpritePipe, 100, 0, 70, 200)
	surface.DrawImage(SpritePipe, 100, 400, 70, 200)

	tests := []struct {
		x, y  int
		rune  rune
		color core.Color
	}{
		{10, 0, PipeChar, core.ColorGreen},
		{16, 8, PipeChar, core.ColorGreen},
		{10, 9, PipeCapTop, core.ColorBrightGreen},
		{10, 20, PipeCapBottom, core.ColorBrightGreen},
		{10, 29, PipeChar, core.ColorGreen},
		{10, 15, ' ', core.ColorDefault},
		{17, 5, ' ', core.ColorDefault},
	}
	for _, tt := range tests {
		cell := screen.GetCell(tt.x, tt.y)
		if cell.Rune != tt.rune || cell.Color != tt.color {
			t.Errorf("cell (%d,%d) = %q/%v, expected %q/%v", tt.x, tt.y, cell.Rune, cell.Color, tt.rune, tt.color)
		}
	}
}

func TestScreenSurfaceKeepsSmallSprites(t *testing.T) {
	screen := core.NewScreen(10, 10)
	surface := NewScreenSurface(screen, config.DisplayConfig{CellWidth: 10, CellHeight: 20})

	surface.DrawImage(SpriteCoin, 21, 41, 4, 4)
	if screen.GetCell(2, 2).Rune != CoinChar {
		t.Errorf("tiny coin not drawn: %q", screen.GetCell(2, 2).Rune)
	}

	surface.DrawImage(SpritePipe, 50, 0, 70, 0)
	if screen.GetCell(5, 0).Rune != ' ' {
		t.Error("empty pipe segment should draw nothing")
	}
}

func TestScreenSurfaceCenteredText(t *testing.T) {
	screen := core.NewScreen(80, 30)
	surface := NewScreenSurface(screen, config.DisplayConfig{CellWidth: 10, CellHeight: 20})

	surface.DrawText("Score: 12", 400, 50, ScoreStyle)

	if got := screen.Row(2)[36:45]; got != "Score: 12" {
		t.Errorf("row 2 = %q, expected score centered at column 40", screen.Row(2))
	}
	if screen.GetCell(36, 2).Color != core.ColorBrightWhite {
		t.Error("score text should be bright white")
	}
}
