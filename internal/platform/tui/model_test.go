package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-coins/internal/config"
	"github.com/vovakirdan/flappy-coins/internal/core"
	"github.com/vovakirdan/flappy-coins/internal/games/flappy"
)

// loopGame runs for a fixed number of frames once started.
type loopGame struct {
	phase   core.Phase
	paused  bool
	frames  int
	limit   int
	resets  int
	renders int
}

func (g *loopGame) ID() string    { return "loop" }
func (g *loopGame) Title() string { return "Loop" }

func (g *loopGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.phase = core.PhaseNotStarted
	g.frames = 0
}

func (g *loopGame) Handle(a core.Action) bool {
	switch a {
	case core.ActionJump:
		if g.phase == core.PhaseNotStarted {
			g.phase = core.PhaseRunning
			return true
		}
	case core.ActionRestart:
		if g.phase == core.PhaseOver {
			g.phase = core.PhaseRunning
			g.frames = 0
			return true
		}
	case core.ActionPause:
		g.paused = !g.paused
	}
	return false
}

func (g *loopGame) Frame(dst *core.Screen) bool {
	if g.phase != core.PhaseRunning {
		return false
	}
	g.frames++
	if g.frames >= g.limit {
		g.phase = core.PhaseOver
	}
	dst.DrawText(0, 0, "frame")
	return g.phase == core.PhaseRunning
}

func (g *loopGame) Render(dst *core.Screen) { g.renders++ }

func (g *loopGame) State() core.GameState {
	return core.GameState{Phase: g.phase, Paused: g.paused}
}

func newLoopModel(limit int) (Model, *loopGame) {
	g := &loopGame{limit: limit}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, nil)
	m.Init()
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelInitDoesNotTick(t *testing.T) {
	g := &loopGame{limit: 3}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10}, nil)

	if cmd := m.Init(); cmd != nil {
		t.Error("Init scheduled a tick before the game started")
	}
	if g.resets != 1 || g.renders != 1 {
		t.Errorf("resets %d, renders %d, expected 1 and 1", g.resets, g.renders)
	}
	if m.config.TickRate != 60 {
		t.Errorf("tick rate = %d, expected the default 60", m.config.TickRate)
	}
}

func TestModelLoopStopsWhenGameEnds(t *testing.T) {
	m, g := newLoopModel(3)

	m, cmd := update(t, m, runeKey(' '))
	if cmd == nil || !m.ticking {
		t.Fatal("starting the game should kick the loop")
	}

	m, cmd = update(t, m, runeKey(' '))
	if cmd != nil {
		t.Error("second key scheduled a duplicate loop")
	}

	tick := TickMsg{Time: time.Now(), Loop: m.loop}
	for i := 1; i <= 3; i++ {
		m, cmd = update(t, m, tick)
		if i < 3 && cmd == nil {
			t.Fatalf("loop stopped early on frame %d", i)
		}
	}
	if cmd != nil || m.ticking {
		t.Error("loop kept running after game over")
	}
	if g.frames != 3 {
		t.Errorf("frames = %d, expected 3", g.frames)
	}
	if !strings.Contains(m.View(), "frame") {
		t.Error("view does not show the last frame")
	}

	m, cmd = update(t, m, runeKey('r'))
	if cmd == nil || !m.ticking {
		t.Error("restart should kick the loop again")
	}
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	m, g := newLoopModel(10)
	m, _ = update(t, m, runeKey(' '))

	m, cmd := update(t, m, TickMsg{Time: time.Now(), Loop: m.loop + 1000})
	if cmd != nil || g.frames != 0 {
		t.Error("tick from another loop was processed")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newLoopModel(10)

	m, cmd := update(t, m, runeKey('q'))
	if !isQuit(cmd) || !m.IsQuitting() {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelBack(t *testing.T) {
	// Standalone: back quits
	m, _ := newLoopModel(10)
	_, cmd := update(t, m, runeKey('b'))
	if !isQuit(cmd) {
		t.Error("back should quit a standalone game")
	}

	// Inside a menu session: allowed before the first flap
	m, _ = newLoopModel(10)
	m.menuBack = true
	m, cmd = update(t, m, runeKey('b'))
	if cmd != nil || !m.BackToMenu() {
		t.Error("back refused before the run started")
	}

	// but not in the middle of a run unless paused
	m, g := newLoopModel(10)
	m.menuBack = true
	m, _ = update(t, m, runeKey(' '))

	m, cmd = update(t, m, runeKey('b'))
	if cmd != nil || m.BackToMenu() {
		t.Error("back accepted in the middle of a run")
	}

	g.phase = core.PhaseOver
	m, _ = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back refused after game over")
	}
}

func TestModelResize(t *testing.T) {
	m, g := newLoopModel(10)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if g.resets != 2 {
		t.Errorf("resets = %d, expected a reset before the game starts", g.resets)
	}
	if m.screen.Width() != 60 || m.screen.Height() != 20 {
		t.Errorf("screen = %dx%d, expected 60x20", m.screen.Width(), m.screen.Height())
	}

	m, _ = update(t, m, runeKey(' '))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if g.resets != 2 {
		t.Error("resize reset a running game")
	}
}

func TestModelPlaysFlappy(t *testing.T) {
	game := flappy.New(config.DefaultFlappyConfig(), nil, nil)
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 7}, nil)
	m.Init()

	if !strings.Contains(m.View(), "FLAPPY COINS") {
		t.Fatal("start panel not shown")
	}

	m, cmd := update(t, m, runeKey(' '))
	if cmd == nil {
		t.Fatal("space did not start the game")
	}

	tick := TickMsg{Time: time.Now(), Loop: m.loop}
	frames := 0
	for cmd != nil {
		m, cmd = update(t, m, tick)
		frames++
		if frames > 1000 {
			t.Fatal("game never ended without input")
		}
	}

	if !game.State().GameOver() {
		t.Fatalf("phase = %v, expected over", game.State().Phase)
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game-over panel not shown")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "HELLO", core.ColorBrightYellow)
	s.DrawText(0, 1, "world")

	out := RenderScreen(s)
	if !strings.Contains(out, "HELLO") || !strings.Contains(out, "world") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}
