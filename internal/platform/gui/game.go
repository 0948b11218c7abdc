package gui

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-coins/internal/config"
	"github.com/vovakirdan/flappy-coins/internal/core"
	"github.com/vovakirdan/flappy-coins/internal/games/flappy"
)

// Window defaults in pixels; one pixel is one field unit.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// keyActions maps window keys to game actions.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyQ, core.ActionQuit},
}

// Options configures a window game.
type Options struct {
	Config config.FlappyConfig
	Width  int
	Height int
	TPS    int
	Seed   int64
	Store  flappy.ScoreStore
	Logger *log.Logger
}

// Game implements ebiten.Game around a flappy controller.
type Game struct {
	ctrl    *flappy.Controller
	panels  *flappy.Panels
	width   int
	height  int
	looping bool // Update advances the simulation
}

// New builds a window game; the field matches the window size.
func New(opts Options) *Game {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultWidth, DefaultHeight
	}
	panels := &flappy.Panels{}
	return &Game{
		ctrl: flappy.NewController(flappy.Options{
			Config: opts.Config,
			Field:  flappy.Field{W: float64(opts.Width), H: float64(opts.Height)},
			Seed:   opts.Seed,
			Store:  opts.Store,
			UI:     panels,
			Logger: opts.Logger,
		}),
		panels: panels,
		width:  opts.Width,
		height: opts.Height,
	}
}

// Update reads input and, while the game is in play, advances one step.
func (g *Game) Update() error {
	for _, ka := range keyActions {
		if !inpututil.IsKeyJustPressed(ka.key) {
			continue
		}
		if ka.action == core.ActionQuit {
			return ebiten.Termination
		}
		if g.ctrl.Apply(ka.action) {
			g.looping = true
		}
	}

	if g.looping {
		g.looping = g.ctrl.Tick()
	}
	return nil
}

// Draw renders the session and the visible panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.ctrl.Render(NewSurface(screen))

	best := g.ctrl.Session().Best
	if title, lines, ok := g.panels.Message(best); ok {
		drawPanel(screen, title, lines...)
	}
	if g.ctrl.Paused() {
		drawPanel(screen, flappy.PausedTitle, flappy.PausedHint)
	}
}

// Layout keeps a fixed logical size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}
	g := New(opts)

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(flappy.GameTitle)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
