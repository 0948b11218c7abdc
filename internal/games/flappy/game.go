// Package flappy implements Flappy Coins: a bird falls under gravity, flaps
// through a stream of gapped pipes and collects coins for points. Pipes
// speed up as the score grows.
package flappy

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-coins/internal/config"
	"github.com/vovakirdan/flappy-coins/internal/core"
)

// Game identity used for storage and display.
const (
	GameID    = "flappy"
	GameTitle = "Flappy Coins"
)

// Game adapts the controller to a terminal platform: field size comes from
// the screen, panels are drawn as boxes over the cell buffer.
type Game struct {
	cfg    config.FlappyConfig
	store  ScoreStore
	logger *log.Logger
	panels *Panels
	ctrl   *Controller
}

// New creates a game. store and logger may be nil.
func New(cfg config.FlappyConfig, store ScoreStore, logger *log.Logger) *Game {
	return &Game{
		cfg:    cfg,
		store:  store,
		logger: logger,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// Reset builds a fresh controller for the screen size and shows the start panel.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.panels = &Panels{}
	g.ctrl = NewController(Options{
		Config: g.cfg,
		Field:  FieldForScreen(cfg.ScreenW, cfg.ScreenH, g.cfg.Display),
		Seed:   cfg.Seed,
		Store:  g.store,
		UI:     g.panels,
		Logger: g.logger,
	})
}

// Controller returns the underlying controller.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Handle applies an input action. It returns true when the action started
// a game and the platform must kick off the frame loop.
func (g *Game) Handle(a core.Action) bool {
	return g.ctrl.Apply(a)
}

// Frame runs one loop iteration into dst and reports whether to schedule another.
func (g *Game) Frame(dst *core.Screen) bool {
	again := g.ctrl.Frame(NewScreenSurface(dst, g.cfg.Display))
	g.overlay(dst)
	return again
}

// Render redraws the current state without advancing it.
func (g *Game) Render(dst *core.Screen) {
	g.ctrl.Render(NewScreenSurface(dst, g.cfg.Display))
	g.overlay(dst)
}

// overlay draws the panels and the pause box.
func (g *Game) overlay(dst *core.Screen) {
	g.panels.Draw(dst, g.ctrl.Session().Best)
	if g.ctrl.Paused() {
		drawCenteredMessage(dst, PausedTitle, PausedHint)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.ctrl.State()
}
