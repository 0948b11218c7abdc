package flappy

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/flappy-coins/internal/config"
	"github.com/vovakirdan/flappy-coins/internal/core"
)

// BestScoreKey is the store key the best score is kept under.
const BestScoreKey = "flappy.highScore"

// ScoreStore persists the best score across sessions.
// A missing key reads as (0, false, nil).
type ScoreStore interface {
	BestScore(key string) (int, bool, error)
	SetBestScore(key string, score int) error
}

// RunRecorder is implemented by stores that keep a history of finished runs.
type RunRecorder interface {
	RecordRun(run Run) error
}

// Run is a finished game.
type Run struct {
	ID    uuid.UUID
	Game  string
	Score int
	Ticks int
	Speed float64
}

// Presenter shows and hides the panels around the play field.
type Presenter interface {
	ShowStart()
	HideStart()
	ShowGameOver(score, best int)
	HideGameOver()
}

// Options configures a Controller. Store, UI and Logger are optional.
type Options struct {
	Config config.FlappyConfig
	Field  Field
	Seed   int64
	Store  ScoreStore
	UI     Presenter
	Logger *log.Logger
	Key    string
}

// Controller drives the session: it starts and restarts games, advances one
// step per frame while running and persists the best score.
type Controller struct {
	session  *Session
	store    ScoreStore
	ui       Presenter
	logger   *log.Logger
	key      string
	paused   bool
	recorded bool
}

// NewController builds a session for the field, loads the best score and
// shows the start panel.
func NewController(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	key := opts.Key
	if key == "" {
		key = BestScoreKey
	}

	c := &Controller{
		session: NewSession(opts.Config, opts.Field, rand.New(rand.NewSource(opts.Seed))),
		store:   opts.Store,
		ui:      opts.UI,
		logger:  logger,
		key:     key,
	}
	c.session.Reset(c.loadBest())
	if c.ui != nil {
		c.ui.ShowStart()
	}
	return c
}

// Session exposes the session for rendering and inspection.
func (c *Controller) Session() *Session {
	return c.session
}

// Start begins a new game from the not-started phase. It resets all
// session state and re-reads the best score.
func (c *Controller) Start() bool {
	if c.session.Phase != core.PhaseNotStarted {
		return false
	}
	c.session.Reset(c.loadBest())
	c.paused = false
	c.recorded = false
	if c.ui != nil {
		c.ui.HideStart()
	}
	c.session.Begin()
	c.logger.Debug("game started", "run", c.session.RunID, "best", c.session.Best)
	return true
}

// Restart goes from over back to not-started and starts again.
// Start does the reset, so the session is only moved back a phase here.
func (c *Controller) Restart() bool {
	if c.session.Phase != core.PhaseOver {
		return false
	}
	if c.ui != nil {
		c.ui.HideGameOver()
	}
	c.session.Phase = core.PhaseNotStarted
	return c.Start()
}

// Jump flaps the player. Ignored unless running and unpaused.
func (c *Controller) Jump() bool {
	if c.paused {
		return false
	}
	return c.session.Jump()
}

// TogglePause pauses or resumes a running game.
func (c *Controller) TogglePause() bool {
	if c.session.Phase != core.PhaseRunning {
		return false
	}
	c.paused = !c.paused
	return true
}

// Paused reports whether the game is paused.
func (c *Controller) Paused() bool {
	return c.paused
}

// Apply maps a platform action onto the lifecycle: jump or confirm starts a
// new game, jump flaps while running, restart and pause do what they say.
// It returns true when the action started a game and the frame loop must
// be kicked off again.
func (c *Controller) Apply(a core.Action) bool {
	switch a {
	case core.ActionJump, core.ActionConfirm:
		if c.session.Phase == core.PhaseNotStarted {
			return c.Start()
		}
		if a == core.ActionJump {
			c.Jump()
		}
	case core.ActionRestart:
		return c.Restart()
	case core.ActionPause:
		c.TogglePause()
	}
	return false
}

// Tick runs one simulation step and returns whether the loop should be
// scheduled for another frame.
func (c *Controller) Tick() bool {
	if c.session.Phase != core.PhaseRunning {
		return false
	}
	if c.paused {
		return true
	}

	res := c.session.Step()
	if res.NewBest {
		c.saveBest(c.session.Best)
	}
	if res.SpeedUps > 0 {
		c.logger.Debug("speed up", "score", c.session.Score, "speed", c.session.Speed)
	}
	if res.Over {
		c.finish()
		return false
	}
	return true
}

// Render draws the current session to dst.
func (c *Controller) Render(dst Surface) {
	Render(c.session, dst, c.ui)
}

// Frame is one iteration of the loop: a step followed by a render.
// It returns false once the game is over.
func (c *Controller) Frame(dst Surface) bool {
	again := c.Tick()
	c.Render(dst)
	return again
}

// State returns the platform-facing snapshot.
func (c *Controller) State() core.GameState {
	st := c.session.State()
	st.Paused = c.paused
	return st
}

// loadBest reads the persisted best score. A missing or failing store
// counts as zero.
func (c *Controller) loadBest() int {
	if c.store == nil {
		return 0
	}
	best, ok, err := c.store.BestScore(c.key)
	if err != nil {
		c.logger.Warn("could not read best score", "key", c.key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	return best
}

// saveBest writes a new best score.
func (c *Controller) saveBest(score int) {
	if c.store == nil {
		return
	}
	if err := c.store.SetBestScore(c.key, score); err != nil {
		c.logger.Warn("could not save best score", "key", c.key, "score", score, "error", err)
	}
}

// finish records the run once when the game ends.
func (c *Controller) finish() {
	if c.recorded {
		return
	}
	c.recorded = true

	s := c.session
	c.logger.Info("game over", "score", s.Score, "best", s.Best, "ticks", s.Ticks, "run", s.RunID)

	rec, ok := c.store.(RunRecorder)
	if !ok || s.Score == 0 {
		return
	}
	run := Run{ID: s.RunID, Game: GameID, Score: s.Score, Ticks: s.Ticks, Speed: s.Speed}
	if err := rec.RecordRun(run); err != nil {
		c.logger.Warn("could not record run", "run", s.RunID, "error", err)
	}
}
