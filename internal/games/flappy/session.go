package flappy

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/flappy-coins/internal/config"
	"github.com/vovakirdan/flappy-coins/internal/core"
)

// Session is the full mutable state of one game: the player, the scrolling
// pipes and coins, score, speed, lifecycle and the best score seen so far.
type Session struct {
	Field  Field
	Player Player
	Pipes  []Pipe
	Coins  []Coin
	Score  int
	Speed  float64
	Phase  core.Phase
	Best   int
	RunID  uuid.UUID
	Ticks  int

	cfg      config.FlappyConfig
	gen      *Generator
	schedule *config.SpeedSchedule
}

// StepResult describes what happened during one Step.
type StepResult struct {
	Spawned     bool // A pipe and its coins were emitted
	Collided    bool // The player hit a pipe
	OutOfBounds bool // The player left the field vertically
	Collected   int  // Coins picked up
	SpeedUps    int  // Speed increments applied
	NewBest     bool // Score passed the best score
	Over        bool // Phase is over after this step
}

// NewSession creates a session in the not-started phase.
func NewSession(cfg config.FlappyConfig, field Field, rng Rand) *Session {
	s := &Session{
		Field:    field,
		Pipes:    make([]Pipe, 0, 8),
		Coins:    make([]Coin, 0, 24),
		cfg:      cfg,
		gen:      NewGenerator(rng, cfg.Obstacles, cfg.Collectibles),
		schedule: config.NewSpeedSchedule(cfg.Physics, cfg.Difficulty),
	}
	s.Reset(0)
	return s
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}

// Reset clears the session back to not-started. Best never decreases.
func (s *Session) Reset(best int) {
	s.Player = NewPlayer(s.Field, s.cfg.Player, s.cfg.Physics)
	s.Pipes = s.Pipes[:0]
	s.Coins = s.Coins[:0]
	s.Score = 0
	s.Speed = s.schedule.InitialSpeed()
	s.Phase = core.PhaseNotStarted
	s.Ticks = 0
	s.RunID = uuid.New()
	if best > s.Best {
		s.Best = best
	}
}

// Begin moves a not-started session into play.
func (s *Session) Begin() bool {
	if s.Phase != core.PhaseNotStarted {
		return false
	}
	s.Phase = core.PhaseRunning
	return true
}

// Jump sets the player's velocity to the jump impulse. Ignored unless running.
func (s *Session) Jump() bool {
	if s.Phase != core.PhaseRunning {
		return false
	}
	s.Player.Velocity = -s.Player.JumpImpulse()
	return true
}

// Step advances the simulation by one tick. It does nothing unless running.
func (s *Session) Step() StepResult {
	var res StepResult
	if s.Phase != core.PhaseRunning {
		res.Over = s.Phase == core.PhaseOver
		return res
	}
	s.Ticks++

	s.Player.integrate()

	if s.gen.ShouldSpawn(s.Pipes, s.Field) {
		s.Pipes, s.Coins = s.gen.Spawn(s.Field, s.Pipes, s.Coins)
		res.Spawned = true
	}

	player := s.Player.Bounds()
	res.Collided = s.advancePipes(player)

	prev := s.Score
	res.Collected = s.advanceCoins(player)

	s.Speed, res.SpeedUps = s.schedule.Advance(s.Speed, prev, s.Score)

	if player.Y < 0 || player.Bottom() > s.Field.H {
		res.OutOfBounds = true
	}
	if res.Collided || res.OutOfBounds {
		s.Phase = core.PhaseOver
	}

	if s.Score > s.Best {
		s.Best = s.Score
		res.NewBest = true
	}

	res.Over = s.Phase == core.PhaseOver
	return res
}

// advancePipes scrolls every pipe, tests it against the player and compacts
// the slice in place, dropping pipes fully past the left edge.
func (s *Session) advancePipes(player core.RectF) bool {
	width := s.cfg.Obstacles.Width
	hit := false

	kept := s.Pipes[:0]
	for _, p := range s.Pipes {
		p.X -= s.Speed
		if p.Blocks(player, width, s.Field.H) {
			hit = true
		}
		if p.X < -width {
			continue
		}
		kept = append(kept, p)
	}
	s.Pipes = kept
	return hit
}

// advanceCoins scrolls every coin, collects the ones the player touches and
// drops the ones past the left edge. Collection is checked first.
func (s *Session) advanceCoins(player core.RectF) int {
	size := s.cfg.Collectibles.Size
	collected := 0

	kept := s.Coins[:0]
	for _, c := range s.Coins {
		c.Pos[0] -= s.Speed
		if player.Intersects(c.Bounds(size)) {
			s.Score++
			collected++
			continue
		}
		if c.Pos.X() < -size {
			continue
		}
		kept = append(kept, c)
	}
	s.Coins = kept
	return collected
}

// State returns the platform-facing snapshot of the session.
func (s *Session) State() core.GameState {
	return core.GameState{
		Phase:     s.Phase,
		Score:     s.Score,
		BestScore: s.Best,
		Speed:     s.Speed,
	}
}
