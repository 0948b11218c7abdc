package flappy

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/flappy-coins/internal/config"
	"github.com/vovakirdan/flappy-coins/internal/core"
)

// Rand is the random source the generator draws gap positions from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Generator emits pipes and their coin trails as the field scrolls.
type Generator struct {
	rng   Rand
	pipes config.FlappyObstacles
	coins config.FlappyCollectibles
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng Rand, pipes config.FlappyObstacles, coins config.FlappyCollectibles) *Generator {
	return &Generator{
		rng:   rng,
		pipes: pipes,
		coins: coins,
	}
}

// ShouldSpawn reports whether a new pipe is due: the field is empty or the
// most recent pipe has scrolled past the spawn threshold.
func (g *Generator) ShouldSpawn(pipes []Pipe, field Field) bool {
	if len(pipes) == 0 {
		return true
	}
	return pipes[len(pipes)-1].X < field.W*g.pipes.SpawnThreshold
}

// GapHeight returns the gap height for the field.
func (g *Generator) GapHeight(field Field) float64 {
	return field.H * g.pipes.GapFraction
}

// GapY picks a gap position uniformly within the margins.
// The result always keeps the whole gap inside the field.
func (g *Generator) GapY(field Field) float64 {
	gap := g.GapHeight(field)
	maxY := field.H - gap
	if maxY <= 0 {
		return 0
	}

	span := maxY - g.pipes.TopMargin - g.pipes.BottomMargin
	if span < 0 {
		span = 0
	}
	y := g.pipes.TopMargin + g.rng.Float64()*span
	return core.ClampF(y, 0, maxY)
}

// Spawn appends a pipe at the right edge plus its coins, whose positions
// step horizontally and down through the gap.
func (g *Generator) Spawn(field Field, pipes []Pipe, coins []Coin) ([]Pipe, []Coin) {
	pipe := Pipe{
		X:         field.W,
		GapY:      g.GapY(field),
		GapHeight: g.GapHeight(field),
	}
	pipes = append(pipes, pipe)

	n := g.coins.Count
	if n <= 0 {
		return pipes, coins
	}
	stepY := pipe.GapHeight / float64(n)
	for i := 0; i < n; i++ {
		coins = append(coins, Coin{
			Pos: mgl64.Vec2{
				field.W + float64(i)*g.coins.SpacingX,
				pipe.GapY + stepY*float64(i),
			},
		})
	}
	return pipes, coins
}
