package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/flappy-coins/internal/config"
)

func TestGapAlwaysInsideField(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	fields := []Field{
		{W: 800, H: 600},
		{W: 800, H: 480},
		{W: 400, H: 150}, // margins eat the whole range
		{W: 400, H: 90},  // margins larger than the free space
	}

	for _, f := range fields {
		g := NewGenerator(rand.New(rand.NewSource(7)), cfg.Obstacles, cfg.Collectibles)
		gap := g.GapHeight(f)
		for i := 0; i < 1000; i++ {
			y := g.GapY(f)
			if y < 0 || y+gap > f.H {
				t.Fatalf("field %vx%v: gap [%v, %v) leaves the field", f.W, f.H, y, y+gap)
			}
		}
	}
}

func TestGapYExtremes(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	low := NewGenerator(fixedRand(0), cfg.Obstacles, cfg.Collectibles)
	if y := low.GapY(testField); y != 0 {
		t.Errorf("GapY with r=0 = %v, expected 0", y)
	}

	high := NewGenerator(fixedRand(0.999999), cfg.Obstacles, cfg.Collectibles)
	// 600 - 200 gap - 100 bottom margin
	if y := high.GapY(testField); y >= 300 || y < 299 {
		t.Errorf("GapY with r~1 = %v, expected just under 300", y)
	}
}

func TestShouldSpawn(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	g := NewGenerator(fixedRand(0), cfg.Obstacles, cfg.Collectibles)

	if !g.ShouldSpawn(nil, testField) {
		t.Error("empty field should spawn")
	}
	if g.ShouldSpawn([]Pipe{{X: 480}}, testField) {
		t.Error("pipe exactly at 60% should not trigger a spawn")
	}
	if g.ShouldSpawn([]Pipe{{X: 100}, {X: 700}}, testField) {
		t.Error("only the most recent pipe should be considered")
	}
	if !g.ShouldSpawn([]Pipe{{X: 479}}, testField) {
		t.Error("pipe past 60% should trigger a spawn")
	}
}

func TestSpawnCoinTrail(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	g := NewGenerator(fixedRand(0), cfg.Obstacles, cfg.Collectibles)

	pipes, coins := g.Spawn(testField, nil, nil)
	if len(pipes) != 1 {
		t.Fatalf("expected 1 pipe, got %d", len(pipes))
	}
	p := pipes[0]
	if p.X != 800 || p.GapY != 0 || math.Abs(p.GapHeight-200) > 1e-9 {
		t.Errorf("pipe = %+v, expected X=800 GapY=0 GapHeight=200", p)
	}

	if len(coins) != 3 {
		t.Fatalf("expected 3 coins, got %d", len(coins))
	}
	for i, c := range coins {
		wantX := 800 + 150*float64(i)
		wantY := p.GapHeight / 3 * float64(i)
		if c.Pos.X() != wantX || math.Abs(c.Pos.Y()-wantY) > 1e-9 {
			t.Errorf("coin %d at (%v, %v), expected (%v, %v)", i, c.Pos.X(), c.Pos.Y(), wantX, wantY)
		}
		if c.Pos.Y() < p.GapY || c.Pos.Y() >= p.GapBottom() {
			t.Errorf("coin %d starts outside the gap", i)
		}
	}
}

func TestSpawnAppendsWithoutCoins(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Collectibles.Count = 0
	g := NewGenerator(fixedRand(0.5), cfg.Obstacles, cfg.Collectibles)

	pipes, coins := g.Spawn(testField, []Pipe{{X: 10}}, nil)
	if len(pipes) != 2 || len(coins) != 0 {
		t.Errorf("got %d pipes and %d coins, expected 2 and 0", len(pipes), len(coins))
	}
}
