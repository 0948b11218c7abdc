package config

import "math"

// SpeedSchedule calculates the scroll speed from the score.
// Speed grows linearly: one increment per multiple of Every crossed.
type SpeedSchedule struct {
	cfg       DifficultyConfig
	baseSpeed float64
}

// NewSpeedSchedule creates a schedule for the given physics and difficulty settings.
func NewSpeedSchedule(physics FlappyPhysics, cfg DifficultyConfig) *SpeedSchedule {
	scale := cfg.SpeedScale
	if scale <= 0 {
		scale = 1
	}
	return &SpeedSchedule{
		cfg:       cfg,
		baseSpeed: physics.BaseSpeed * scale,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *SpeedSchedule) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Every > 0 && d.cfg.SpeedIncrement > 0
}

// InitialSpeed returns the speed a fresh session starts with.
func (d *SpeedSchedule) InitialSpeed() float64 {
	return d.baseSpeed
}

// Crossings returns how many multiples of Every lie in (prev, score].
// Multiple points gained in one tick can never skip a speed-up,
// and a score that stays on a multiple never fires twice.
func (d *SpeedSchedule) Crossings(prev, score int) int {
	if !d.IsEnabled() || score <= prev || score <= 0 {
		return 0
	}
	if prev < 0 {
		prev = 0
	}
	return score/d.cfg.Every - prev/d.cfg.Every
}

// Advance returns the speed after the score moved from prev to score,
// and the number of increments applied.
func (d *SpeedSchedule) Advance(speed float64, prev, score int) (float64, int) {
	n := d.Crossings(prev, score)
	if n == 0 {
		return speed, 0
	}
	next := speed + float64(n)*d.cfg.SpeedIncrement
	if d.cfg.MaxSpeed > 0 {
		next = math.Min(next, math.Max(d.cfg.MaxSpeed, speed))
	}
	return next, n
}
