package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:     0.4,
			JumpImpulse: 7,
			BaseSpeed:   3,
		},
		Player: FlappyPlayer{
			SpawnX: 0.125,
			SpawnY: 0.5,
			Width:  60,
			Height: 60,
		},
		Obstacles: FlappyObstacles{
			Width:          70,
			GapFraction:    1.0 / 3.0,
			SpawnThreshold: 0.6,
			TopMargin:      0,
			BottomMargin:   100,
		},
		Collectibles: FlappyCollectibles{
			Count:    3,
			Size:     40,
			SpacingX: 150,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			Every:          5,
			SpeedIncrement: 0.05,
			MaxSpeed:       0,
			SpeedScale:     1.0,
		},
		Display: DisplayConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultFlappyYAML
}
