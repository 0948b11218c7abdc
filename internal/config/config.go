// Package config provides YAML-based game configuration loading and
// difficulty management for the game.
package config

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Physics      FlappyPhysics      `yaml:"physics"`
	Player       FlappyPlayer       `yaml:"player"`
	Obstacles    FlappyObstacles    `yaml:"obstacles"`
	Collectibles FlappyCollectibles `yaml:"collectibles"`
	Difficulty   DifficultyConfig   `yaml:"difficulty"`
	Display      DisplayConfig      `yaml:"display"`
}

// FlappyPhysics defines physics parameters.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Upward speed set on jump (positive)
	BaseSpeed   float64 `yaml:"base_speed"`   // Initial scroll speed per tick
}

// FlappyPlayer defines the player's spawn point and hitbox.
type FlappyPlayer struct {
	SpawnX float64 `yaml:"spawn_x"` // Fraction of field width
	SpawnY float64 `yaml:"spawn_y"` // Fraction of field height
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyObstacles defines pipe parameters.
type FlappyObstacles struct {
	Width          float64 `yaml:"width"`
	GapFraction    float64 `yaml:"gap_fraction"`    // Gap height as a fraction of field height
	SpawnThreshold float64 `yaml:"spawn_threshold"` // Fraction of field width the last pipe must pass
	TopMargin      float64 `yaml:"top_margin"`
	BottomMargin   float64 `yaml:"bottom_margin"`
}

// FlappyCollectibles defines coin parameters.
type FlappyCollectibles struct {
	Count    int     `yaml:"count"`     // Coins emitted per pipe
	Size     float64 `yaml:"size"`      // Coin hitbox edge
	SpacingX float64 `yaml:"spacing_x"` // Horizontal distance between coins of a batch
}

// DifficultyConfig defines the linear speed progression.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	Every          int     `yaml:"every"`           // Score step that triggers a speed-up
	SpeedIncrement float64 `yaml:"speed_increment"` // Added to speed per step
	MaxSpeed       float64 `yaml:"max_speed"`       // 0 = no cap
	SpeedScale     float64 `yaml:"speed_scale"`     // Multiplier on base speed, set by presets
}

// DisplayConfig maps logical field units to terminal cells.
type DisplayConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// SpeedScaleForPreset returns the base speed multiplier for a preset.
func SpeedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
