package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
// Files are decoded on top of the defaults, so a partial file only overrides what it names.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseFlappy(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseFlappy(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "flappy.yaml")); err == nil {
		if cfg, err := parseFlappy(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseFlappy(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFlappy decodes YAML over the hardcoded defaults and validates the result.
func parseFlappy(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate reports every value that would make the field unplayable or malformed.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.Physics.Gravity < 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be >= 0, got %v", c.Physics.Gravity))
	}
	if c.Physics.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.base_speed must be > 0, got %v", c.Physics.BaseSpeed))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.SpawnX < 0 || c.Player.SpawnX > 1 || c.Player.SpawnY < 0 || c.Player.SpawnY > 1 {
		errs = append(errs, fmt.Errorf("player spawn must be fractions in [0, 1], got (%v, %v)", c.Player.SpawnX, c.Player.SpawnY))
	}
	if c.Obstacles.Width <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.width must be > 0, got %v", c.Obstacles.Width))
	}
	if c.Obstacles.GapFraction <= 0 || c.Obstacles.GapFraction >= 1 {
		errs = append(errs, fmt.Errorf("obstacles.gap_fraction must be in (0, 1), got %v", c.Obstacles.GapFraction))
	}
	if c.Obstacles.SpawnThreshold <= 0 || c.Obstacles.SpawnThreshold > 1 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_threshold must be in (0, 1], got %v", c.Obstacles.SpawnThreshold))
	}
	if c.Obstacles.TopMargin < 0 || c.Obstacles.BottomMargin < 0 {
		errs = append(errs, errors.New("obstacles margins must be >= 0"))
	}
	if c.Collectibles.Count < 0 {
		errs = append(errs, fmt.Errorf("collectibles.count must be >= 0, got %d", c.Collectibles.Count))
	}
	if c.Collectibles.Size <= 0 {
		errs = append(errs, fmt.Errorf("collectibles.size must be > 0, got %v", c.Collectibles.Size))
	}
	if c.Difficulty.Enabled && c.Difficulty.Every <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.every must be > 0, got %d", c.Difficulty.Every))
	}
	if c.Difficulty.SpeedIncrement < 0 {
		errs = append(errs, fmt.Errorf("difficulty.speed_increment must be >= 0, got %v", c.Difficulty.SpeedIncrement))
	}
	if c.Difficulty.SpeedScale <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.speed_scale must be > 0, got %v", c.Difficulty.SpeedScale))
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("display cell size must be positive, got %vx%v", c.Display.CellWidth, c.Display.CellHeight))
	}

	return errors.Join(errs...)
}

// LoadFlappyPreset loads the configuration and applies preset on top of it.
// An empty preset leaves the difficulty section exactly as the file set it.
func LoadFlappyPreset(customPath string, preset DifficultyPreset) (FlappyConfig, error) {
	cfg, err := LoadFlappy(customPath)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		ApplyFlappyPreset(&cfg, preset)
	}
	return cfg, nil
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.SpeedScale = 1.0
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.SpeedScale = SpeedScaleForPreset(preset)
}
