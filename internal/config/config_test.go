package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseFlappy(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}

	want := DefaultFlappyConfig()
	if cfg.Physics != want.Physics {
		t.Errorf("physics = %+v, expected %+v", cfg.Physics, want.Physics)
	}
	if cfg.Player != want.Player {
		t.Errorf("player = %+v, expected %+v", cfg.Player, want.Player)
	}
	if cfg.Collectibles != want.Collectibles {
		t.Errorf("collectibles = %+v, expected %+v", cfg.Collectibles, want.Collectibles)
	}
	if math.Abs(cfg.Obstacles.GapFraction-want.Obstacles.GapFraction) > 1e-9 {
		t.Errorf("gap fraction = %v, expected %v", cfg.Obstacles.GapFraction, want.Obstacles.GapFraction)
	}
	if cfg.Difficulty != want.Difficulty {
		t.Errorf("difficulty = %+v, expected %+v", cfg.Difficulty, want.Difficulty)
	}
}

func TestLoadFlappyCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "physics:\n  gravity: 0.5\ncollectibles:\n  count: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Collectibles.Count != 5 {
		t.Errorf("count = %d, expected 5", cfg.Collectibles.Count)
	}
	// Unset values keep their defaults
	if cfg.Physics.JumpImpulse != 7 {
		t.Errorf("jump impulse = %v, expected default 7", cfg.Physics.JumpImpulse)
	}
}

func TestLoadFlappyMissingCustomPath(t *testing.T) {
	_, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadFlappyRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "obstacles:\n  gap_fraction: 1.5\n  width: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFlappy(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "gap_fraction") || !strings.Contains(err.Error(), "obstacles.width") {
		t.Errorf("error should name both bad fields, got %v", err)
	}
}

func TestApplyFlappyPreset(t *testing.T) {
	cfg := DefaultFlappyConfig()

	ApplyFlappyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.SpeedScale != 1.3 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}

	ApplyFlappyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"fixed", DifficultyFixed, true},
		{"nightmare", "", false},
	}

	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLoadFlappyPresetKeepsFileDifficulty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := "difficulty:\n  enabled: false\n  speed_scale: 1.5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappyPreset(path, "")
	if err != nil {
		t.Fatalf("LoadFlappyPreset() failed: %v", err)
	}
	if cfg.Difficulty.Enabled {
		t.Error("enabled: false from the file was overridden")
	}
	if cfg.Difficulty.SpeedScale != 1.5 {
		t.Errorf("speed scale = %v, expected 1.5 from the file", cfg.Difficulty.SpeedScale)
	}

	cfg, err = LoadFlappyPreset(path, DifficultyHard)
	if err != nil {
		t.Fatalf("LoadFlappyPreset() failed: %v", err)
	}
	if !cfg.Difficulty.Enabled || cfg.Difficulty.SpeedScale != 1.3 {
		t.Errorf("hard preset = (%v, %v), expected (true, 1.3)", cfg.Difficulty.Enabled, cfg.Difficulty.SpeedScale)
	}
}
