package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-coins/internal/core"
	"github.com/vovakirdan/flappy-coins/internal/games/flappy"
	"github.com/vovakirdan/flappy-coins/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Flappy Coins in the terminal.

Without --difficulty a menu lets you pick one first.

Controls:
  Space/Up/W - Flap (Space also starts)
  Enter      - Start
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower pipes, progresses with score
  normal - Config speed, progresses with score
  hard   - Faster pipes, progresses with score
  fixed  - No progression, stays at config's base speed

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --config ./my-flappy.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := gameLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, closeStore := openStore(logger)
	defer closeStore()

	preset, err := parseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("difficulty") {
		result, menuErr := tui.RunMenu(cfg, bestScore(store))
		if menuErr != nil {
			return menuErr
		}
		if result.Quit {
			return nil
		}
		preset = result.Preset
		cfg = result.Config
	}

	gameCfg, err := loadConfig(preset)
	if err != nil {
		return err
	}

	logger.Info("starting game", "difficulty", preset, "seed", cfg.Seed)
	if err := tui.Run(flappy.New(gameCfg, store, logger), cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
