package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-coins/internal/platform/gui"
)

var (
	flagWidth  int
	flagHeight int

	flagWindowDifficulty string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Flappy Coins in a desktop window.

The field is measured in pixels, so the window size is the field size.

Examples:
  flappy window
  flappy window --difficulty easy --width 1024 --height 768`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagWindowDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	windowCmd.Flags().IntVar(&flagWidth, "width", gui.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", gui.DefaultHeight, "Window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr)
	if flagLogFile != "" {
		fileLogger, closeLog, err := gameLogger()
		if err != nil {
			return err
		}
		defer closeLog()
		logger = fileLogger
	}

	preset, err := parseDifficulty(flagWindowDifficulty)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(preset)
	if err != nil {
		return err
	}

	store, closeStore := openStore(logger)
	defer closeStore()

	return gui.Run(gui.Options{
		Config: cfg,
		Width:  flagWidth,
		Height: flagHeight,
		TPS:    flagFPS,
		Seed:   flagSeed,
		Store:  store,
		Logger: logger,
	})
}
