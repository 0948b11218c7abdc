// Command flappy runs Flappy Coins in the terminal, in a window, or as an
// SSH server.
//
// Usage:
//
//	flappy play [--difficulty easy|normal|hard|fixed] [--config path]
//	flappy window [--width 800 --height 600]
//	flappy serve [--ssh :23234] [--host-key path]
//	flappy scores [-i] [--all] [--clear]
//	flappy config [--print-default]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-coins/internal/config"
	"github.com/vovakirdan/flappy-coins/internal/games/flappy"
	"github.com/vovakirdan/flappy-coins/internal/storage"
)

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Coins: flap through pipes, collect coins",
	Long: `Flappy Coins is a side-scrolling arcade game.

Flap through the gaps between pipes, pick up coins and
watch the pipes speed up as your score grows.

Play in the terminal, in a desktop window, or host it over SSH.`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Target frames per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for deterministic gameplay (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "SQLite path or postgres:// URL for scores")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger returns a logger writing to w with the command prefix.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
}

// gameLogger logs to --log-file when set. The terminal belongs to the
// game while it runs, so by default logs are discarded.
func gameLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}

// openStore opens the score database. On failure the game still runs
// with in-memory scores that are lost on exit.
func openStore(logger *log.Logger) (flappy.ScoreStore, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not persist", "db", flagDBPath, "err", err)
		return storage.NewMemory(), func() {}
	}
	logger.Info("scores database opened", "db", flagDBPath, "dialect", store.Dialect())
	return store, func() { store.Close() }
}

// loadConfig loads the game config. An empty preset keeps the
// difficulty section from the config file.
func loadConfig(preset config.DifficultyPreset) (config.FlappyConfig, error) {
	return config.LoadFlappyPreset(flagConfig, preset)
}

// parseDifficulty maps a --difficulty value to a preset. An empty value
// means no preset was chosen.
func parseDifficulty(name string) (config.DifficultyPreset, error) {
	if name == "" {
		return "", nil
	}
	preset, ok := config.ParsePreset(name)
	if !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
	return preset, nil
}

// bestScore reads the stored best score, treating errors as zero.
func bestScore(store flappy.ScoreStore) int {
	best, _, err := store.BestScore(flappy.BestScoreKey)
	if err != nil {
		return 0
	}
	return best
}
