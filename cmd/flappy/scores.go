package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-coins/internal/games/flappy"
	"github.com/vovakirdan/flappy-coins/internal/platform/tui"
	"github.com/vovakirdan/flappy-coins/internal/storage"
)

var (
	flagInteractive bool
	flagAllScores   bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 runs (or every run with --all), the best score and play statistics.

Examples:
  flappy scores
  flappy scores -i          # Browse in an interactive table
  flappy scores --all       # List every recorded run
  flappy scores --clear     # Forget all runs and the best score`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every recorded run instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs and the best score")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(flappy.GameID); err != nil {
			return err
		}
		if err := store.ClearBest(flappy.BestScoreKey); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, flappy.GameID, flappy.GameTitle, flappy.BestScoreKey, width, height)
	}

	var scores []storage.ScoreEntry
	if flagAllScores {
		scores, err = store.AllScores(flappy.GameID)
	} else {
		scores, err = store.TopScores(flappy.GameID, 10)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", flappy.GameTitle)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Speed", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6.1f  %s\n", i+1, entry.Score, entry.Speed, dateStr)
	}

	fmt.Println()
	if best, ok, err := store.BestScore(flappy.BestScoreKey); err == nil && ok {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetGameStats(flappy.GameID); err == nil {
		fmt.Printf("Games: %d  |  Average: %.1f\n", stats.GamesCount, stats.AvgScore)
	}
	return nil
}
