package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show the best runs of a variant",
	Long: `Display the top 10 runs recorded for the given variant, plus totals.

Examples:
  snake scores deluxe
  snake scores classic --db ./runs.db`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func runScores(_ *cobra.Command, args []string) error {
	variant := args[0]
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q (run 'snake list' to see available variants)", variant)
	}

	game, err := registry.Create(variant)
	if err != nil {
		return err
	}

	store, err := storage.Open(dbPath())
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	runs, err := store.TopRuns(variant, 10)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", variant)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-10s  %s\n", "Rank", "Score", "Length", "Time", "End", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-10s  %s\n", "----", "-----", "------", "----", "---", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-6d  %-8s  %-10s  %s\n",
			i+1, r.Score, r.Length, r.Duration.Round(time.Second), r.EndReason,
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(variant); err == nil {
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Longest snake: %d  Time played: %s\n",
			stats.Runs, stats.BestScore, stats.AvgScore, stats.LongestSnake, stats.TotalTime.Round(time.Second))
	}
	if hs, err := highscore.Open(highScorePath()); err == nil {
		fmt.Printf("High score file: %d (%s)\n", hs.Load(), hs.Path())
	}
	return nil
}
