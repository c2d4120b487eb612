package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagClearRuns bool

var resetCmd = &cobra.Command{
	Use:   "reset-highscore",
	Short: "Reset the stored high score to 0",
	Long: `Write 0 to the high score file, like pressing Del on the title screen.
With --runs the run history of every variant is deleted as well.

Examples:
  snake reset-highscore
  snake reset-highscore --runs`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagClearRuns, "runs", false, "Also delete the run history")
}

func runReset(_ *cobra.Command, _ []string) error {
	hs, err := highscore.Open(highScorePath())
	if err != nil {
		return err
	}
	if err := hs.Reset(); err != nil {
		return err
	}
	fmt.Printf("High score reset (%s)\n", hs.Path())

	if !flagClearRuns {
		return nil
	}

	store, err := storage.Open(dbPath())
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	var total int64
	for _, id := range registry.IDs() {
		n, err := store.ClearRuns(id)
		if err != nil {
			return err
		}
		total += n
	}
	fmt.Printf("Deleted %d runs\n", total)
	return nil
}
