package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse run history interactively",
	Long: `Open the scoreboard: the best runs of each variant in a table.

Controls:
  Up/Down/j/k     - Scroll
  Tab/Left/Right  - Switch variant
  Q/Esc           - Quit`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "snake")

	store, err := storage.Open(dbPath())
	if err != nil {
		// The board still opens and says history is unavailable
		logger.Warn("could not open run history", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.RunScoreboard(store, width, height)
}
