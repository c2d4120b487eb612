package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the rule variants",
	Long:  `Shows the registered rule variants with their grid size and speed.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Grid", "Speed", "Title")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "-----")

	for _, info := range variants {
		// Created fresh so config overrides show.
		grid, rate := "?", info.TickRate
		if game, err := registry.Create(info.ID); err == nil {
			rate = game.TickRate()
			if g, ok := game.(*snake.Game); ok {
				b := g.Board()
				grid = fmt.Sprintf("%dx%d", b.Width, b.Height)
			}
		}
		fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, info.ID, grid, fmt.Sprintf("%dHz", rate), info.Title)
	}

	fmt.Println()
	fmt.Println("Run 'snake play <id>' to play a variant.")
}
