package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var mazesCmd = &cobra.Command{
	Use:   "mazes",
	Short: "List bundled mazes",
	Long:  `Shows the mazes built into the binary. Pass an ID to 'pacman play --maze'.`,
	Args:  cobra.NoArgs,
	Run:   runMazes,
}

func runMazes(_ *cobra.Command, _ []string) {
	mazes, err := pacman.Mazes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Bundled mazes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range mazes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Size", "Food", "Name")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", "----", "----", "----")
	for _, m := range mazes {
		size := fmt.Sprintf("%dx%d", m.Cols(), m.RowCount())
		fmt.Printf("  %-*s  %-7s  %-5d  %s\n", maxIDLen, m.ID, size, m.FoodCount(), m.Name)
	}

	fmt.Println()
	fmt.Println("Run 'pacman play --maze <id>' to play a maze.")
}
