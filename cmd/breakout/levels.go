package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the built-in levels and any loaded with --levels-dir, in menu order.

Examples:
  breakout levels
  breakout levels --levels-dir ./levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	infos := registry.List()
	if len(infos) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	maxIDLen := 2 // "ID" header
	for _, info := range infos {
		maxIDLen = max(maxIDLen, len(info.ID))
	}

	fmt.Println("Available levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-7s  %-6s  %-5s  %s\n", maxIDLen, "ID", "Size", "Bricks", "Solid", "Title")
	fmt.Printf("  %-*s  %-7s  %-6s  %-5s  %s\n", maxIDLen, "--", "----", "------", "-----", "-----")

	for _, info := range infos {
		src, err := registry.Create(info.ID)
		if err != nil {
			return err
		}
		grid, err := src.Grid()
		if err == nil && len(grid) == 0 {
			err = breakout.ErrEmptyLevel
		}
		if err != nil {
			fmt.Printf("  %-*s  %s\n", maxIDLen, info.ID, err)
			continue
		}

		bricks, solid := 0, 0
		for _, row := range grid {
			for _, tile := range row {
				switch {
				case tile == breakout.TileSolid:
					solid++
				case tile > breakout.TileSolid:
					bricks++
				}
			}
		}
		size := fmt.Sprintf("%dx%d", len(grid[0]), len(grid))
		fmt.Printf("  %-*s  %-7s  %-6d  %-5d  %s\n", maxIDLen, info.ID, size, bricks, solid, info.Title)
	}

	fmt.Println()
	fmt.Println("Run 'breakout play' and pick a level with W/S.")
	return nil
}
