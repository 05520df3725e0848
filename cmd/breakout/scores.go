package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresStats bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the best runs, for one level or across all levels.

Examples:
  breakout scores
  breakout scores one
  breakout scores --stats
  breakout scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-level statistics")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, levelNames(), width, height)
	}
	if flagScoresStats {
		return printStats(store)
	}

	level := ""
	title := "all levels"
	if len(args) == 1 {
		level, title = args[0], args[0]
	}

	runs, err := store.TopRuns(level, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakout play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-10s  %-6s  %-12s  %s\n", "Rank", "Score", "Level", "Result", "Player", "Date")
	fmt.Printf("  %-4s  %-7s  %-10s  %-6s  %-12s  %s\n", "----", "-----", "-----", "------", "------", "----")
	for i, r := range runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		fmt.Printf("  %-4d  %-7d  %-10s  %-6s  %-12s  %s\n",
			i+1, r.Score, r.Level, result, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if level != "" {
		if best, err := store.HighScore(level); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d\n", best)
		}
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.AllLevelStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("  %-10s  %-5s  %-5s  %-7s  %-8s  %s\n", "Level", "Runs", "Wins", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %-5s  %-5s  %-7s  %-8s  %s\n", "-----", "----", "----", "----", "-------", "-----------")
	for _, name := range names {
		s := stats[name]
		fmt.Printf("  %-10s  %-5d  %-5d  %-7d  %-8.1f  %s\n",
			s.Level, s.Runs, s.Wins, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
