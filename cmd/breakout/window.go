package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/desktop"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Breakout in a desktop window sized from the config.

Controls are the same as in the terminal; Esc closes the window.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name stored with each run")
}

func runWindow(_ *cobra.Command, _ []string) error {
	rt := runtimeConfig()
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	opts := desktop.Options{
		Config:  state.cfg,
		Runtime: rt,
		Levels:  levelSources(),
		Logger:  state.logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		state.logger.Warn("could not open runs database", "error", err)
	} else {
		defer store.Close()
		opts.OnRun = func(r breakout.RunResult) {
			if _, err := store.SaveRun(flagPlayer, r); err != nil {
				state.logger.Warn("could not save run", "error", err)
			}
		}
	}

	return desktop.Run(opts)
}
