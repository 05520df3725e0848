package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Breakout in the terminal.

Controls:
  A/D, Left/Right  - Move the paddle
  Space            - Launch the ball
  W/S, Up/Down     - Select level in the menu
  Enter            - Start / continue after a win
  Esc              - Back to the launcher
  Q/Ctrl+C         - Quit

Logs go to --log-file while the game owns the terminal.

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --seed 42 --log-file breakout.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name stored with each run")
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	logger := state.logger
	if flagLogFile == "" {
		logger = log.New(io.Discard)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		state.logger.Warn("could not open runs database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Config:  state.cfg,
		Runtime: runtimeConfig(),
		Levels:  levelSources(),
		Store:   store,
		Player:  flagPlayer,
		Logger:  logger,
		Width:   width,
		Height:  height,
	}
	if err := tui.Run(opts, levelNames()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
