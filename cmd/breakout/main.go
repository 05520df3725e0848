// breakout is a Breakout game for the terminal, a desktop window or SSH.
//
// Usage:
//
//	breakout play            - Play in the terminal
//	breakout window          - Play in a desktop window
//	breakout serve           - Start SSH server for remote play
//	breakout levels          - List available levels
//	breakout scores [level]  - Show high scores
//	breakout sim             - Run a headless autopilot simulation
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--levels-dir <dir>    - Extra level pack directory
//	--fps <rate>          - Tick rate (default: 60)
//	--seed <value>        - RNG seed for reproducible gameplay
//	--db <path>           - Runs database (default: ~/.breakout/runs.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/levels"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

// app is the state shared by every command, built before the command runs.
type app struct {
	cfg     config.BreakoutConfig
	logger  *log.Logger
	logFile *os.File
}

var state app

func main() {
	err := rootCmd.Execute()
	if state.logFile != nil {
		state.logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal or a window",
	Long: `Breakout is the classic brick breaking game with power-ups,
particles and screen effects. It runs in the terminal, in a desktop
window, over SSH or headless.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  levels   - List available levels
  scores   - View high scores
  sim      - Run a headless simulation

Examples:
  breakout play
  breakout play --difficulty hard
  breakout window --levels-dir ./levels
  breakout serve --ssh :2222
  breakout sim --seconds 120 --snapshot final.msgpack`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLevelsDir, "levels-dir", "", "Directory with extra .lvl, .yaml or .toml levels")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.breakout/runs.db", "Path to runs database")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// setup builds the logger, loads the config and registers extra levels.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- user-provided log path
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		state.logFile = f
		out = f
	}
	state.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           level,
	})

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyBreakoutPreset(&cfg, preset)
	state.cfg = cfg

	if flagLevelsDir != "" {
		skipped, err := levels.RegisterDir(flagLevelsDir)
		if err != nil {
			return err
		}
		for _, e := range skipped {
			state.logger.Warn("skipped level file", "error", e)
		}
	}

	state.logger.Debug("config loaded", "difficulty", preset, "levels", len(registry.List()))
	return nil
}

// runtimeConfig returns the world settings from the config and flags.
func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Width:    state.cfg.Window.Width,
		Height:   state.cfg.Window.Height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// levelSources returns every registered level in menu order.
func levelSources() []breakout.LevelSource {
	return registry.Sources()
}

// levelNames returns the display name of every registered level.
func levelNames() []string {
	sources := levelSources()
	names := make([]string, len(sources))
	for i, src := range sources {
		names[i] = src.Name()
	}
	return names
}
