package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Terminals report presses but not releases, so a press holds its key
// down for this many ticks; key repeat refreshes the hold.
const holdTicks = 8

// footerHeight is the number of rows below the playfield.
const footerHeight = 1

// Options configures a GameModel.
type Options struct {
	Config  config.BreakoutConfig
	Runtime core.RuntimeConfig
	Levels  []breakout.LevelSource
	Store   *storage.Store
	Player  string
	Logger  *log.Logger
	Width   int // Terminal columns
	Height  int // Terminal rows
}

// GameModel runs one Breakout game inside Bubble Tea.
type GameModel struct {
	game     *breakout.Game
	screen   *core.Screen
	renderer *ScreenRenderer
	keys     KeyMap
	help     help.Model
	hold     *[core.KeyCount]int
	gen      int
	tickRate int
	logger   *log.Logger

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. gen tags the model's ticks.
func NewGameModel(opts Options, gen int) GameModel {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}

	cols, rows := opts.Width, opts.Height-footerHeight
	screen := core.NewScreen(max(cols, 1), max(rows, 1))

	world := opts.Runtime
	if world.Width <= 0 {
		world.Width = opts.Config.Window.Width
	}
	if world.Height <= 0 {
		world.Height = opts.Config.Window.Height
	}
	renderer := NewScreenRenderer(screen, world.Width, world.Height)

	gameOpts := []breakout.Option{
		breakout.WithLogger(opts.Logger),
		breakout.WithRenderer(renderer),
		breakout.WithLevels(opts.Levels...),
	}
	if opts.Store != nil {
		store, player, logger := opts.Store, opts.Player, opts.Logger
		gameOpts = append(gameOpts, breakout.WithRunEndHook(func(r breakout.RunResult) {
			id, err := store.SaveRun(player, r)
			if err != nil {
				logger.Warn("could not save run", "error", err)
				return
			}
			logger.Debug("run saved", "id", id, "level", r.Level, "score", r.Score)
		}))
	}

	game := breakout.New(opts.Config, world, gameOpts...)
	game.Init()

	h := help.New()
	h.Width = cols

	return GameModel{
		game:     game,
		screen:   screen,
		renderer: renderer,
		keys:     DefaultKeyMap(),
		help:     h,
		hold:     new([core.KeyCount]int),
		gen:      gen,
		tickRate: world.TickRate,
		logger:   opts.Logger,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.tickRate, m.gen)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(max(msg.Width, 1), max(msg.Height-footerHeight, 1))
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		if msg.Gen != m.gen || m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if k := m.keys.Resolve(msg); k != core.KeyNone {
		m.press(k)
	}
	return m, nil
}

// press starts a fresh press of k: every key message is a new edge for
// the menu keys and refreshes the hold for the movement keys.
func (m GameModel) press(k core.Key) {
	m.game.Keys.Release(k)
	m.game.Keys.Press(k)
	m.hold[k] = holdTicks
}

// releaseExpired counts down held keys and releases those that ran out.
func (m GameModel) releaseExpired() {
	for k := core.KeyNone + 1; k < core.KeyCount; k++ {
		if m.hold[k] == 0 {
			continue
		}
		m.hold[k]--
		if m.hold[k] == 0 {
			m.game.Keys.Release(k)
		}
	}
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step()
	m.releaseExpired()
	return m, tickCmd(m.tickRate, m.gen)
}

// saveScreenshot writes the current screen as plain text.
func (m GameModel) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	name := fmt.Sprintf("breakout_%s.txt", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
	}
}

// View renders the playfield and the help footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys))
	return RenderScreen(m.screen) + "\n" + footer
}

// Game exposes the underlying controller.
func (m GameModel) Game() *breakout.Game { return m.game }

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if the user requested the launcher menu.
func (m GameModel) BackToMenu() bool { return m.backToMenu }
