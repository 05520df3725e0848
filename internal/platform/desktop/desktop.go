// Package desktop runs Breakout in a desktop window using ebiten.
// The host polls the keyboard into the game's key state, steps the
// simulation at a fixed rate and draws through an off-screen renderer.
package desktop

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// keyBindings lists the physical keys for each game key.
var keyBindings = map[core.Key][]ebiten.Key{
	core.KeyLeft:    {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.KeyRight:   {ebiten.KeyD, ebiten.KeyArrowRight},
	core.KeyLaunch:  {ebiten.KeySpace},
	core.KeyConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.KeyNext:    {ebiten.KeyW, ebiten.KeyArrowUp},
	core.KeyPrev:    {ebiten.KeyS, ebiten.KeyArrowDown},
	core.KeyQuit:    {ebiten.KeyEscape},
}

// pollKeys writes the held state of every bound key. A key that is up
// is released, which re-arms its edge trigger.
func pollKeys(ks *core.KeyState, pressed func(ebiten.Key) bool) {
	for k, keys := range keyBindings {
		down := false
		for _, key := range keys {
			if pressed(key) {
				down = true
				break
			}
		}
		if down {
			ks.Press(k)
		} else {
			ks.Release(k)
		}
	}
}

// Options configures the desktop host.
type Options struct {
	Config  config.BreakoutConfig
	Runtime core.RuntimeConfig
	Levels  []breakout.LevelSource
	Logger  *log.Logger
	OnRun   func(breakout.RunResult)
	Title   string
}

// Host is the ebiten.Game driving a Breakout game.
type Host struct {
	game     *breakout.Game
	renderer *Renderer
	dt       float64
}

// NewHost creates and initializes a game for the window.
func NewHost(opts Options) *Host {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	rt := opts.Runtime
	if rt.Width <= 0 {
		rt.Width = opts.Config.Window.Width
	}
	if rt.Height <= 0 {
		rt.Height = opts.Config.Window.Height
	}

	renderer := NewRenderer(rt.Width, rt.Height, opts.Logger)
	gameOpts := []breakout.Option{
		breakout.WithLogger(opts.Logger),
		breakout.WithRenderer(renderer),
		breakout.WithLevels(opts.Levels...),
	}
	if opts.OnRun != nil {
		gameOpts = append(gameOpts, breakout.WithRunEndHook(opts.OnRun))
	}

	game := breakout.New(opts.Config, rt, gameOpts...)
	game.Init()

	return &Host{game: game, renderer: renderer, dt: rt.Step()}
}

// Game exposes the underlying controller.
func (h *Host) Game() *breakout.Game { return h.game }

// Update polls input and advances the simulation by one fixed step.
// Escape closes the window.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	pollKeys(&h.game.Keys, ebiten.IsKeyPressed)
	h.game.ProcessInput(h.dt)
	h.game.Update(h.dt)
	return nil
}

// Draw renders the current frame.
func (h *Host) Draw(screen *ebiten.Image) {
	h.renderer.SetTarget(screen)
	h.game.Render()
}

// Layout keeps the logical screen at the world size; ebiten scales it to
// the window.
func (h *Host) Layout(_, _ int) (int, int) {
	rt := h.game.Runtime()
	return int(rt.Width), int(rt.Height)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	host := NewHost(opts)
	rt := host.game.Runtime()

	title := opts.Title
	if title == "" {
		title = "Breakout"
	}
	ebiten.SetWindowSize(int(rt.Width), int(rt.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if rt.TickRate > 0 {
		ebiten.SetTPS(rt.TickRate)
	}

	if err := ebiten.RunGame(host); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
