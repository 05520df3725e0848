package breakout

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// State is the controller state.
type State int

const (
	StateActive State = iota // Gameplay
	StateMenu                // Level select
	StateWin                 // Level cleared
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateMenu:
		return "menu"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

// Text colors for overlays.
var (
	textGreen  = core.RGB{R: 0, G: 1, B: 0}
	textYellow = core.RGB{R: 1, G: 1, B: 0}
)

// Tints applied by power-ups.
var (
	stickyTint      = core.RGB{R: 1, G: 0.5, B: 1}
	passThroughTint = core.RGB{R: 1, G: 0.5, B: 0.5}
)

// LevelSource supplies the tile grid of a level.
type LevelSource interface {
	Name() string
	Grid() ([][]int, error)
}

// StaticLevel is a level held in memory as text.
type StaticLevel struct {
	Title string
	Text  string
}

// Name returns the level title.
func (s StaticLevel) Name() string { return s.Title }

// Grid parses the level text.
func (s StaticLevel) Grid() ([][]int, error) {
	return ParseGrid(strings.NewReader(s.Text))
}

// RunResult describes a finished run: a cleared level or lost lives.
type RunResult struct {
	Level           string
	LevelIndex      int
	Score           int
	Won             bool
	BricksDestroyed int
	Seconds         float64
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithRenderer sets the drawing collaborator.
func WithRenderer(r Renderer) Option {
	return func(g *Game) { g.renderer = r }
}

// WithAudio sets the sound collaborator.
func WithAudio(a Audio) Option {
	return func(g *Game) { g.audio = a }
}

// WithLevels sets the level sources, in menu order.
func WithLevels(sources ...LevelSource) Option {
	return func(g *Game) { g.sources = sources }
}

// WithRunEndHook registers a callback invoked when a run finishes.
func WithRunEndHook(fn func(RunResult)) Option {
	return func(g *Game) { g.onRunEnd = fn }
}

// Game is the top-level controller. It owns every entity, the particle
// pool, the power-up registry and the post-processing flags. Hosts call
// ProcessInput, Update and Render once per fixed step and write key state
// into Keys.
type Game struct {
	State State
	Keys  core.KeyState
	Lives int
	Level int // Index of the selected level
	Score int

	levels    []Level
	sources   []LevelSource
	paddle    Entity
	ball      *Ball
	particles *ParticlePool
	powerups  *PowerUpRegistry
	fx        Effects
	rng       *RNG

	ticks uint64
	clk   float64 // Accumulated game time in seconds

	runStart  float64
	runBricks int

	cfg      config.BreakoutConfig
	runtime  core.RuntimeConfig
	renderer Renderer
	audio    Audio
	logger   *log.Logger
	onRunEnd func(RunResult)
}

// New creates a game. Call Init before the first frame.
func New(cfg config.BreakoutConfig, runtime core.RuntimeConfig, opts ...Option) *Game {
	if runtime.Width <= 0 {
		runtime.Width = cfg.Window.Width
	}
	if runtime.Height <= 0 {
		runtime.Height = cfg.Window.Height
	}

	g := &Game{
		cfg:      cfg,
		runtime:  runtime,
		renderer: nopRenderer{},
		audio:    nopAudio{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Init loads every level, places the paddle and ball and starts the music.
// The game starts in the menu.
func (g *Game) Init() {
	g.rng = NewRNG(g.runtime.Seed)
	g.particles = NewParticlePool(g.particleConfig())
	g.powerups = NewPowerUpRegistry(g.powerUpConfig())
	g.fx = Effects{}
	g.ticks = 0
	g.clk = 0

	g.levels = make([]Level, len(g.sources))
	for i := range g.sources {
		g.loadLevel(i)
	}
	if len(g.sources) == 0 {
		g.logger.Warn("no levels configured")
	}
	g.Level = 0
	g.Lives = g.cfg.Gameplay.Lives
	g.Score = 0

	g.paddle = NewEntity(g.paddleStart(), g.paddleSize(), SpritePaddle, core.White)
	g.ball = NewBall(g.ballStart(), g.cfg.Ball.Radius, g.initialVelocity())

	g.State = StateMenu
	g.audio.Loop(SoundMusic)
	g.logger.Debug("game initialized", "levels", len(g.levels), "seed", g.runtime.Seed)
}

func (g *Game) loadLevel(i int) {
	g.levels[i] = g.buildLevel(i)
}

// buildLevel lays out level i from its source. A source that fails to
// load gives an empty level.
func (g *Game) buildLevel(i int) Level {
	src := g.sources[i]
	lvl := Level{Name: src.Name()}

	grid, err := src.Grid()
	if err == nil {
		err = lvl.Init(grid, g.runtime.Width, g.levelHeight())
	} else {
		lvl.clear()
	}
	if err != nil {
		g.logger.Warn("level load failed", "level", src.Name(), "error", err)
	}
	return lvl
}

// ProcessInput applies the current key state.
func (g *Game) ProcessInput(dt float64) {
	switch g.State {
	case StateActive:
		velocity := g.cfg.Paddle.Velocity * dt
		if g.Keys.IsDown(core.KeyLeft) && g.paddle.Position.X >= 0 {
			g.paddle.Position.X -= velocity
			if g.ball.Stuck {
				g.ball.Position.X -= velocity
			}
		}
		if g.Keys.IsDown(core.KeyRight) && g.paddle.Position.X <= g.runtime.Width-g.paddle.Size.X {
			g.paddle.Position.X += velocity
			if g.ball.Stuck {
				g.ball.Position.X += velocity
			}
		}
		if g.Keys.IsDown(core.KeyLaunch) {
			g.ball.Stuck = false
		}

	case StateMenu:
		if g.Keys.Consume(core.KeyConfirm) {
			g.startRun()
		}
		if n := len(g.levels); n > 0 {
			if g.Keys.Consume(core.KeyNext) {
				g.Level = (g.Level + 1) % n
			}
			if g.Keys.Consume(core.KeyPrev) {
				if g.Level > 0 {
					g.Level--
				} else {
					g.Level = n - 1
				}
			}
		}

	case StateWin:
		if g.Keys.IsDown(core.KeyConfirm) {
			g.Keys.Processed[core.KeyConfirm] = true
			g.fx.Chaos = false
			g.setState(StateMenu)
		}
	}
}

// startRun leaves the menu unless the selected level has nothing to break.
func (g *Game) startRun() {
	lvl := g.CurrentLevel()
	if lvl == nil || len(lvl.Bricks) == 0 {
		g.logger.Warn("refusing to start an empty level", "level", g.Level)
		return
	}
	g.Score = 0
	g.runBricks = 0
	g.runStart = g.clk
	g.setState(StateActive)
}

// Update advances the simulation by dt seconds. The order is fixed: move
// the ball, resolve collisions, advance particles and power-ups, count
// down the shake, then check for a lost life and a cleared level.
func (g *Game) Update(dt float64) {
	g.ticks++
	g.clk += dt

	g.ball.Move(dt, g.runtime.Width)

	g.doCollisions()

	offset := core.V(g.ball.Radius/2, g.ball.Radius/2)
	g.particles.Update(dt, &g.ball.Entity, g.cfg.Particles.PerFrame, offset, g.rng)

	for _, t := range g.powerups.Update(dt) {
		g.deactivatePowerUp(t)
	}

	g.fx.Tick(dt)

	if g.ball.Position.Y >= g.runtime.Height {
		g.Lives--
		g.logger.Debug("ball lost", "lives", g.Lives)
		if g.Lives <= 0 {
			g.endRun(false)
			g.ResetLevel()
			g.setState(StateMenu)
		}
		g.ResetPlayer()
	}

	if lvl := g.CurrentLevel(); g.State == StateActive && lvl != nil && lvl.IsCompleted() {
		g.endRun(true)
		g.ResetLevel()
		g.ResetPlayer()
		g.fx.Chaos = true
		g.setState(StateWin)
	}
}

// doCollisions resolves ball/brick hits, then the ball/paddle bounce, then
// power-up pickups.
func (g *Game) doCollisions() {
	if lvl := g.CurrentLevel(); lvl != nil {
		for i := range lvl.Bricks {
			box := &lvl.Bricks[i]
			if box.Destroyed {
				continue
			}
			c := CheckBallCollision(g.ball, box)
			if !c.Hit {
				continue
			}

			if !box.Solid {
				box.Destroyed = true
				g.Score += g.cfg.Gameplay.BrickPoints
				g.runBricks++
				g.powerups.Spawn(box, g.rng)
				g.audio.Play(SoundBrick)
			} else {
				g.fx.StartShake(g.cfg.Effects.ShakeDuration)
				g.audio.Play(SoundSolid)
			}

			if g.ball.PassThrough && box.Solid {
				continue
			}
			resolveBrickHit(g.ball, c)
		}
	}

	if !g.ball.Stuck {
		if c := CheckBallCollision(g.ball, &g.paddle); c.Hit {
			bouncePaddle(g.ball, &g.paddle, g.cfg.Ball.VelocityX, g.cfg.Ball.BounceStrength)
			g.audio.Play(SoundPaddle)
		}
	}

	for _, t := range g.powerups.Collect(&g.paddle, g.runtime.Height) {
		g.activatePowerUp(t)
		g.audio.Play(SoundPowerUp)
	}
}

// activatePowerUp applies the side effect of a collected power-up.
func (g *Game) activatePowerUp(t PowerUpType) {
	switch t {
	case PowerUpSpeed:
		g.ball.Velocity = g.ball.Velocity.Scale(g.cfg.PowerUps.SpeedFactor)
	case PowerUpSticky:
		g.ball.Sticky = true
		g.paddle.Color = stickyTint
	case PowerUpPassThrough:
		g.ball.PassThrough = true
		g.ball.Color = passThroughTint
	case PowerUpPadSizeIncrease:
		g.paddle.Size.X += g.cfg.PowerUps.PadIncrement
	case PowerUpConfuse:
		if !g.fx.Chaos {
			g.fx.Confuse = true
		}
	case PowerUpChaos:
		if !g.fx.Confuse {
			g.fx.Chaos = true
		}
	}
	g.logger.Debug("power-up activated", "type", t)
}

// deactivatePowerUp reverts the side effect of an expired power-up.
// Speed and pad size have no duration and are undone by ResetPlayer.
func (g *Game) deactivatePowerUp(t PowerUpType) {
	switch t {
	case PowerUpSticky:
		g.ball.Sticky = false
		g.paddle.Color = core.White
	case PowerUpPassThrough:
		g.ball.PassThrough = false
		g.ball.Color = core.White
	case PowerUpConfuse:
		g.fx.Confuse = false
	case PowerUpChaos:
		g.fx.Chaos = false
	}
	g.logger.Debug("power-up expired", "type", t)
}

// ResetLevel reloads the selected level and restores the lives.
func (g *Game) ResetLevel() {
	if g.Level >= 0 && g.Level < len(g.levels) {
		g.loadLevel(g.Level)
	}
	g.Lives = g.cfg.Gameplay.Lives
}

// ResetPlayer puts the paddle and ball back at their starting positions.
func (g *Game) ResetPlayer() {
	g.paddle.Size = g.paddleSize()
	g.paddle.Position = g.paddleStart()
	g.paddle.Color = core.White
	g.ball.Reset(g.ballStart(), g.initialVelocity())
}

// endRun reports a finished run to the hook.
func (g *Game) endRun(won bool) {
	res := RunResult{
		LevelIndex:      g.Level,
		Score:           g.Score,
		Won:             won,
		BricksDestroyed: g.runBricks,
		Seconds:         g.clk - g.runStart,
	}
	if lvl := g.CurrentLevel(); lvl != nil {
		res.Level = lvl.Name
	}
	g.logger.Info("run finished", "level", res.Level, "score", res.Score, "won", won)
	if g.onRunEnd != nil {
		g.onRunEnd(res)
	}
}

func (g *Game) setState(s State) {
	if g.State != s {
		g.logger.Debug("state change", "from", g.State, "to", s)
	}
	g.State = s
}

// Render draws the scene into the post-processing buffer, composites it
// with the active effects and draws the text overlays on top.
func (g *Game) Render() {
	r := g.renderer
	w, h := g.runtime.Width, g.runtime.Height

	r.BeginRender()
	r.DrawSprite(SpriteBackground, core.V(0, 0), core.V(w, h), 0, core.White)
	if lvl := g.CurrentLevel(); lvl != nil {
		lvl.Draw(r)
	}
	g.paddle.Draw(r)
	g.powerups.Draw(r)
	g.particles.Draw(r)
	g.ball.Draw(r)
	r.EndRender()
	r.Composite(g.fx, g.clk)

	r.DrawText(fmt.Sprintf("Lives: %d", g.Lives), core.V(5, 5), 1, core.White)
	r.DrawText(fmt.Sprintf("Score: %d", g.Score), core.V(w-160, 5), 1, core.White)

	switch g.State {
	case StateMenu:
		r.DrawText("Press ENTER to start", core.V(250, h/2), 1, core.White)
		r.DrawText("Press W or S to select level", core.V(245, h/2+20), 0.75, core.White)
		if lvl := g.CurrentLevel(); lvl != nil && lvl.Name != "" {
			r.DrawText("Level: "+lvl.Name, core.V(245, h/2+40), 0.75, core.White)
		}
	case StateWin:
		r.DrawText("You WON!!!", core.V(320, h/2-20), 1, textGreen)
		r.DrawText("Press ENTER to retry or ESC to quit", core.V(130, h/2), 1, textYellow)
	}
}

// Step runs one fixed frame: input, update, render.
func (g *Game) Step() {
	dt := g.runtime.Step()
	g.ProcessInput(dt)
	g.Update(dt)
	g.Render()
}

func (g *Game) paddleSize() core.Vec2 {
	return core.V(g.cfg.Paddle.Width, g.cfg.Paddle.Height)
}

func (g *Game) paddleStart() core.Vec2 {
	return core.V(g.runtime.Width/2-g.cfg.Paddle.Width/2, g.runtime.Height-g.cfg.Paddle.Height)
}

func (g *Game) ballStart() core.Vec2 {
	r := g.cfg.Ball.Radius
	return g.paddleStart().Add(core.V(g.cfg.Paddle.Width/2-r, -2*r))
}

func (g *Game) initialVelocity() core.Vec2 {
	return core.V(g.cfg.Ball.VelocityX, g.cfg.Ball.VelocityY)
}

func (g *Game) levelHeight() float64 {
	ratio := g.cfg.Gameplay.LevelHeightRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 0.5
	}
	return g.runtime.Height * ratio
}

func (g *Game) particleConfig() ParticleConfig {
	p := g.cfg.Particles
	return ParticleConfig{
		Capacity:       p.Capacity,
		PerFrame:       p.PerFrame,
		Life:           p.Life,
		FadeRate:       p.FadeRate,
		VelocityFactor: p.VelocityFactor,
		Scale:          p.Scale,
	}
}

func (g *Game) powerUpConfig() PowerUpConfig {
	p := g.cfg.PowerUps
	return PowerUpConfig{
		BeneficialOdds:  p.BeneficialOdds,
		DetrimentalOdds: p.DetrimentalOdds,
		Size:            core.V(p.Width, p.Height),
		Velocity:        core.V(0, p.FallVelocity),
		SpeedFactor:     p.SpeedFactor,
		PadIncrement:    p.PadIncrement,
		Durations: [PowerUpCount]float64{
			PowerUpSpeed:           p.Durations.Speed,
			PowerUpSticky:          p.Durations.Sticky,
			PowerUpPassThrough:     p.Durations.PassThrough,
			PowerUpPadSizeIncrease: p.Durations.PadSizeIncrease,
			PowerUpConfuse:         p.Durations.Confuse,
			PowerUpChaos:           p.Durations.Chaos,
		},
	}
}

// CurrentLevel returns the selected level, or nil when none are loaded.
func (g *Game) CurrentLevel() *Level {
	if g.Level < 0 || g.Level >= len(g.levels) {
		return nil
	}
	return &g.levels[g.Level]
}

// LevelCount returns the number of levels.
func (g *Game) LevelCount() int { return len(g.levels) }

// Paddle returns the player paddle.
func (g *Game) Paddle() *Entity { return &g.paddle }

// Ball returns the ball.
func (g *Game) Ball() *Ball { return g.ball }

// PowerUps returns the power-up registry.
func (g *Game) PowerUps() *PowerUpRegistry { return g.powerups }

// Particles returns the particle pool.
func (g *Game) Particles() *ParticlePool { return g.particles }

// Effects returns the post-processing flags.
func (g *Game) Effects() *Effects { return &g.fx }

// Ticks returns the number of updates since Init.
func (g *Game) Ticks() uint64 { return g.ticks }

// Clock returns the accumulated game time in seconds.
func (g *Game) Clock() float64 { return g.clk }

// Runtime returns the world size and timing the game runs with.
func (g *Game) Runtime() core.RuntimeConfig { return g.runtime }
