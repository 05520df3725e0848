package tui

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// spriteGlyphs picks the rune used to fill a sprite's cells.
// Sprites with no glyph are not drawn.
var spriteGlyphs = [breakout.SpriteCount]rune{
	breakout.SpriteBlock:              '▓',
	breakout.SpriteBlockSolid:         '█',
	breakout.SpritePaddle:             '▀',
	breakout.SpriteBall:               '●',
	breakout.SpriteParticle:           '·',
	breakout.SpritePowerUpSpeed:       'S',
	breakout.SpritePowerUpSticky:      'G',
	breakout.SpritePowerUpPassThrough: 'P',
	breakout.SpritePowerUpIncrease:    '+',
	breakout.SpritePowerUpConfuse:     'C',
	breakout.SpritePowerUpChaos:       'X',
}

// ScreenRenderer draws the world into a character screen. World
// coordinates are scaled to cells; tints are mapped to the nearest
// terminal color. Post-processing is applied to the cells in Composite,
// before the text overlays are drawn.
type ScreenRenderer struct {
	screen *core.Screen
	world  core.Vec2
}

// NewScreenRenderer creates a renderer for a world of the given size.
func NewScreenRenderer(screen *core.Screen, worldW, worldH float64) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, world: core.V(worldW, worldH)}
}

// Screen returns the target buffer.
func (r *ScreenRenderer) Screen() *core.Screen { return r.screen }

func (r *ScreenRenderer) scale() (sx, sy float64) {
	if r.world.X <= 0 || r.world.Y <= 0 {
		return 0, 0
	}
	return float64(r.screen.Width()) / r.world.X, float64(r.screen.Height()) / r.world.Y
}

// cellRect maps a world rectangle to a cell rectangle at least one cell in
// each direction.
func (r *ScreenRenderer) cellRect(pos, size core.Vec2) core.Rect {
	sx, sy := r.scale()
	x0 := int(math.Round(pos.X * sx))
	y0 := int(math.Round(pos.Y * sy))
	x1 := int(math.Round((pos.X + size.X) * sx))
	y1 := int(math.Round((pos.Y + size.Y) * sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func (r *ScreenRenderer) cell(pos core.Vec2) (int, int) {
	sx, sy := r.scale()
	return int(math.Floor(pos.X * sx)), int(math.Floor(pos.Y * sy))
}

// DrawSprite fills the sprite's cells with its glyph.
func (r *ScreenRenderer) DrawSprite(s breakout.Sprite, pos, size core.Vec2, _ float64, color core.RGB) {
	if s <= breakout.SpriteNone || s >= breakout.SpriteCount {
		return
	}
	glyph := spriteGlyphs[s]
	if glyph == 0 {
		return
	}
	r.screen.FillRect(r.cellRect(pos, size), glyph, core.Nearest(color))
}

// DrawParticle plots a single dot; faded particles turn gray.
func (r *ScreenRenderer) DrawParticle(pos core.Vec2, scale float64, color core.RGBA) {
	if color.A <= 0 {
		return
	}
	x, y := r.cell(pos.AddScalar(scale / 2))
	if r.screen.Get(x, y) != ' ' {
		return
	}
	c := core.Nearest(color.RGB())
	if color.A < 0.5 {
		c = core.ColorGray
	}
	r.screen.Set(x, y, spriteGlyphs[breakout.SpriteParticle], c)
}

// DrawText writes text with its first rune at the cell containing pos.
func (r *ScreenRenderer) DrawText(text string, pos core.Vec2, _ float64, color core.RGB) {
	x, y := r.cell(pos)
	r.screen.Print(x, y, text, core.Nearest(color))
}

// BeginRender clears the screen.
func (r *ScreenRenderer) BeginRender() {
	r.screen.Clear()
}

// EndRender is a no-op: the screen is the scene buffer.
func (r *ScreenRenderer) EndRender() {}

// Composite applies the effects to the drawn cells: confuse turns the
// scene upside down with inverted colors, chaos cycles colors over time
// and shake offsets the scene by one column.
func (r *ScreenRenderer) Composite(fx breakout.Effects, t float64) {
	dx := 0
	if fx.Shake {
		dx = 1
		if int(t*60)%2 == 1 {
			dx = -1
		}
	}
	r.screen.Transform(fx.Confuse, dx, 0)

	switch {
	case fx.Confuse:
		r.screen.Recolor(func(_, _ int, c core.Color) core.Color { return c.Inverted() })
	case fx.Chaos:
		phase := int(t * 8)
		r.screen.Recolor(func(x, y int, c core.Color) core.Color { return c.Rotated(phase + (x+y)/4) })
	}
}

var _ breakout.Renderer = (*ScreenRenderer)(nil)
