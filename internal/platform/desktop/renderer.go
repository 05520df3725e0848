package desktop

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Post-processing strengths, in fractions of the window size.
const (
	shakeStrength = 0.01
	chaosStrength = 0.03
)

// The debug font is 6x16 pixels; scale 1 text is drawn at twice that.
const (
	textScale  = 2.0
	textHeight = 16
)

// Renderer draws the scene into an off-screen image and composites it
// onto the window with the post-processing effects.
type Renderer struct {
	width, height int
	scene         *ebiten.Image
	text          *ebiten.Image
	target        *ebiten.Image
	sprites       spriteCache
	logger        *log.Logger
}

// NewRenderer creates a renderer for a world of the given size. A world
// that cannot back an image is logged and leaves the renderer drawing
// nothing.
func NewRenderer(width, height float64, logger *log.Logger) *Renderer {
	r := &Renderer{width: int(width), height: int(height), logger: logger}
	if r.width <= 0 || r.height <= 0 {
		logger.Error("cannot allocate scene buffer", "width", width, "height", height)
		return r
	}
	r.scene = ebiten.NewImage(r.width, r.height)
	r.text = ebiten.NewImage(r.width, textHeight)
	return r
}

// SetTarget sets the image Composite and DrawText draw onto.
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

func (r *Renderer) ready() bool {
	return r.scene != nil && r.target != nil
}

// DrawSprite draws a tinted, rotated sprite into the scene.
func (r *Renderer) DrawSprite(s breakout.Sprite, pos, size core.Vec2, rotate float64, c core.RGB) {
	img := r.sprites.get(s)
	if img == nil || r.scene == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size.X/spriteSize, size.Y/spriteSize)
	if rotate != 0 {
		op.GeoM.Translate(-size.X/2, -size.Y/2)
		op.GeoM.Rotate(rotate * math.Pi / 180)
		op.GeoM.Translate(size.X/2, size.Y/2)
	}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), 1)
	op.Filter = ebiten.FilterLinear
	r.scene.DrawImage(img, op)
}

// DrawParticle draws an additive particle quad into the scene.
func (r *Renderer) DrawParticle(pos core.Vec2, scale float64, c core.RGBA) {
	img := r.sprites.get(breakout.SpriteParticle)
	if r.scene == nil || c.A <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale/spriteSize, scale/spriteSize)
	op.GeoM.Translate(pos.X, pos.Y)
	a := float32(core.ClampF(c.A, 0, 1))
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	op.Blend = ebiten.BlendLighter
	r.scene.DrawImage(img, op)
}

// DrawText prints text onto the target, above the composited scene.
func (r *Renderer) DrawText(text string, pos core.Vec2, scale float64, c core.RGB) {
	if !r.ready() {
		return
	}
	r.text.Clear()
	ebitenutil.DebugPrintAt(r.text, text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale*textScale, scale*textScale)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), 1)
	r.target.DrawImage(r.text, op)
}

// BeginRender clears the scene.
func (r *Renderer) BeginRender() {
	if r.scene != nil {
		r.scene.Clear()
	}
}

// EndRender is a no-op: the scene is presented by Composite.
func (r *Renderer) EndRender() {}

// Composite draws the scene onto the target. Shake jitters the scene,
// confuse turns it upside down with inverted colors and chaos spins the
// hue while the scene circles around its rest position.
func (r *Renderer) Composite(fx breakout.Effects, t float64) {
	if !r.ready() {
		return
	}
	w, h := float64(r.width), float64(r.height)

	op := &colorm.DrawImageOptions{}
	var cm colorm.ColorM

	if fx.Confuse {
		op.GeoM.Scale(-1, -1)
		op.GeoM.Translate(w, h)
		cm.Scale(-1, -1, -1, 1)
		cm.Translate(1, 1, 1, 0)
	}
	if fx.Chaos {
		op.GeoM.Translate(math.Sin(t)*chaosStrength*w, math.Cos(t)*chaosStrength*h)
		cm.RotateHue(t * 2)
	}
	if fx.Shake {
		op.GeoM.Translate(math.Cos(t*10)*shakeStrength*w, math.Cos(t*15)*shakeStrength*h)
	}

	colorm.DrawImage(r.target, r.scene, cm, op)
}

var _ breakout.Renderer = (*Renderer)(nil)
