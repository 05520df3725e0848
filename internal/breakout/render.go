package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Renderer is the drawing collaborator. Implementations own their texture
// cache, shaders and off-screen buffers; the core only names sprites.
type Renderer interface {
	// DrawSprite draws a textured quad at pos with the given size,
	// rotation in degrees and tint.
	DrawSprite(s Sprite, pos, size core.Vec2, rotate float64, color core.RGB)

	// DrawParticle draws a particle quad at pos with edge length scale.
	DrawParticle(pos core.Vec2, scale float64, color core.RGBA)

	// DrawText draws a line of text with its top-left corner at pos.
	DrawText(text string, pos core.Vec2, scale float64, color core.RGB)

	// BeginRender starts drawing the scene into the post-processing buffer.
	BeginRender()

	// EndRender finishes the scene.
	EndRender()

	// Composite presents the scene with the post-processing effects
	// applied. t is the accumulated game time in seconds.
	Composite(fx Effects, t float64)
}

// Sound names an audio cue.
type Sound int

const (
	SoundMusic Sound = iota
	SoundBrick
	SoundSolid
	SoundPowerUp
	SoundPaddle
)

// String returns the resource name of the sound.
func (s Sound) String() string {
	switch s {
	case SoundMusic:
		return "breakout"
	case SoundBrick:
		return "bleep"
	case SoundSolid:
		return "solid"
	case SoundPowerUp:
		return "powerup"
	case SoundPaddle:
		return "paddle"
	default:
		return "unknown"
	}
}

// Audio is the optional fire-and-forget sound collaborator.
type Audio interface {
	Play(s Sound)
	Loop(s Sound)
	Stop()
}

type nopRenderer struct{}

func (nopRenderer) DrawSprite(Sprite, core.Vec2, core.Vec2, float64, core.RGB) {}
func (nopRenderer) DrawParticle(core.Vec2, float64, core.RGBA)                 {}
func (nopRenderer) DrawText(string, core.Vec2, float64, core.RGB)              {}
func (nopRenderer) BeginRender()                                               {}
func (nopRenderer) EndRender()                                                 {}
func (nopRenderer) Composite(Effects, float64)                                 {}

type nopAudio struct{}

func (nopAudio) Play(Sound) {}
func (nopAudio) Loop(Sound) {}
func (nopAudio) Stop()      {}
