// Package breakout implements the Breakout simulation core: the level model,
// collision engine, particle pool, power-up registry and the game controller
// that ties them together. Rendering, audio and input are reached through
// narrow interfaces so the core runs identically in a terminal, a desktop
// window or headless.
package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Sprite identifies the texture a renderer should use for an entity.
type Sprite int

const (
	SpriteNone Sprite = iota
	SpriteBackground
	SpriteBlock
	SpriteBlockSolid
	SpritePaddle
	SpriteBall
	SpriteParticle
	SpritePowerUpSpeed
	SpritePowerUpSticky
	SpritePowerUpPassThrough
	SpritePowerUpIncrease
	SpritePowerUpConfuse
	SpritePowerUpChaos
	SpriteCount // Sentinel for array sizing
)

// String returns the resource name of the sprite.
func (s Sprite) String() string {
	switch s {
	case SpriteBackground:
		return "background"
	case SpriteBlock:
		return "block"
	case SpriteBlockSolid:
		return "block_solid"
	case SpritePaddle:
		return "paddle"
	case SpriteBall:
		return "face"
	case SpriteParticle:
		return "particle"
	case SpritePowerUpSpeed:
		return "powerup_speed"
	case SpritePowerUpSticky:
		return "powerup_sticky"
	case SpritePowerUpPassThrough:
		return "powerup_passthrough"
	case SpritePowerUpIncrease:
		return "powerup_increase"
	case SpritePowerUpConfuse:
		return "powerup_confuse"
	case SpritePowerUpChaos:
		return "powerup_chaos"
	default:
		return "none"
	}
}

// Entity is the attribute set shared by every placed object.
// Position is the top-left corner.
type Entity struct {
	Position  core.Vec2
	Size      core.Vec2
	Velocity  core.Vec2
	Rotation  float64 // Degrees
	Color     core.RGB
	Sprite    Sprite
	Solid     bool // Indestructible
	Destroyed bool // Removed from play
}

// NewEntity creates a motionless entity.
func NewEntity(pos, size core.Vec2, sprite Sprite, color core.RGB) Entity {
	return Entity{
		Position: pos,
		Size:     size,
		Color:    color,
		Sprite:   sprite,
	}
}

// Center returns the center point of the entity's box.
func (e *Entity) Center() core.Vec2 {
	return e.Position.Add(e.Size.Scale(0.5))
}

// Draw hands the entity to the renderer.
func (e *Entity) Draw(r Renderer) {
	r.DrawSprite(e.Sprite, e.Position, e.Size, e.Rotation, e.Color)
}

// Ball is the circular entity. Its box is 2*Radius on each side.
type Ball struct {
	Entity
	Radius      float64
	Stuck       bool // Riding on the paddle
	Sticky      bool // Re-sticks on paddle contact
	PassThrough bool // Ignores solid-brick collision response
}

// NewBall creates a stuck ball at pos.
func NewBall(pos core.Vec2, radius float64, velocity core.Vec2) *Ball {
	b := &Ball{
		Entity: NewEntity(pos, core.V(radius*2, radius*2), SpriteBall, core.White),
		Radius: radius,
		Stuck:  true,
	}
	b.Velocity = velocity
	return b
}

// Move advances a free ball by velocity*dt and bounces it off the left,
// right and top window edges. The bottom edge is left open.
// Returns the new position.
func (b *Ball) Move(dt, windowWidth float64) core.Vec2 {
	if b.Stuck {
		return b.Position
	}

	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	if b.Position.X <= 0 {
		b.Velocity.X = -b.Velocity.X
		b.Position.X = 0
	} else if b.Position.X+b.Size.X >= windowWidth {
		b.Velocity.X = -b.Velocity.X
		b.Position.X = windowWidth - b.Size.X
	}
	if b.Position.Y <= 0 {
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y = 0
	}

	return b.Position
}

// Reset puts the ball back into its canonical stuck state.
func (b *Ball) Reset(pos, velocity core.Vec2) {
	b.Position = pos
	b.Velocity = velocity
	b.Color = core.White
	b.Stuck = true
	b.Sticky = false
	b.PassThrough = false
}

// PowerUpType is the closed set of power-up kinds.
type PowerUpType int

const (
	PowerUpSpeed PowerUpType = iota
	PowerUpSticky
	PowerUpPassThrough
	PowerUpPadSizeIncrease
	PowerUpConfuse
	PowerUpChaos
	PowerUpCount // Sentinel for counting types
)

// String returns the name of the power-up type.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpSpeed:
		return "speed"
	case PowerUpSticky:
		return "sticky"
	case PowerUpPassThrough:
		return "pass-through"
	case PowerUpPadSizeIncrease:
		return "pad-size-increase"
	case PowerUpConfuse:
		return "confuse"
	case PowerUpChaos:
		return "chaos"
	default:
		return "unknown"
	}
}

// Sprite returns the texture used for a falling power-up of this type.
func (t PowerUpType) Sprite() Sprite {
	switch t {
	case PowerUpSpeed:
		return SpritePowerUpSpeed
	case PowerUpSticky:
		return SpritePowerUpSticky
	case PowerUpPassThrough:
		return SpritePowerUpPassThrough
	case PowerUpPadSizeIncrease:
		return SpritePowerUpIncrease
	case PowerUpConfuse:
		return SpritePowerUpConfuse
	case PowerUpChaos:
		return SpritePowerUpChaos
	default:
		return SpriteNone
	}
}

// Color returns the tint of a falling power-up of this type.
func (t PowerUpType) Color() core.RGB {
	switch t {
	case PowerUpSpeed:
		return core.RGB{R: 0.5, G: 0.5, B: 1.0}
	case PowerUpSticky:
		return core.RGB{R: 1.0, G: 0.5, B: 1.0}
	case PowerUpPassThrough:
		return core.RGB{R: 0.5, G: 1.0, B: 0.5}
	case PowerUpPadSizeIncrease:
		return core.RGB{R: 1.0, G: 0.6, B: 0.4}
	case PowerUpConfuse:
		return core.RGB{R: 1.0, G: 0.3, B: 0.3}
	case PowerUpChaos:
		return core.RGB{R: 0.9, G: 0.25, B: 0.25}
	default:
		return core.White
	}
}

// Beneficial reports whether the type rolls at the beneficial odds.
func (t PowerUpType) Beneficial() bool {
	return t != PowerUpConfuse && t != PowerUpChaos
}

// PowerUp is a falling (and later active) power-up.
type PowerUp struct {
	Entity
	Type      PowerUpType
	Duration  float64 // Seconds remaining; 0 means until cleared
	Activated bool
}
