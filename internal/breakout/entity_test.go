package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestStuckBallDoesNotMove(t *testing.T) {
	b := NewBall(core.V(100, 200), 12.5, core.V(100, -350))
	is := assert.New(t)

	for _, dt := range []float64{0, 0.016, 1, 100} {
		pos := b.Move(dt, 800)
		is.Equal(core.V(100, 200), pos)
	}
	assert.Equal(t, core.V(100, -350), b.Velocity)
}

func TestBallBouncesOffLeftEdge(t *testing.T) {
	b := NewBall(core.V(-1, 100), 10, core.V(-100, 0))
	b.Stuck = false

	b.Move(0.01, 800)

	assert.InDelta(t, 0.0, b.Position.X, 1e-9)
	assert.Greater(t, b.Velocity.X, 0.0)
}

func TestBallBouncesOffRightAndTopEdges(t *testing.T) {
	b := NewBall(core.V(780, 1), 12.5, core.V(100, -200))
	b.Stuck = false

	b.Move(0.01, 800)

	assert.InDelta(t, 800-25.0, b.Position.X, 1e-9)
	assert.InDelta(t, 0.0, b.Position.Y, 1e-9)
	assert.Equal(t, core.V(-100, 200), b.Velocity)
}

func TestBallFallsThroughBottom(t *testing.T) {
	b := NewBall(core.V(400, 590), 12.5, core.V(0, 350))
	b.Stuck = false

	b.Move(0.1, 800)

	assert.InDelta(t, 625.0, b.Position.Y, 1e-9)
	assert.Equal(t, core.V(0, 350), b.Velocity)
}

func TestBallReset(t *testing.T) {
	b := NewBall(core.V(0, 0), 12.5, core.V(1, 1))
	b.Stuck = false
	b.Sticky = true
	b.PassThrough = true
	b.Color = passThroughTint

	b.Reset(core.V(10, 20), core.V(100, -350))

	assert.True(t, b.Stuck)
	assert.False(t, b.Sticky)
	assert.False(t, b.PassThrough)
	assert.Equal(t, core.White, b.Color)
	assert.Equal(t, core.V(10, 20), b.Position)
	assert.Equal(t, core.V(100, -350), b.Velocity)
}

func TestPowerUpTypeTables(t *testing.T) {
	for pt := range PowerUpCount {
		assert.NotEqual(t, "unknown", pt.String())
		assert.NotEqual(t, SpriteNone, pt.Sprite())
	}
	assert.True(t, PowerUpSticky.Beneficial())
	assert.False(t, PowerUpChaos.Beneficial())
	assert.False(t, PowerUpConfuse.Beneficial())
}
