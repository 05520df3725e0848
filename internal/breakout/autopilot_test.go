package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestAutopilotStartsRun(t *testing.T) {
	g := newTestGame(t)

	g.Autopilot()
	g.ProcessInput(testDT)
	assert.Equal(t, StateActive, g.State)

	g.Autopilot()
	assert.True(t, g.Keys.IsDown(core.KeyLaunch))
	assert.False(t, g.Keys.IsDown(core.KeyConfirm))
}

func TestAutopilotSteersTowardBall(t *testing.T) {
	g := newTestGame(t)
	startGame(t, g)

	paddle := g.Paddle().Center()
	freeBall(g, paddle.X-100, 400, core.V(0, 100))
	g.Autopilot()
	assert.True(t, g.Keys.IsDown(core.KeyLeft))
	assert.False(t, g.Keys.IsDown(core.KeyRight))

	freeBall(g, paddle.X+100, 400, core.V(0, 100))
	g.Autopilot()
	assert.True(t, g.Keys.IsDown(core.KeyRight))
	assert.False(t, g.Keys.IsDown(core.KeyLeft))

	freeBall(g, paddle.X+5, 400, core.V(0, 100))
	g.Autopilot()
	assert.False(t, g.Keys.IsDown(core.KeyRight))
	assert.False(t, g.Keys.IsDown(core.KeyLeft))
}

func TestAutopilotScores(t *testing.T) {
	g := newTestGame(t)
	best := 0
	for range 600 {
		autoplay(g, 1)
		best = max(best, g.Score)
	}
	assert.Positive(t, best)
}
