package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// autopilotDeadZone is how far the ball may drift from the paddle center
// before the autopilot steers.
const autopilotDeadZone = 10

// Autopilot writes the key state for the next step the way a simple
// player would: confirm through the menu and win screens, launch the
// ball and keep the paddle centered under it. Used by headless runs.
func (g *Game) Autopilot() {
	switch g.State {
	case StateMenu, StateWin:
		g.Keys.Release(core.KeyConfirm)
		g.Keys.Press(core.KeyConfirm)
	case StateActive:
		g.Keys.Release(core.KeyConfirm)
		g.Keys.Press(core.KeyLaunch)
		g.Keys.Release(core.KeyLeft)
		g.Keys.Release(core.KeyRight)

		ball := g.ball.Center()
		paddle := g.paddle.Center()
		switch {
		case ball.X < paddle.X-autopilotDeadZone:
			g.Keys.Press(core.KeyLeft)
		case ball.X > paddle.X+autopilotDeadZone:
			g.Keys.Press(core.KeyRight)
		}
	}
}
