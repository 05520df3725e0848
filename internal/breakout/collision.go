package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Direction classifies which side of a box a circle hit, expressed as the
// compass vector closest to the penetration vector.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the direction lies on the x axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// compass holds the unit vector of each direction in y-down world space.
var compass = [...]core.Vec2{
	DirUp:    {X: 0, Y: -1},
	DirRight: {X: 1, Y: 0},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
}

// Collision is the result of a circle/box test. Side and Penetration are
// only meaningful when Hit is true.
type Collision struct {
	Hit         bool
	Side        Direction
	Penetration core.Vec2 // From the circle center to the closest box point
}

// CheckCollision reports whether two axis-aligned boxes overlap.
// Touching edges count as a collision.
func CheckCollision(a, b *Entity) bool {
	overlapX := a.Position.X+a.Size.X >= b.Position.X &&
		b.Position.X+b.Size.X >= a.Position.X
	overlapY := a.Position.Y+a.Size.Y >= b.Position.Y &&
		b.Position.Y+b.Size.Y >= a.Position.Y
	return overlapX && overlapY
}

// CheckBallCollision tests a ball against a box using the point of the box
// closest to the ball's center.
func CheckBallCollision(ball *Ball, box *Entity) Collision {
	center := ball.Position.AddScalar(ball.Radius)

	half := box.Size.Scale(0.5)
	boxCenter := box.Position.Add(half)

	difference := center.Sub(boxCenter)
	clamped := difference.Clamp(half.Neg(), half)
	closest := boxCenter.Add(clamped)

	difference = closest.Sub(center)
	if difference.Len() > ball.Radius {
		return Collision{}
	}
	return Collision{Hit: true, Side: VectorDirection(difference), Penetration: difference}
}

// VectorDirection returns the compass direction with the largest dot
// product against the normalized target. Ties keep the earlier direction
// in up, right, down, left order; a zero vector maps to up.
func VectorDirection(target core.Vec2) Direction {
	n := target.Normalize()
	best := DirUp
	maxDot := 0.0
	for d, v := range compass {
		if dot := n.Dot(v); dot > maxDot {
			maxDot = dot
			best = Direction(d)
		}
	}
	return best
}

// resolveBrickHit inverts the ball's velocity on the hit axis and pushes it
// out of the brick by the penetration depth. The penetration vector points
// from the ball toward the brick, so the push goes against its direction.
func resolveBrickHit(ball *Ball, c Collision) {
	if c.Side.Horizontal() {
		ball.Velocity.X = -ball.Velocity.X
		depth := ball.Radius - math.Abs(c.Penetration.X)
		if c.Side == DirLeft {
			ball.Position.X += depth
		} else {
			ball.Position.X -= depth
		}
		return
	}

	ball.Velocity.Y = -ball.Velocity.Y
	depth := ball.Radius - math.Abs(c.Penetration.Y)
	if c.Side == DirUp {
		ball.Position.Y += depth
	} else {
		ball.Position.Y -= depth
	}
}

// bouncePaddle redirects the ball by where it struck the paddle: the
// further from the center, the flatter the outgoing angle. Speed is kept.
func bouncePaddle(ball *Ball, paddle *Entity, baseVelocityX, strength float64) {
	half := paddle.Size.X / 2
	distance := (ball.Position.X + ball.Radius) - (paddle.Position.X + half)
	percentage := distance / half

	speed := ball.Velocity.Len()
	ball.Velocity.X = baseVelocityX * percentage * strength
	ball.Velocity.Y = -math.Abs(ball.Velocity.Y)
	ball.Velocity = ball.Velocity.Normalize().Scale(speed)

	ball.Stuck = ball.Sticky
}
