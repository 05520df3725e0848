package breakout

// Effects holds the post-processing flags applied when the scene is
// composited. Confuse and Chaos are never both set by gameplay.
type Effects struct {
	Shake   bool
	Confuse bool
	Chaos   bool

	ShakeTime float64 // Seconds of shake remaining
}

// StartShake enables the shake effect for d seconds.
func (fx *Effects) StartShake(d float64) {
	fx.Shake = true
	fx.ShakeTime = d
}

// Tick counts down the shake timer and clears Shake once it runs out.
func (fx *Effects) Tick(dt float64) {
	if fx.ShakeTime <= 0 {
		return
	}
	fx.ShakeTime -= dt
	if fx.ShakeTime <= 0 {
		fx.Shake = false
	}
}
