package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// PowerUpConfig contains power-up tuning.
type PowerUpConfig struct {
	BeneficialOdds  int // One in N per brick for speed/sticky/pass-through/pad-size
	DetrimentalOdds int // One in N per brick for confuse/chaos
	Size            core.Vec2
	Velocity        core.Vec2 // Fall velocity
	SpeedFactor     float64   // Ball velocity multiplier for speed
	PadIncrement    float64   // Paddle width gained per pad-size-increase
	Durations       [PowerUpCount]float64
}

// DefaultPowerUpConfig returns the stock power-up settings.
func DefaultPowerUpConfig() PowerUpConfig {
	return PowerUpConfig{
		BeneficialOdds:  75,
		DetrimentalOdds: 15,
		Size:            core.V(60, 20),
		Velocity:        core.V(0, 150),
		SpeedFactor:     1.2,
		PadIncrement:    50,
		Durations: [PowerUpCount]float64{
			PowerUpSpeed:           0,
			PowerUpSticky:          20,
			PowerUpPassThrough:     10,
			PowerUpPadSizeIncrease: 0,
			PowerUpConfuse:         15,
			PowerUpChaos:           15,
		},
	}
}

// Odds returns the one-in-N spawn chance for a type.
func (c PowerUpConfig) Odds(t PowerUpType) int {
	if t.Beneficial() {
		return c.BeneficialOdds
	}
	return c.DetrimentalOdds
}

// ShouldSpawn rolls a one-in-chance trial.
func ShouldSpawn(rng *RNG, chance int) bool {
	if chance <= 0 {
		return false
	}
	return rng.Intn(chance) == 0
}

// PowerUpRegistry holds falling and active power-ups.
type PowerUpRegistry struct {
	cfg   PowerUpConfig
	items []PowerUp
}

// NewPowerUpRegistry creates an empty registry.
func NewPowerUpRegistry(cfg PowerUpConfig) *PowerUpRegistry {
	return &PowerUpRegistry{
		cfg:   cfg,
		items: make([]PowerUp, 0, 8),
	}
}

// Config returns the registry configuration.
func (r *PowerUpRegistry) Config() PowerUpConfig {
	return r.cfg
}

// Spawn rolls every type independently for a destroyed brick and drops
// each winner from the brick's position. Returns the number spawned.
func (r *PowerUpRegistry) Spawn(brick *Entity, rng *RNG) int {
	n := 0
	for t := range PowerUpCount {
		if ShouldSpawn(rng, r.cfg.Odds(t)) {
			r.Add(t, brick.Position)
			n++
		}
	}
	return n
}

// Add drops a power-up of type t at pos.
func (r *PowerUpRegistry) Add(t PowerUpType, pos core.Vec2) {
	pu := PowerUp{
		Entity:   NewEntity(pos, r.cfg.Size, t.Sprite(), t.Color()),
		Type:     t,
		Duration: r.cfg.Durations[t],
	}
	pu.Velocity = r.cfg.Velocity
	r.items = append(r.items, pu)
}

// Collect destroys power-ups that fell past the bottom edge and activates
// those touching the paddle. Returns the types activated this call.
func (r *PowerUpRegistry) Collect(paddle *Entity, height float64) []PowerUpType {
	var collected []PowerUpType
	for i := range r.items {
		pu := &r.items[i]
		if pu.Destroyed {
			continue
		}
		if pu.Position.Y >= height {
			pu.Destroyed = true
		}
		if CheckCollision(paddle, &pu.Entity) {
			pu.Destroyed = true
			pu.Activated = true
			collected = append(collected, pu.Type)
		}
	}
	return collected
}

// Update moves every power-up and counts down active ones. Power-ups
// without a duration deactivate immediately and their effect stays until
// the player is reset. Returns the types whose effect should be reverted:
// an expiry is suppressed while another power-up of the same type is
// still active. Spent entries are pruned.
func (r *PowerUpRegistry) Update(dt float64) []PowerUpType {
	var expired []PowerUpType
	for i := range r.items {
		pu := &r.items[i]
		pu.Position = pu.Position.Add(pu.Velocity.Scale(dt))
		if !pu.Activated {
			continue
		}
		if pu.Duration <= 0 {
			pu.Activated = false
			continue
		}
		pu.Duration -= dt
		if pu.Duration <= 0 {
			pu.Activated = false
			if !r.IsActive(pu.Type) {
				expired = append(expired, pu.Type)
			}
		}
	}
	r.prune()
	return expired
}

// IsActive reports whether any power-up of type t is activated.
func (r *PowerUpRegistry) IsActive(t PowerUpType) bool {
	for i := range r.items {
		if r.items[i].Activated && r.items[i].Type == t {
			return true
		}
	}
	return false
}

func (r *PowerUpRegistry) prune() {
	kept := r.items[:0]
	for _, pu := range r.items {
		if pu.Destroyed && !pu.Activated {
			continue
		}
		kept = append(kept, pu)
	}
	clear(r.items[len(kept):])
	r.items = kept
}

// Items returns the power-ups currently tracked.
func (r *PowerUpRegistry) Items() []PowerUp {
	return r.items
}

// Len returns the number of tracked power-ups.
func (r *PowerUpRegistry) Len() int {
	return len(r.items)
}

// Reset drops every power-up.
func (r *PowerUpRegistry) Reset() {
	r.items = r.items[:0]
}

// Draw renders falling power-ups.
func (r *PowerUpRegistry) Draw(rd Renderer) {
	for i := range r.items {
		if !r.items[i].Destroyed {
			r.items[i].Draw(rd)
		}
	}
}
