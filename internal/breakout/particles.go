package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Particle is one trail particle. Life <= 0 means the slot is free.
type Particle struct {
	Position core.Vec2
	Velocity core.Vec2
	Color    core.RGBA
	Life     float64
}

// ParticleConfig tunes the trail emitted behind the ball.
type ParticleConfig struct {
	Capacity       int
	PerFrame       int
	Life           float64
	FadeRate       float64 // Alpha lost per second
	VelocityFactor float64 // Fraction of the emitter velocity inherited
	Scale          float64 // Quad edge length when drawn
}

// DefaultParticleConfig returns the stock trail settings.
func DefaultParticleConfig() ParticleConfig {
	return ParticleConfig{
		Capacity:       500,
		PerFrame:       2,
		Life:           1.0,
		FadeRate:       2.5,
		VelocityFactor: 0.1,
		Scale:          10,
	}
}

// ParticlePool is a fixed set of particles recycled in place.
type ParticlePool struct {
	cfg       ParticleConfig
	particles []Particle
	lastUsed  int
}

// NewParticlePool allocates every particle up front, all dead.
func NewParticlePool(cfg ParticleConfig) *ParticlePool {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultParticleConfig().Capacity
	}
	return &ParticlePool{
		cfg:       cfg,
		particles: make([]Particle, cfg.Capacity),
	}
}

// Update respawns spawnCount particles at the emitter and advances every
// live one: it moves against its velocity so the trail lags, and fades.
func (p *ParticlePool) Update(dt float64, emitter *Entity, spawnCount int, offset core.Vec2, rng *RNG) {
	for range spawnCount {
		p.respawn(&p.particles[p.firstUnused()], emitter, offset, rng)
	}

	for i := range p.particles {
		pt := &p.particles[i]
		pt.Life -= dt
		if pt.Life > 0 {
			pt.Position = pt.Position.Sub(pt.Velocity.Scale(dt))
			pt.Color.A -= dt * p.cfg.FadeRate
		}
	}
}

// firstUnused scans for a dead particle starting after the last reused
// slot and wrapping around. When every particle is alive slot 0 is reused.
func (p *ParticlePool) firstUnused() int {
	n := len(p.particles)
	for i := 1; i <= n; i++ {
		idx := (p.lastUsed + i) % n
		if p.particles[idx].Life <= 0 {
			p.lastUsed = idx
			return idx
		}
	}
	p.lastUsed = 0
	return 0
}

func (p *ParticlePool) respawn(pt *Particle, emitter *Entity, offset core.Vec2, rng *RNG) {
	jitter := float64(rng.Intn(100)-50) / 10.0
	gray := 0.5 + float64(rng.Intn(100))/100.0

	pt.Position = emitter.Position.AddScalar(jitter).Add(offset)
	pt.Color = core.RGBA{R: gray, G: gray, B: gray, A: 1}
	pt.Life = p.cfg.Life
	pt.Velocity = emitter.Velocity.Scale(p.cfg.VelocityFactor)
}

// Alive returns the number of live particles.
func (p *ParticlePool) Alive() int {
	n := 0
	for i := range p.particles {
		if p.particles[i].Life > 0 {
			n++
		}
	}
	return n
}

// Cap returns the pool capacity.
func (p *ParticlePool) Cap() int {
	return len(p.particles)
}

// Particles exposes the backing slice for snapshots and renderers.
func (p *ParticlePool) Particles() []Particle {
	return p.particles
}

// Reset kills every particle.
func (p *ParticlePool) Reset() {
	for i := range p.particles {
		p.particles[i] = Particle{}
	}
	p.lastUsed = 0
}

// Draw renders every live particle.
func (p *ParticlePool) Draw(r Renderer) {
	for i := range p.particles {
		if pt := &p.particles[i]; pt.Life > 0 {
			r.DrawParticle(pt.Position, p.cfg.Scale, pt.Color)
		}
	}
}
