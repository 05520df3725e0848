package breakout

import (
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot contains the complete simulation state for save/restore and
// determinism checks. Bricks hold only the destroyed flags of the current
// level; the layout itself is reloaded from the level source.
type Snapshot struct {
	Tick         uint64     `msgpack:"tick"`
	Clock        float64    `msgpack:"clock"`
	State        State      `msgpack:"state"`
	Level        int        `msgpack:"level"`
	Lives        int        `msgpack:"lives"`
	Score        int        `msgpack:"score"`
	Paddle       Entity     `msgpack:"paddle"`
	Ball         Ball       `msgpack:"ball"`
	Bricks       []bool     `msgpack:"bricks"`
	PowerUps     []PowerUp  `msgpack:"powerups"`
	Particles    []Particle `msgpack:"particles"`
	LastParticle int        `msgpack:"last_particle"`
	Effects      Effects    `msgpack:"effects"`
	RNGState     uint64     `msgpack:"rng"`
	RunStart     float64    `msgpack:"run_start"`
	RunBricks    int        `msgpack:"run_bricks"`
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.ticks,
		Clock:        g.clk,
		State:        g.State,
		Level:        g.Level,
		Lives:        g.Lives,
		Score:        g.Score,
		Paddle:       g.paddle,
		Ball:         *g.ball,
		PowerUps:     append([]PowerUp(nil), g.powerups.items...),
		Particles:    append([]Particle(nil), g.particles.particles...),
		LastParticle: g.particles.lastUsed,
		Effects:      g.fx,
		RNGState:     g.rng.State(),
		RunStart:     g.runStart,
		RunBricks:    g.runBricks,
	}

	if lvl := g.CurrentLevel(); lvl != nil {
		snap.Bricks = make([]bool, len(lvl.Bricks))
		for i := range lvl.Bricks {
			snap.Bricks[i] = lvl.Bricks[i].Destroyed
		}
	}
	return snap
}

// ApplySnapshot restores a state captured with Snapshot. The game must be
// initialized with the same levels and configuration. A rejected snapshot
// leaves the game untouched.
func (g *Game) ApplySnapshot(snap Snapshot) error {
	if snap.Level < 0 || snap.Level >= len(g.levels) {
		return fmt.Errorf("breakout: snapshot level %d out of range (have %d)", snap.Level, len(g.levels))
	}
	if len(snap.Particles) != g.particles.Cap() {
		return fmt.Errorf("breakout: snapshot has %d particles, pool holds %d", len(snap.Particles), g.particles.Cap())
	}

	lvl := g.buildLevel(snap.Level)
	if len(snap.Bricks) != len(lvl.Bricks) {
		return fmt.Errorf("breakout: snapshot has %d bricks, level %q has %d", len(snap.Bricks), lvl.Name, len(lvl.Bricks))
	}
	for i, destroyed := range snap.Bricks {
		lvl.Bricks[i].Destroyed = destroyed
	}

	g.Level = snap.Level
	g.levels[g.Level] = lvl
	g.ticks = snap.Tick
	g.clk = snap.Clock
	g.State = snap.State
	g.Lives = snap.Lives
	g.Score = snap.Score
	g.paddle = snap.Paddle
	*g.ball = snap.Ball
	g.powerups.items = append(g.powerups.items[:0], snap.PowerUps...)
	copy(g.particles.particles, snap.Particles)
	g.particles.lastUsed = snap.LastParticle
	g.fx = snap.Effects
	g.rng.SetState(snap.RNGState)
	g.runStart = snap.RunStart
	g.runBricks = snap.RunBricks
	return nil
}

// Encode serializes the snapshot with msgpack.
func (snap Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("breakout: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("breakout: decode snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.Clock)
	h = h*31 + uint64(snap.State) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = hashEntity(h, &snap.Paddle)
	h = hashEntity(h, &snap.Ball.Entity)
	h = h*31 + hashBool(snap.Ball.Stuck, snap.Ball.Sticky, snap.Ball.PassThrough)

	for _, destroyed := range snap.Bricks {
		h = h*31 + hashBool(destroyed)
	}

	for i := range snap.PowerUps {
		pu := &snap.PowerUps[i]
		h = hashEntity(h, &pu.Entity)
		h = h*31 + uint64(pu.Type) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(pu.Duration)
		h = h*31 + hashBool(pu.Activated)
	}

	for i := range snap.Particles {
		p := &snap.Particles[i]
		h = h*31 + math.Float64bits(p.Position.X)
		h = h*31 + math.Float64bits(p.Position.Y)
		h = h*31 + math.Float64bits(p.Life)
	}

	h = h*31 + hashBool(snap.Effects.Shake, snap.Effects.Confuse, snap.Effects.Chaos)
	h = h*31 + snap.RNGState

	return h
}

func hashEntity(h uint64, e *Entity) uint64 {
	h = h*31 + math.Float64bits(e.Position.X)
	h = h*31 + math.Float64bits(e.Position.Y)
	h = h*31 + math.Float64bits(e.Size.X)
	h = h*31 + math.Float64bits(e.Size.Y)
	h = h*31 + math.Float64bits(e.Velocity.X)
	h = h*31 + math.Float64bits(e.Velocity.Y)
	return h*31 + hashBool(e.Solid, e.Destroyed)
}

func hashBool(flags ...bool) uint64 {
	var v uint64
	for i, f := range flags {
		if f {
			v |= 1 << i
		}
	}
	return v
}
