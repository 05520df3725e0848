package breakout

// RNG is a deterministic pseudo-random number generator (64-bit LCG).
// It is owned by the game so spawn rolls and particle jitter replay
// identically for a given seed.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
// The low bits of an LCG have short periods, so only the high half is used.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 32) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// State returns the internal state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}

// SetState restores a state captured with State.
func (r *RNG) SetState(s uint64) {
	r.state = s
}
