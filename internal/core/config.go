package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this for the world size and for deterministic simulation.
type RuntimeConfig struct {
	Width    float64 // World width in units (window pixels on desktop)
	Height   float64 // World height in units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:    800,
		Height:   600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Step returns the fixed timestep in seconds for the configured tick rate.
func (c RuntimeConfig) Step() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}
