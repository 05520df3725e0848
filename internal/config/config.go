// Package config provides YAML-based game configuration loading and
// difficulty presets for Breakout.
package config

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Ball      BallConfig      `yaml:"ball"`
	Particles ParticlesConfig `yaml:"particles"`
	PowerUps  PowerUpsConfig  `yaml:"powerups"`
	Effects   EffectsConfig   `yaml:"effects"`
}

// WindowConfig defines the world size in units.
type WindowConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GameplayConfig defines rules that are not tied to one entity.
type GameplayConfig struct {
	Lives            int     `yaml:"lives"`
	LevelHeightRatio float64 `yaml:"level_height_ratio"` // Share of the window used by bricks
	BrickPoints      int     `yaml:"brick_points"`
}

// PaddleConfig defines the player paddle.
type PaddleConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Velocity float64 `yaml:"velocity"` // Units per second
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius         float64 `yaml:"radius"`
	VelocityX      float64 `yaml:"velocity_x"`
	VelocityY      float64 `yaml:"velocity_y"`
	BounceStrength float64 `yaml:"bounce_strength"` // Paddle deflection factor
}

// ParticlesConfig defines the ball trail.
type ParticlesConfig struct {
	Capacity       int     `yaml:"capacity"`
	PerFrame       int     `yaml:"per_frame"`
	Life           float64 `yaml:"life"`
	FadeRate       float64 `yaml:"fade_rate"`
	VelocityFactor float64 `yaml:"velocity_factor"`
	Scale          float64 `yaml:"scale"`
}

// PowerUpsConfig defines power-up spawning and effects.
type PowerUpsConfig struct {
	BeneficialOdds  int             `yaml:"beneficial_odds"`  // One in N
	DetrimentalOdds int             `yaml:"detrimental_odds"` // One in N
	Width           float64         `yaml:"width"`
	Height          float64         `yaml:"height"`
	FallVelocity    float64         `yaml:"fall_velocity"`
	SpeedFactor     float64         `yaml:"speed_factor"`
	PadIncrement    float64         `yaml:"pad_increment"`
	Durations       DurationsConfig `yaml:"durations"`
}

// DurationsConfig holds per-type power-up durations in seconds.
// Zero means the effect lasts until the player is reset.
type DurationsConfig struct {
	Speed           float64 `yaml:"speed"`
	Sticky          float64 `yaml:"sticky"`
	PassThrough     float64 `yaml:"pass_through"`
	PadSizeIncrease float64 `yaml:"pad_size_increase"`
	Confuse         float64 `yaml:"confuse"`
	Chaos           float64 `yaml:"chaos"`
}

// EffectsConfig defines post-processing timings.
type EffectsConfig struct {
	ShakeDuration float64 `yaml:"shake_duration"`
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
		},
		Gameplay: GameplayConfig{
			Lives:            3,
			LevelHeightRatio: 0.5,
			BrickPoints:      10,
		},
		Paddle: PaddleConfig{
			Width:    100,
			Height:   20,
			Velocity: 500,
		},
		Ball: BallConfig{
			Radius:         12.5,
			VelocityX:      100,
			VelocityY:      -350,
			BounceStrength: 2.0,
		},
		Particles: ParticlesConfig{
			Capacity:       500,
			PerFrame:       2,
			Life:           1.0,
			FadeRate:       2.5,
			VelocityFactor: 0.1,
			Scale:          10,
		},
		PowerUps: PowerUpsConfig{
			BeneficialOdds:  75,
			DetrimentalOdds: 15,
			Width:           60,
			Height:          20,
			FallVelocity:    150,
			SpeedFactor:     1.2,
			PadIncrement:    50,
			Durations: DurationsConfig{
				Speed:           0,
				Sticky:          20,
				PassThrough:     10,
				PadSizeIncrease: 0,
				Confuse:         15,
				Chaos:           15,
			},
		},
		Effects: EffectsConfig{
			ShakeDuration: 0.05,
		},
	}
}
