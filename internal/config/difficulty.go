package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. An empty string selects
// no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 140
		cfg.Ball.VelocityX *= 0.8
		cfg.Ball.VelocityY *= 0.8
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 80
		cfg.Ball.VelocityX *= 1.25
		cfg.Ball.VelocityY *= 1.25
	}
}
