package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/breakout.yaml -> ./configs/breakout.yaml -> embedded default
// Fields missing from a file keep their default values.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath) //#nosec G304 -- config path is user-provided
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "breakout.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file on top of the defaults.
func tryLoad(path string) (BreakoutConfig, bool) {
	data, err := os.ReadFile(path) //#nosec G304 -- fixed search path
	if err != nil {
		return BreakoutConfig{}, false
	}
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", filename)
}
