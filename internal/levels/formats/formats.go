// Package formats provides pluggable level file format parsers.
// Every format decodes into a Level holding a rectangular tile grid.
package formats

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

// FileLevel is the document shape shared by the YAML and TOML formats.
// Tiles may be given as a nested list or as text rows; rows win if both
// are present.
type FileLevel struct {
	ID    string   `yaml:"id" toml:"id"`
	Name  string   `yaml:"name" toml:"name"`
	Tiles [][]int  `yaml:"tiles" toml:"tiles"`
	Rows  []string `yaml:"rows" toml:"rows"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID    string
	Name  string
	Tiles [][]int
}

// ParseText parses the plain whitespace grid format.
func ParseText(data []byte) (Level, error) {
	grid, err := breakout.ParseGrid(bytes.NewReader(data))
	if err != nil {
		return Level{}, err
	}
	return Level{Tiles: grid}, nil
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var fl FileLevel
	if err := yaml.Unmarshal(data, &fl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return fl.level()
}

// ParseTOML parses a TOML level file.
func ParseTOML(data []byte) (Level, error) {
	var fl FileLevel
	if err := toml.Unmarshal(data, &fl); err != nil {
		return Level{}, fmt.Errorf("toml unmarshal: %w", err)
	}
	return fl.level()
}

func (fl FileLevel) level() (Level, error) {
	tiles := fl.Tiles
	if len(fl.Rows) > 0 {
		grid, err := breakout.ParseGrid(strings.NewReader(strings.Join(fl.Rows, "\n")))
		if err != nil {
			return Level{}, err
		}
		tiles = grid
	}

	if err := breakout.ValidateGrid(tiles); err != nil {
		return Level{}, err
	}
	for y, row := range tiles {
		for x, code := range row {
			if code < 0 {
				return Level{}, fmt.Errorf("tile (%d,%d) = %d: %w", x, y, code, breakout.ErrBadTile)
			}
		}
	}

	return Level{ID: fl.ID, Name: fl.Name, Tiles: tiles}, nil
}

// Parse routes data to the parser for a file extension.
func Parse(data []byte, ext string) (Level, error) {
	switch strings.ToLower(ext) {
	case ".lvl", ".txt":
		return ParseText(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".lvl", ".txt", ".yaml", ".yml", ".toml"}
}
