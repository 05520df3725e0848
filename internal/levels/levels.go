// Package levels provides level loading for Breakout: the four built-in
// levels embedded in the binary and level packs read from a directory in
// the plain grid, YAML or TOML formats.
package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/levels/formats"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

//go:embed builtin/*.lvl
var builtinFS embed.FS

// Builtin level IDs in menu order.
var builtinIDs = []string{"one", "two", "three", "four"}

func init() {
	for i, id := range builtinIDs {
		registry.Register(id, i+1, func() breakout.LevelSource {
			return builtin(id)
		})
	}
}

// Level is a level definition. It implements breakout.LevelSource.
type Level struct {
	ID       string
	Title    string
	Tiles    [][]int
	FilePath string
	err      error // Deferred parse error, reported by Grid
}

// Name returns the display name, falling back to the ID.
func (l *Level) Name() string {
	if l.Title != "" {
		return l.Title
	}
	return l.ID
}

// Grid returns a copy of the tile grid.
func (l *Level) Grid() ([][]int, error) {
	if l.err != nil {
		return nil, l.err
	}
	grid := make([][]int, len(l.Tiles))
	for i, row := range l.Tiles {
		grid[i] = append([]int(nil), row...)
	}
	return grid, nil
}

// builtin reads an embedded level. Errors surface through Grid so the game
// can log them and carry on with an empty level.
func builtin(id string) *Level {
	lvl := &Level{ID: id, Title: id, FilePath: "builtin/" + id + ".lvl"}
	data, err := builtinFS.ReadFile(lvl.FilePath)
	if err != nil {
		lvl.err = fmt.Errorf("levels: %s: %w", id, err)
		return lvl
	}
	parsed, err := formats.ParseText(data)
	if err != nil {
		lvl.err = fmt.Errorf("levels: %s: %w", id, err)
		return lvl
	}
	lvl.Tiles = parsed.Tiles
	return lvl
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped and returned in skipped.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() (levels []*Level, skipped []error, err error) {
	err = filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			skipped = append(skipped, err)
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, skipped, nil
}

// LoadFile loads a single level file. The ID defaults to the file name.
func (l *Loader) LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- level path comes from the user
	if err != nil {
		return nil, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	ext := filepath.Ext(path)
	parsed, err := formats.Parse(data, ext)
	if err != nil {
		return nil, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), ext)
	}
	return &Level{
		ID:       id,
		Title:    parsed.Name,
		Tiles:    parsed.Tiles,
		FilePath: path,
	}, nil
}

// Register adds every loaded level to reg after the built-in ones.
// Levels whose ID is already taken are returned as errors and skipped.
func Register(reg *registry.Registry, levels []*Level) []error {
	var errs []error
	for i, lvl := range levels {
		if reg.Exists(lvl.ID) {
			errs = append(errs, fmt.Errorf("levels: %s: id %q already registered", lvl.FilePath, lvl.ID))
			continue
		}
		reg.Register(lvl.ID, 100+i, func() breakout.LevelSource { return lvl })
	}
	return errs
}

// RegisterDir loads a directory into the global registry.
func RegisterDir(root string) (skipped []error, err error) {
	levels, skipped, err := NewLoader(root).LoadAll()
	if err != nil {
		return nil, err
	}
	return append(skipped, Register(registry.Default(), levels)...), nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
