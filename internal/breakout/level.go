package breakout

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Tile codes.
const (
	TileEmpty = 0
	TileSolid = 1
)

// Level errors.
var (
	ErrEmptyLevel  = errors.New("breakout: level has no rows")
	ErrRaggedLevel = errors.New("breakout: level rows differ in length")
	ErrBadTile     = errors.New("breakout: tile code is not a non-negative integer")
)

// SolidColor is the tint of indestructible bricks.
var SolidColor = core.RGB{R: 0.8, G: 0.8, B: 0.7}

// TileColor returns the brick tint for a destructible tile code.
func TileColor(code int) core.RGB {
	switch code {
	case 2:
		return core.RGB{R: 0.2, G: 0.6, B: 1.0}
	case 3:
		return core.RGB{R: 0.0, G: 0.7, B: 0.0}
	case 4:
		return core.RGB{R: 0.8, G: 0.8, B: 0.4}
	case 5:
		return core.RGB{R: 1.0, G: 0.5, B: 0.0}
	default:
		return core.White
	}
}

// Level is a grid of tile codes expanded into bricks.
type Level struct {
	Name   string
	Bricks []Entity
	Cols   int
	Rows   int

	cells *intmap.Map[int, int] // row*Cols+col -> index into Bricks
}

// ParseGrid reads a rectangular grid of non-negative integers, one row per
// line. Blank lines are skipped.
func ParseGrid(r io.Reader) ([][]int, error) {
	var grid [][]int
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			code, err := strconv.Atoi(f)
			if err != nil || code < 0 {
				return nil, fmt.Errorf("line %d column %d %q: %w", line, i+1, f, ErrBadTile)
			}
			row[i] = code
		}
		grid = append(grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading level: %w", err)
	}
	if err := ValidateGrid(grid); err != nil {
		return nil, err
	}
	return grid, nil
}

// ValidateGrid checks that a grid is non-empty, rectangular and holds only
// non-negative tile codes.
func ValidateGrid(grid [][]int) error {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return ErrEmptyLevel
	}
	cols := len(grid[0])
	for i, row := range grid {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d tiles, want %d: %w", i+1, len(row), cols, ErrRaggedLevel)
		}
		for j, code := range row {
			if code < 0 {
				return fmt.Errorf("row %d column %d = %d: %w", i+1, j+1, code, ErrBadTile)
			}
		}
	}
	return nil
}

// Load parses a level from r and lays it out in a width x height area.
// The previous bricks are always discarded; on error the level is left empty.
func (l *Level) Load(r io.Reader, width, height float64) error {
	l.clear()
	grid, err := ParseGrid(r)
	if err != nil {
		return err
	}
	return l.Init(grid, width, height)
}

// LoadFile loads a level from a file.
func (l *Level) LoadFile(path string, width, height float64) error {
	l.clear()
	f, err := os.Open(path) //#nosec G304 -- level path is user-provided
	if err != nil {
		return fmt.Errorf("open level: %w", err)
	}
	defer func() { _ = f.Close() }()
	return l.Load(f, width, height)
}

// Init expands a grid into bricks. Each cell is width/cols by height/rows.
func (l *Level) Init(grid [][]int, width, height float64) error {
	l.clear()
	if err := ValidateGrid(grid); err != nil {
		return err
	}

	l.Rows = len(grid)
	l.Cols = len(grid[0])
	unitW := width / float64(l.Cols)
	unitH := height / float64(l.Rows)
	size := core.V(unitW, unitH)

	for y, row := range grid {
		for x, code := range row {
			if code == TileEmpty {
				continue
			}
			pos := core.V(unitW*float64(x), unitH*float64(y))

			var brick Entity
			if code == TileSolid {
				brick = NewEntity(pos, size, SpriteBlockSolid, SolidColor)
				brick.Solid = true
			} else {
				brick = NewEntity(pos, size, SpriteBlock, TileColor(code))
			}

			l.cells.Put(y*l.Cols+x, len(l.Bricks))
			l.Bricks = append(l.Bricks, brick)
		}
	}
	return nil
}

func (l *Level) clear() {
	l.Bricks = l.Bricks[:0]
	l.Cols, l.Rows = 0, 0
	if l.cells == nil {
		l.cells = intmap.New[int, int](64)
	} else {
		l.cells.Clear()
	}
}

// BrickAt returns the brick placed in the given grid cell.
func (l *Level) BrickAt(col, row int) (*Entity, bool) {
	if l.cells == nil || col < 0 || col >= l.Cols || row < 0 || row >= l.Rows {
		return nil, false
	}
	idx, ok := l.cells.Get(row*l.Cols + col)
	if !ok {
		return nil, false
	}
	return &l.Bricks[idx], true
}

// IsCompleted returns true when every destructible brick is destroyed.
// An empty level is always complete.
func (l *Level) IsCompleted() bool {
	return l.Remaining() == 0
}

// Remaining returns the number of destructible bricks still in play.
func (l *Level) Remaining() int {
	n := 0
	for i := range l.Bricks {
		if !l.Bricks[i].Solid && !l.Bricks[i].Destroyed {
			n++
		}
	}
	return n
}

// Draw renders every brick still in play.
func (l *Level) Draw(r Renderer) {
	for i := range l.Bricks {
		if !l.Bricks[i].Destroyed {
			l.Bricks[i].Draw(r)
		}
	}
}
