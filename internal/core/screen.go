package core

import (
	"strings"
)

// Cell is a single screen position: a glyph and its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a character buffer the terminal renderer draws the world
// into. Cells are stored row-major; out-of-bounds access is ignored.
type Screen struct {
	width, height int
	cells         []Cell
}

// NewScreen creates a blank screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in characters.
func (s *Screen) Height() int { return s.height }

// Resize changes the dimensions and blanks the buffer. Negative sizes
// are treated as zero.
func (s *Screen) Resize(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	n := s.width * s.height
	if cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]Cell, n)
	}
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Set places a colored glyph.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// At returns the cell at (x, y), or a blank cell out of bounds.
func (s *Screen) At(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// Get returns the glyph at (x, y).
func (s *Screen) Get(x, y int) rune {
	return s.At(x, y).Rune
}

// Print writes text left to right from (x, y), clipped to the screen.
func (s *Screen) Print(x, y int, text string, c Color) {
	for _, r := range text {
		s.Set(x, y, r, c)
		x++
	}
}

// FillRect fills the visible part of r with one glyph.
func (s *Screen) FillRect(r Rect, glyph rune, c Color) {
	r = r.Clip(s.width, s.height)
	for y := r.Y; y < r.Bottom(); y++ {
		row := s.cells[y*s.width : (y+1)*s.width]
		for x := r.X; x < r.Right(); x++ {
			row[x] = Cell{Rune: glyph, Color: c}
		}
	}
}

// Transform rewrites the buffer in place: an optional 180 degree turn
// (both axes mirrored) followed by a shift of (dx, dy) cells.
// Cells shifted in from outside are blank.
func (s *Screen) Transform(mirror bool, dx, dy int) {
	if !mirror && dx == 0 && dy == 0 {
		return
	}

	src := make([]Cell, len(s.cells))
	copy(src, s.cells)

	for y := range s.height {
		for x := range s.width {
			sx, sy := x-dx, y-dy
			if mirror {
				sx, sy = s.width-1-sx, s.height-1-sy
			}
			dst := y*s.width + x
			if sx < 0 || sx >= s.width || sy < 0 || sy >= s.height {
				s.cells[dst] = blank
				continue
			}
			s.cells[dst] = src[sy*s.width+sx]
		}
	}
}

// Recolor applies fn to the color of every non-blank cell.
func (s *Screen) Recolor(fn func(x, y int, c Color) Color) {
	for i := range s.cells {
		if s.cells[i].Rune == ' ' {
			continue
		}
		s.cells[i].Color = fn(i%s.width, i/s.width, s.cells[i].Color)
	}
}

// Row returns the glyphs of row y, or spaces out of bounds.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y*s.width : (y+1)*s.width] {
		runes[x] = c.Rune
	}
	return string(runes)
}

// String returns the glyphs without colors, one line per row.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
