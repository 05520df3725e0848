package breakout

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestLevelLoadTwoByTwo(t *testing.T) {
	var lvl Level
	require.NoError(t, lvl.Load(strings.NewReader("1 1\n2 0\n"), 800, 300))

	require.Len(t, lvl.Bricks, 3)
	solid := 0
	for _, b := range lvl.Bricks {
		if b.Solid {
			solid++
		}
	}
	assert.Equal(t, 2, solid)
	assert.Equal(t, 2, lvl.Cols)
	assert.Equal(t, 2, lvl.Rows)

	b, ok := lvl.BrickAt(0, 1)
	require.True(t, ok)
	assert.False(t, b.Solid)
	assert.Equal(t, core.V(0, 150), b.Position)
	assert.Equal(t, core.V(400, 150), b.Size)
	assert.Equal(t, TileColor(2), b.Color)
	assert.Equal(t, SpriteBlock, b.Sprite)

	b, ok = lvl.BrickAt(1, 0)
	require.True(t, ok)
	assert.True(t, b.Solid)
	assert.Equal(t, SolidColor, b.Color)
	assert.Equal(t, SpriteBlockSolid, b.Sprite)

	_, ok = lvl.BrickAt(1, 1)
	assert.False(t, ok, "empty cell has no brick")
	_, ok = lvl.BrickAt(5, 0)
	assert.False(t, ok)
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptyLevel},
		{"only blanks", "\n  \n\n", ErrEmptyLevel},
		{"ragged", "1 1 1\n2 2\n", ErrRaggedLevel},
		{"letters", "1 x\n", ErrBadTile},
		{"negative", "1 -2\n", ErrBadTile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGrid(strings.NewReader(tt.input))
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestParseGridSkipsBlankLines(t *testing.T) {
	grid, err := ParseGrid(strings.NewReader("\n5 4\n\n 3   2 \n"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{5, 4}, {3, 2}}, grid)
}

func TestLevelLoadFailureLeavesLevelEmpty(t *testing.T) {
	var lvl Level
	require.NoError(t, lvl.Load(strings.NewReader("2 2\n"), 800, 300))
	require.Len(t, lvl.Bricks, 2)

	err := lvl.Load(strings.NewReader("2 2\n2\n"), 800, 300)
	require.ErrorIs(t, err, ErrRaggedLevel)
	assert.Empty(t, lvl.Bricks)
	assert.True(t, lvl.IsCompleted(), "an empty level reads as complete")
	_, ok := lvl.BrickAt(0, 0)
	assert.False(t, ok)
}

func TestLevelInitRejectsNegativeTiles(t *testing.T) {
	var lvl Level
	err := lvl.Init([][]int{{2, -3}, {1, 0}}, 800, 300)
	require.ErrorIs(t, err, ErrBadTile)
	assert.Empty(t, lvl.Bricks)

	assert.ErrorIs(t, ValidateGrid([][]int{{0, 0}, {0, -1}}), ErrBadTile)
	assert.NoError(t, ValidateGrid([][]int{{0, 1}, {2, 9}}))
}

func TestLevelLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.lvl")
	require.NoError(t, os.WriteFile(path, []byte("3 4 5\n1 0 9\n"), 0o600))

	var lvl Level
	require.NoError(t, lvl.LoadFile(path, 600, 200))
	require.Len(t, lvl.Bricks, 5)

	b, ok := lvl.BrickAt(2, 1)
	require.True(t, ok)
	assert.Equal(t, core.White, b.Color, "unmapped codes are white")
	assert.Equal(t, core.V(400, 100), b.Position)

	err := lvl.LoadFile(filepath.Join(t.TempDir(), "missing.lvl"), 600, 200)
	assert.Error(t, err)
	assert.Empty(t, lvl.Bricks)
}

func TestLevelIsCompleted(t *testing.T) {
	var lvl Level
	require.NoError(t, lvl.Init([][]int{{1, 2, 3}}, 300, 100))
	assert.False(t, lvl.IsCompleted())
	assert.Equal(t, 2, lvl.Remaining())

	for i := range lvl.Bricks {
		if !lvl.Bricks[i].Solid {
			lvl.Bricks[i].Destroyed = true
		}
	}
	assert.True(t, lvl.IsCompleted(), "solid bricks do not block completion")
}

func TestTileColors(t *testing.T) {
	assert.Equal(t, core.RGB{R: 0.2, G: 0.6, B: 1.0}, TileColor(2))
	assert.Equal(t, core.RGB{R: 0.0, G: 0.7, B: 0.0}, TileColor(3))
	assert.Equal(t, core.RGB{R: 0.8, G: 0.8, B: 0.4}, TileColor(4))
	assert.Equal(t, core.RGB{R: 1.0, G: 0.5, B: 0.0}, TileColor(5))
	assert.Equal(t, core.White, TileColor(42))
}

func TestLevelDrawSkipsDestroyed(t *testing.T) {
	var lvl Level
	require.NoError(t, lvl.Init([][]int{{2, 2, 1}}, 300, 100))
	lvl.Bricks[0].Destroyed = true

	rec := &recordingRenderer{}
	lvl.Draw(rec)
	assert.Equal(t, []string{"sprite:block", "sprite:block_solid"}, rec.calls)
}
