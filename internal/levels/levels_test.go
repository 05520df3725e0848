package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

func TestBuiltinLevelsRegistered(t *testing.T) {
	list := registry.List()
	require.GreaterOrEqual(t, len(list), 4)
	for i, id := range builtinIDs {
		assert.Equal(t, id, list[i].ID)
	}
}

func TestBuiltinLevelsAreValid(t *testing.T) {
	for _, id := range builtinIDs {
		t.Run(id, func(t *testing.T) {
			src, err := registry.Create(id)
			require.NoError(t, err)

			grid, err := src.Grid()
			require.NoError(t, err)

			var lvl breakout.Level
			require.NoError(t, lvl.Init(grid, 800, 300))
			assert.Positive(t, lvl.Remaining(), "level must have something to break")
			assert.False(t, lvl.IsCompleted())
		})
	}
}

func TestLevelGridIsACopy(t *testing.T) {
	lvl := &Level{ID: "x", Tiles: [][]int{{2, 2}}}
	grid, err := lvl.Grid()
	require.NoError(t, err)
	grid[0][0] = 9
	assert.Equal(t, 2, lvl.Tiles[0][0])
	assert.Equal(t, "x", lvl.Name())
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o750))

	writeFile(t, dir, "plain.lvl", "2 2\n1 3\n")
	writeFile(t, dir, "castle.yaml", "id: castle\nname: Castle\ntiles:\n  - [1, 2, 1]\n")
	writeFile(t, filepath.Join(dir, "nested"), "bars.toml", "name = \"Bars\"\ntiles = [[4, 4]]\n")
	writeFile(t, dir, "broken.lvl", "2 2\n2\n")
	writeFile(t, dir, "notes.md", "# not a level\n")

	levels, skipped, err := NewLoader(dir).LoadAll()
	require.NoError(t, err)
	require.Len(t, levels, 3)
	assert.Len(t, skipped, 1)

	assert.Equal(t, "bars", levels[0].ID)
	assert.Equal(t, "Bars", levels[0].Name())
	assert.Equal(t, "castle", levels[1].ID)
	assert.Equal(t, "Castle", levels[1].Name())
	assert.Equal(t, "plain", levels[2].ID)
	assert.Equal(t, [][]int{{2, 2}, {1, 3}}, levels[2].Tiles)
}

func TestLoaderMissingDir(t *testing.T) {
	_, _, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll()
	assert.Error(t, err)
}

func TestRegisterSkipsDuplicates(t *testing.T) {
	reg := registry.New()
	reg.Register("plain", 1, func() breakout.LevelSource {
		return breakout.StaticLevel{Title: "taken", Text: "2\n"}
	})

	errs := Register(reg, []*Level{
		{ID: "plain", Tiles: [][]int{{2}}},
		{ID: "fresh", Title: "Fresh", Tiles: [][]int{{3}}},
	})
	assert.Len(t, errs, 1)

	src, err := reg.Create("fresh")
	require.NoError(t, err)
	assert.Equal(t, "Fresh", src.Name())

	list := reg.List()
	assert.Equal(t, "plain", list[0].ID)
	assert.Equal(t, "fresh", list[1].ID)
}
