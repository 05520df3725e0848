package formats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

func TestParseYAMLTiles(t *testing.T) {
	data := []byte(`
id: fort
name: Fortress
tiles:
  - [1, 1, 1]
  - [2, 0, 2]
`)
	lvl, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "fort", lvl.ID)
	assert.Equal(t, "Fortress", lvl.Name)
	assert.Equal(t, [][]int{{1, 1, 1}, {2, 0, 2}}, lvl.Tiles)
}

func TestParseYAMLRows(t *testing.T) {
	data := []byte(`
name: Rows
rows:
  - "5 5"
  - "3 0"
`)
	lvl, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{5, 5}, {3, 0}}, lvl.Tiles)
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
id = "stripes"
name = "Stripes"
tiles = [[2, 3, 4], [5, 1, 5]]
`)
	lvl, err := ParseTOML(data)
	require.NoError(t, err)
	assert.Equal(t, "Stripes", lvl.Name)
	assert.Equal(t, [][]int{{2, 3, 4}, {5, 1, 5}}, lvl.Tiles)
}

func TestParseRejectsBadGrids(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
		want error
	}{
		{"yaml ragged", "tiles:\n  - [1, 2]\n  - [1]\n", ".yaml", breakout.ErrRaggedLevel},
		{"yaml empty", "name: nothing\n", ".yml", breakout.ErrEmptyLevel},
		{"yaml negative", "tiles:\n  - [1, -1]\n", ".yaml", breakout.ErrBadTile},
		{"toml ragged", "tiles = [[1], [1, 2]]\n", ".toml", breakout.ErrRaggedLevel},
		{"text bad tile", "1 q\n", ".lvl", breakout.ErrBadTile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.ext)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	_, err := Parse([]byte("tiles: [oops"), ".yaml")
	assert.Error(t, err)
	_, err = Parse([]byte("tiles = [[1,"), ".toml")
	assert.Error(t, err)
	_, err = Parse([]byte("1"), ".json")
	assert.Error(t, err)
}
