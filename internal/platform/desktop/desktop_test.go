package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func pressedSet(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestPollKeysMapsBindings(t *testing.T) {
	var ks core.KeyState
	pollKeys(&ks, pressedSet(ebiten.KeyArrowLeft, ebiten.KeySpace, ebiten.KeyW))

	assert.True(t, ks.IsDown(core.KeyLeft))
	assert.True(t, ks.IsDown(core.KeyLaunch))
	assert.True(t, ks.IsDown(core.KeyNext))
	assert.False(t, ks.IsDown(core.KeyRight))
	assert.False(t, ks.IsDown(core.KeyConfirm))
}

func TestPollKeysReleaseRearmsEdge(t *testing.T) {
	var ks core.KeyState

	pollKeys(&ks, pressedSet(ebiten.KeyEnter))
	assert.True(t, ks.Consume(core.KeyConfirm))

	// Still held: the press was already consumed.
	pollKeys(&ks, pressedSet(ebiten.KeyEnter))
	assert.False(t, ks.Consume(core.KeyConfirm))

	pollKeys(&ks, pressedSet())
	assert.False(t, ks.IsDown(core.KeyConfirm))

	pollKeys(&ks, pressedSet(ebiten.KeyNumpadEnter))
	assert.True(t, ks.Consume(core.KeyConfirm))
}

func TestEveryGameKeyIsBound(t *testing.T) {
	for k := core.KeyNone + 1; k < core.KeyCount; k++ {
		assert.NotEmpty(t, keyBindings[k], k.String())
	}
}
