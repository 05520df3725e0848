package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func testOptions() Options {
	return Options{
		Config:  config.DefaultBreakoutConfig(),
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 7},
		Levels:  []breakout.LevelSource{breakout.StaticLevel{Title: "tiny", Text: "1 2\n"}},
		Logger:  log.New(io.Discard),
		Width:   80,
		Height:  31,
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func step(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm
}

func TestKeyMapResolve(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Key
	}{
		{keyRunes("a"), core.KeyLeft},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{keyRunes("d"), core.KeyRight},
		{tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyLaunch},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.KeyConfirm},
		{keyRunes("w"), core.KeyNext},
		{tea.KeyMsg{Type: tea.KeyDown}, core.KeyPrev},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.KeyQuit},
		{keyRunes("q"), core.KeyQuit},
		{keyRunes("z"), core.KeyNone},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, km.Resolve(tt.msg))
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	assert.Equal(t, MenuActionUp, MapKeyToMenuAction(keyRunes("k")))
	assert.Equal(t, MenuActionDown, MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionSelect, MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionBack, MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionQuit, MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.Equal(t, MenuActionNone, MapKeyToMenuAction(keyRunes("x")))
}

func TestGameModelStartsInMenu(t *testing.T) {
	m := NewGameModel(testOptions(), 1)
	assert.Equal(t, breakout.StateMenu, m.Game().State)
	assert.NotNil(t, m.Init())
}

func TestGameModelHoldsKeys(t *testing.T) {
	m := NewGameModel(testOptions(), 1)
	tick := TickMsg{Gen: 1}

	m = step(t, m, keyRunes("a"))
	assert.True(t, m.Game().Keys.IsDown(core.KeyLeft))

	for range holdTicks - 1 {
		m = step(t, m, tick)
	}
	assert.True(t, m.Game().Keys.IsDown(core.KeyLeft))

	m = step(t, m, tick)
	assert.False(t, m.Game().Keys.IsDown(core.KeyLeft))
	assert.Equal(t, uint64(holdTicks), m.Game().Ticks())
}

func TestGameModelEveryPressIsAnEdge(t *testing.T) {
	m := NewGameModel(testOptions(), 1)
	m.Game().Keys.Press(core.KeyNext)
	assert.True(t, m.Game().Keys.Consume(core.KeyNext))

	m = step(t, m, keyRunes("w"))
	assert.True(t, m.Game().Keys.Consume(core.KeyNext))
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	m := NewGameModel(testOptions(), 2)
	m = step(t, m, TickMsg{Gen: 1})
	assert.Equal(t, uint64(0), m.Game().Ticks())

	m = step(t, m, TickMsg{Gen: 2})
	assert.Equal(t, uint64(1), m.Game().Ticks())
}

func TestGameModelConfirmStartsRun(t *testing.T) {
	m := NewGameModel(testOptions(), 1)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, TickMsg{Gen: 1})
	assert.Equal(t, breakout.StateActive, m.Game().State)
}

func TestGameModelBackAndQuit(t *testing.T) {
	m := NewGameModel(testOptions(), 1)

	back := step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.BackToMenu())
	assert.False(t, back.IsQuitting())

	next, cmd := m.Update(keyRunes("q"))
	quit := next.(GameModel)
	assert.True(t, quit.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, quit.View())
}

func TestGameModelView(t *testing.T) {
	m := NewGameModel(testOptions(), 1)
	m = step(t, m, TickMsg{Gen: 1})

	view := m.View()
	assert.Contains(t, view, "Lives: 3")
	assert.Contains(t, view, "Press ENTER to start")
}

func TestGameModelResize(t *testing.T) {
	m := NewGameModel(testOptions(), 1)
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 41})
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 40, m.screen.Height())
}

func TestSessionFlow(t *testing.T) {
	var model tea.Model = NewSessionModel(testOptions(), []string{"tiny"})
	send := func(msg tea.Msg) SessionModel {
		t.Helper()
		model, _ = model.Update(msg)
		return model.(SessionModel)
	}

	s := send(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, pageGame, s.current)
	require.NotNil(t, s.game)
	assert.Equal(t, 1, s.gen)

	s = send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, pageMenu, s.current)
	assert.Nil(t, s.game)

	s = send(tea.KeyMsg{Type: tea.KeyDown})
	s = send(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, pageScores, s.current)
	assert.Contains(t, s.View(), "No runs recorded yet.")

	s = send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, pageMenu, s.current)

	s = send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, s.gen, "every game gets a fresh tick generation")
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := NewSessionModel(testOptions(), nil)
	next, cmd := m.Update(keyRunes("q"))
	assert.True(t, next.(SessionModel).quitting)
	assert.NotNil(t, cmd)
}
