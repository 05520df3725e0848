package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func openScoreStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	runs := []breakout.RunResult{
		{Level: "one", Score: 120, Won: true, BricksDestroyed: 12, Seconds: 40},
		{Level: "one", Score: 30, BricksDestroyed: 3, Seconds: 12},
		{Level: "two", Score: 70, BricksDestroyed: 7, Seconds: 25},
	}
	for _, r := range runs {
		_, err := store.SaveRun("ada", r)
		require.NoError(t, err)
	}
	return store
}

func TestScoreboardListsRuns(t *testing.T) {
	m := NewScoreboardModel(openScoreStore(t), []string{"one", "two"}, 100, 30)

	require.Len(t, m.runs, 3)
	assert.Equal(t, 120, m.runs[0].Score)

	view := m.View()
	assert.Contains(t, view, "All levels")
	assert.Contains(t, view, "3 runs")
	assert.Contains(t, view, "best 120")
	assert.Contains(t, view, "ada")
}

func TestScoreboardTabs(t *testing.T) {
	var model tea.Model = NewScoreboardModel(openScoreStore(t), []string{"one", "two"}, 100, 30)
	send := func(msg tea.Msg) ScoreboardModel {
		model, _ = model.Update(msg)
		return model.(ScoreboardModel)
	}

	m := send(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.tab)
	assert.Len(t, m.runs, 2)
	assert.Contains(t, m.summary(), "2 runs")
	assert.Contains(t, m.summary(), "1 won")

	m = send(tea.KeyMsg{Type: tea.KeyTab})
	assert.Len(t, m.runs, 1)
	assert.Equal(t, "two", m.runs[0].Level)

	m = send(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.tab, "tabs wrap around")

	m = send(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, m.tab)
}

func TestScoreboardNarrowDropsPlayer(t *testing.T) {
	wide := NewScoreboardModel(nil, nil, 100, 30)
	narrow := NewScoreboardModel(nil, nil, 50, 30)

	assert.Len(t, wide.table.Columns(), 6)
	assert.Len(t, narrow.table.Columns(), 5)
	assert.Equal(t, "no runs", narrow.summary())
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, nil, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sb := next.(ScoreboardModel)
	assert.True(t, sb.IsGoingBack())
	assert.Nil(t, cmd)
	assert.Empty(t, sb.View())

	m.standalone = true
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
}
