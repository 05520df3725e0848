package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func run(level string, score int, won bool) breakout.RunResult {
	return breakout.RunResult{Level: level, Score: score, Won: won, BricksDestroyed: score / 10, Seconds: 12.5}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should exist")
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []breakout.RunResult{
		run("one", 100, false),
		run("one", 50, false),
		run("one", 200, true),
		run("two", 500, true),
	} {
		_, err := store.SaveRun("alice", r)
		require.NoError(t, err)
	}

	runs, err := store.TopRuns("one", 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, 200, runs[0].Score)
	assert.Equal(t, 100, runs[1].Score)
	assert.Equal(t, 50, runs[2].Score)
	assert.True(t, runs[0].Won)
	assert.False(t, runs[1].Won)
	assert.Equal(t, "alice", runs[0].Player)
	assert.Equal(t, 20, runs[0].Bricks)
	assert.InDelta(t, 12.5, runs[0].Seconds, 1e-9)

	all, err := store.TopRuns("", 10)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "two", all[0].Level)
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun("bob", run("one", 70, true))
	require.NoError(t, err)
	assert.Len(t, id, 36)

	e, err := store.RunByID(id)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, id, e.RunID)
	assert.Equal(t, 70, e.Score)
	assert.False(t, e.CreatedAt.IsZero())

	missing, err := store.RunByID("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStoreRunIDsUnique(t *testing.T) {
	store := openTestStore(t)

	a, err := store.SaveRun("", run("one", 1, false))
	require.NoError(t, err)
	b, err := store.SaveRun("", run("one", 1, false))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		_, err := store.SaveRun("", run("one", i*10, false))
		require.NoError(t, err)
	}

	runs, err := store.TopRuns("one", 5)
	require.NoError(t, err)
	require.Len(t, runs, 5)
	assert.Equal(t, 190, runs[0].Score)
	assert.Equal(t, 150, runs[4].Score)

	runs, err = store.TopRuns("one", 0)
	require.NoError(t, err)
	assert.Len(t, runs, 10, "non-positive limit falls back to 10")
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("one")
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	for _, s := range []int{30, 90, 60} {
		_, err := store.SaveRun("", run("one", s, false))
		require.NoError(t, err)
	}

	high, err = store.HighScore("one")
	require.NoError(t, err)
	assert.Equal(t, 90, high)
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun("", run("one", 10, false))
	require.NoError(t, err)
	_, err = store.SaveRun("", run("two", 20, false))
	require.NoError(t, err)

	require.NoError(t, store.ClearRuns("one"))

	runs, err := store.TopRuns("one", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)

	runs, err = store.TopRuns("two", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestStoreAllLevelStats(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []breakout.RunResult{
		run("one", 100, true),
		run("one", 50, false),
		run("two", 30, false),
	} {
		_, err := store.SaveRun("", r)
		require.NoError(t, err)
	}

	stats, err := store.AllLevelStats()
	require.NoError(t, err)
	require.Len(t, stats, 2)

	one := stats["one"]
	require.NotNil(t, one)
	assert.Equal(t, 2, one.Runs)
	assert.Equal(t, 1, one.Wins)
	assert.Equal(t, 100, one.HighScore)
	assert.InDelta(t, 75.0, one.AvgScore, 1e-9)

	assert.Equal(t, 0, stats["two"].Wins)
}
