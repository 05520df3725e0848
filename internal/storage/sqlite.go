// Package storage provides SQLite-based persistence for finished Breakout runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry is a single stored run.
type RunEntry struct {
	ID        int64
	RunID     string
	Player    string
	Level     string
	Score     int
	Won       bool
	Bricks    int
	Seconds   float64
	CreatedAt time.Time
}

// LevelStats contains aggregated statistics for one level.
type LevelStats struct {
	Level      string
	Runs       int
	Wins       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL DEFAULT '',
			level TEXT NOT NULL,
			score INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			bricks INTEGER NOT NULL DEFAULT 0,
			seconds REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(level, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its generated run ID.
func (s *Store) SaveRun(player string, r breakout.RunResult) (string, error) {
	runID := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, player, level, score, won, bricks, seconds)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, player, r.Level, r.Score, r.Won, r.BricksDestroyed, r.Seconds,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return runID, nil
}

// RunByID returns the run with the given run ID, or nil if none exists.
func (s *Store) RunByID(runID string) (*RunEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, run_id, player, level, score, won, bricks, seconds, created_at
		 FROM runs WHERE run_id = ?`,
		runID,
	)
	e, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return e, nil
}

// TopRuns retrieves the best runs for a level ordered by score descending.
// An empty level name ranks runs across all levels.
func (s *Store) TopRuns(level string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var (
		rows *sql.Rows
		err  error
	)
	if level == "" {
		rows, err = s.db.Query(
			`SELECT id, run_id, player, level, score, won, bricks, seconds, created_at
			 FROM runs ORDER BY score DESC, id ASC LIMIT ?`,
			limit,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT id, run_id, player, level, score, won, bricks, seconds, created_at
			 FROM runs WHERE level = ? ORDER BY score DESC, id ASC LIMIT ?`,
			level, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the level, or 0 with no runs.
func (s *Store) HighScore(level string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs WHERE level = ?", level).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearRuns deletes all runs for the level.
func (s *Store) ClearRuns(level string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE level = ?", level); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// AllLevelStats retrieves statistics for every level that has been played.
func (s *Store) AllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level, COUNT(*), COALESCE(SUM(won), 0), MAX(score), AVG(score), MAX(created_at)
		 FROM runs
		 GROUP BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastPlayed any
		if err := rows.Scan(&ls.Level, &ls.Runs, &ls.Wins, &ls.HighScore, &ls.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastPlayed = parseTime(lastPlayed)
		stats[ls.Level] = &ls
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*RunEntry, error) {
	var e RunEntry
	var createdAt any
	if err := sc.Scan(&e.ID, &e.RunID, &e.Player, &e.Level, &e.Score, &e.Won, &e.Bricks, &e.Seconds, &createdAt); err != nil {
		return nil, err
	}
	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
