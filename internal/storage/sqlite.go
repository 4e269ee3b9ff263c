// Package storage provides SQLite-based persistence for level unlock
// progress and run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// Progress is the persisted state of one level for the local player.
type Progress struct {
	LevelID    string
	Unlocked   bool
	Completed  bool
	BestBlocks int // Fewest blocks in a successful run, 0 if never completed
	UpdatedAt  time.Time
}

// RunEntry records a single program run against a level.
type RunEntry struct {
	ID        int64
	LevelID   string
	Blocks    int
	Success   bool
	Reason    string // Failure reason, empty on success
	CreatedAt time.Time
}

// Summary contains aggregated statistics across all levels.
type Summary struct {
	TotalRuns  int
	Successes  int
	Completed  int
	Unlocked   int
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

	// Create parent directories
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS progress (
			level_id TEXT PRIMARY KEY,
			unlocked INTEGER NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0,
			best_blocks INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			blocks INTEGER NOT NULL,
			success INTEGER NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level_id ON runs(level_id);
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

// Unlock marks a level as unlocked. Idempotent; completion state is kept.
func (s *Store) Unlock(levelID string) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (level_id, unlocked, updated_at)
		 VALUES (?, 1, CURRENT_TIMESTAMP)
		 ON CONFLICT(level_id) DO UPDATE SET
		   unlocked = 1,
		   updated_at = CURRENT_TIMESTAMP`,
		levelID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot unlock level: %w", err)
	}
	return nil
}

// Unlocked reports whether a level has been unlocked.
func (s *Store) Unlocked(levelID string) (bool, error) {
	var unlocked bool
	err := s.db.QueryRow(
		"SELECT unlocked FROM progress WHERE level_id = ?",
		levelID,
	).Scan(&unlocked)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage: cannot query unlock state: %w", err)
	}
	return unlocked, nil
}

// Complete marks a level as completed with the given program length,
// keeping the shortest successful program seen so far.
func (s *Store) Complete(levelID string, blocks int) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (level_id, unlocked, completed, best_blocks, updated_at)
		 VALUES (?, 1, 1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(level_id) DO UPDATE SET
		   unlocked = 1,
		   completed = 1,
		   best_blocks = CASE
		     WHEN best_blocks = 0 OR excluded.best_blocks < best_blocks
		     THEN excluded.best_blocks
		     ELSE best_blocks
		   END,
		   updated_at = CURRENT_TIMESTAMP`,
		levelID, blocks,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot complete level: %w", err)
	}
	return nil
}

// RecordRun appends one run to the history log.
// Returns the ID of the inserted record.
func (s *Store) RecordRun(levelID string, blocks int, success bool, reason string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (level_id, blocks, success, reason) VALUES (?, ?, ?, ?)",
		levelID, blocks, success, reason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// LevelProgress returns the progress row for one level.
// Returns nil if the level has never been touched.
func (s *Store) LevelProgress(levelID string) (*Progress, error) {
	var p Progress
	var updatedAt any

	err := s.db.QueryRow(
		`SELECT level_id, unlocked, completed, best_blocks, updated_at
		 FROM progress WHERE level_id = ?`,
		levelID,
	).Scan(&p.LevelID, &p.Unlocked, &p.Completed, &p.BestBlocks, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}

	p.UpdatedAt = parseTimestamp(updatedAt)
	return &p, nil
}

// AllProgress returns progress for every level that has a row, keyed by
// level ID.
func (s *Store) AllProgress() (map[string]Progress, error) {
	rows, err := s.db.Query(
		`SELECT level_id, unlocked, completed, best_blocks, updated_at FROM progress`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	progress := make(map[string]Progress)
	for rows.Next() {
		var p Progress
		var updatedAt any
		if err := rows.Scan(&p.LevelID, &p.Unlocked, &p.Completed, &p.BestBlocks, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.UpdatedAt = parseTimestamp(updatedAt)
		progress[p.LevelID] = p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return progress, nil
}

// RunHistory retrieves the most recent runs for a level.
func (s *Store) RunHistory(levelID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, blocks, success, reason, created_at
		 FROM runs
		 WHERE level_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Blocks, &e.Success, &e.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats returns aggregated statistics across all levels.
func (s *Store) Stats() (Summary, error) {
	var sum Summary

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(success), 0) FROM runs`,
	).Scan(&sum.TotalRuns, &sum.Successes)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COALESCE(SUM(completed), 0), COALESCE(SUM(unlocked), 0) FROM progress`,
	).Scan(&sum.Completed, &sum.Unlocked)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot get progress stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs ORDER BY id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return Summary{}, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		sum.LastPlayed = parseTimestamp(lastPlayed)
	}

	return sum, nil
}

// parseTimestamp handles the driver returning DATETIME columns as either
// time.Time or string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
