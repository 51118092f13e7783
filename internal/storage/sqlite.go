// Package storage provides SQLite-based persistence for finished-game
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Only outcomes are stored, never in-progress game state.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished game: the final counters plus where and how it
// was played.
type Result struct {
	ID         int64
	Score      int
	Level      int
	Rows       int
	Tiles      int
	Difficulty string // preset name the game ran under
	Player     string // SSH username; empty for local play
	CreatedAt  time.Time
}

// Stats contains aggregated statistics across recorded games.
type Stats struct {
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalRows  int64
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 0,
			rows INTEGER NOT NULL DEFAULT 0,
			tiles INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL DEFAULT 'normal',
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(score DESC);
		CREATE INDEX IF NOT EXISTS idx_results_difficulty ON results(difficulty, score DESC);
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

// SaveResult records a finished game. Returns the ID of the inserted row.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (score, level, rows, tiles, difficulty, player)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Score, r.Level, r.Rows, r.Tiles, r.Difficulty, r.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the top N results ordered by score descending.
// An empty difficulty matches every preset.
func (s *Store) TopResults(limit int, difficulty string) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, score, level, rows, tiles, difficulty, player, created_at
		 FROM results`
	args := []any{}
	if difficulty != "" {
		query += ` WHERE difficulty = ?`
		args = append(args, difficulty)
	}
	query += ` ORDER BY score DESC, created_at ASC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.Level, &r.Rows, &r.Tiles,
			&r.Difficulty, &r.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score, 0 when nothing is stored.
// An empty difficulty matches every preset.
func (s *Store) HighScore(difficulty string) (int, error) {
	query := "SELECT MAX(score) FROM results"
	args := []any{}
	if difficulty != "" {
		query += " WHERE difficulty = ?"
		args = append(args, difficulty)
	}

	var score sql.NullInt64
	if err := s.db.QueryRow(query, args...).Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// GetStats retrieves aggregated statistics, optionally filtered by
// difficulty.
func (s *Store) GetStats(difficulty string) (*Stats, error) {
	stats := &Stats{}

	query := `SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(rows), 0)
		 FROM results`
	args := []any{}
	if difficulty != "" {
		query += " WHERE difficulty = ?"
		args = append(args, difficulty)
	}

	err := s.db.QueryRow(query, args...).Scan(
		&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalRows)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	lastQuery := "SELECT created_at FROM results"
	if difficulty != "" {
		lastQuery += " WHERE difficulty = ?"
	}
	lastQuery += " ORDER BY created_at DESC LIMIT 1"

	var lastPlayed any
	err = s.db.QueryRow(lastQuery, args...).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// ClearResults deletes recorded results, all of them or one difficulty's.
func (s *Store) ClearResults(difficulty string) error {
	query := "DELETE FROM results"
	args := []any{}
	if difficulty != "" {
		query += " WHERE difficulty = ?"
		args = append(args, difficulty)
	}

	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTimestamp converts a scanned created_at value; the driver may hand
// back either time.Time or a string depending on how the row was written.
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
