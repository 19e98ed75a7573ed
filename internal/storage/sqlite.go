// Package storage persists player progress and the record of cleared
// levels. Records use the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/inconvenience/internal/game"
)

// Store manages the SQLite database of level clears.
type Store struct {
	db *sql.DB
}

// ClearEntry is one recorded level clear.
type ClearEntry struct {
	ID        int64
	Level     int
	Name      string
	Ticks     uint64
	Resets    int
	CreatedAt time.Time
}

// LevelStats aggregates every clear of one level.
type LevelStats struct {
	Level        int
	Name         string
	Clears       int
	BestTicks    uint64
	FewestResets int
	LastClear    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := ensureDir(dbPath); err != nil {
		return nil, err
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
		CREATE TABLE IF NOT EXISTS level_clears (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level INTEGER NOT NULL,
			name TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			resets INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_clears_level ON level_clears(level);
		CREATE INDEX IF NOT EXISTS idx_level_clears_best ON level_clears(level, ticks ASC);
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

// RecordClear implements game.Recorder.
func (s *Store) RecordClear(c game.LevelClear) error {
	_, err := s.SaveClear(c)
	return err
}

var _ game.Recorder = (*Store)(nil)

// SaveClear records a level clear and returns the ID of the inserted row.
func (s *Store) SaveClear(c game.LevelClear) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO level_clears (level, name, ticks, resets) VALUES (?, ?, ?, ?)",
		c.Level, c.Name, int64(c.Ticks), c.Resets,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save clear: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopClears retrieves the fastest clears of the given level, fewest ticks
// first and fewer resets breaking ties.
func (s *Store) TopClears(level, limit int) ([]ClearEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, name, ticks, resets, created_at
		 FROM level_clears
		 WHERE level = ?
		 ORDER BY ticks ASC, resets ASC, id ASC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query clears: %w", err)
	}
	defer rows.Close()

	var entries []ClearEntry
	for rows.Next() {
		var e ClearEntry
		var ticks int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Level, &e.Name, &ticks, &e.Resets, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestTicks returns the fewest ticks any clear of the level took.
// ok is false if the level was never cleared.
func (s *Store) BestTicks(level int) (ticks uint64, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(ticks) FROM level_clears WHERE level = ?",
		level,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best clear: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return uint64(best.Int64), true, nil
}

// AllLevelStats aggregates the clears of every level that has any,
// ordered by level index.
func (s *Store) AllLevelStats() ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level, MAX(name), COUNT(*), MIN(ticks), MIN(resets), MAX(created_at)
		 FROM level_clears
		 GROUP BY level
		 ORDER BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var st LevelStats
		var best int64
		var lastClear any
		if err := rows.Scan(&st.Level, &st.Name, &st.Clears, &best, &st.FewestResets, &lastClear); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestTicks = uint64(best)
		st.LastClear = parseTime(lastClear)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// DeleteClears removes every clear of the given level.
func (s *Store) DeleteClears(level int) error {
	_, err := s.db.Exec("DELETE FROM level_clears WHERE level = ?", level)
	if err != nil {
		return fmt.Errorf("storage: cannot delete clears: %w", err)
	}
	return nil
}

// DeleteAllClears empties the record table.
func (s *Store) DeleteAllClears() error {
	if _, err := s.db.Exec("DELETE FROM level_clears"); err != nil {
		return fmt.Errorf("storage: cannot delete clears: %w", err)
	}
	return nil
}

// parseTime converts a DATETIME column, which the driver returns either as
// time.Time or as text.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
