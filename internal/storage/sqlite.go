// Package storage keeps the session scoreboard in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk; results vanish with the
// process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory scoreboard. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID        int64
	Player    string
	Variant   string // Board parameters, e.g. "16x9@20%"
	Won       bool
	Seconds   int
	CreatedAt time.Time
}

// Stats aggregates the results of one variant.
type Stats struct {
	Variant       string
	Played        int
	Won           int
	BestSeconds   int // 0 when no game was won
	AvgWinSeconds float64
	LastPlayed    time.Time
}

// Open creates an empty in-memory scoreboard. Stores opened with the same
// name in one process share their data.
func Open(name string) (*Store, error) {
	if name == "" {
		name = "scoreboard"
	}
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// An in-memory database lives only as long as a connection to it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
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
			player TEXT NOT NULL,
			variant TEXT NOT NULL,
			won INTEGER NOT NULL,
			seconds INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(variant, won, seconds);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the scoreboard.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Seconds < 0 {
		return 0, fmt.Errorf("storage: negative duration %d", r.Seconds)
	}

	res, err := s.db.Exec(
		"INSERT INTO results (player, variant, won, seconds) VALUES (?, ?, ?, ?)",
		r.Player, r.Variant, r.Won, r.Seconds,
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

// BestTimes retrieves the fastest N wins for the given variant.
// Ties keep insertion order.
func (s *Store) BestTimes(variant string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.query(
		`SELECT id, player, variant, won, seconds, created_at
		 FROM results
		 WHERE variant = ? AND won = 1
		 ORDER BY seconds ASC, id ASC
		 LIMIT ?`,
		variant, limit,
	)
}

// RecentResults retrieves the latest N results of any variant, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.query(
		`SELECT id, player, variant, won, seconds, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) query(q string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Variant, &r.Won, &r.Seconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats retrieves aggregated statistics for the given variant.
func (s *Store) Stats(variant string) (*Stats, error) {
	stats := &Stats{Variant: variant}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(won), 0),
		        COALESCE(MIN(CASE WHEN won = 1 THEN seconds END), 0),
		        COALESCE(AVG(CASE WHEN won = 1 THEN seconds END), 0)
		 FROM results WHERE variant = ?`,
		variant,
	).Scan(&stats.Played, &stats.Won, &stats.BestSeconds, &stats.AvgWinSeconds)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE variant = ? ORDER BY id DESC LIMIT 1`,
		variant,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
