package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotConfigured is returned by operations on a nil or closed store
var ErrNotConfigured = errors.New("score store is not configured")

// Result is one finished session
type Result struct {
	ID         int64
	SessionID  string
	Limit      string
	Score      int
	Reason     string
	Elapsed    float64 // seconds of play
	RecordedAt time.Time
}

// Store persists session results in SQLite
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the score database, creating its directory
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	clean := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(clean), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", clean+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := createSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

func createSchema(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			time_limit TEXT NOT NULL,
			score INTEGER NOT NULL,
			reason TEXT NOT NULL,
			elapsed REAL NOT NULL DEFAULT 0,
			recorded_at INTEGER NOT NULL
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_results_session ON results(session_id);`,
		`CREATE INDEX IF NOT EXISTS idx_results_limit_score ON results(time_limit, score DESC);`,
	}

	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Record stores a result, a repeated session id is ignored
func (s *Store) Record(ctx context.Context, r Result) error {
	if s == nil || s.db == nil {
		return ErrNotConfigured
	}
	r.SessionID = strings.TrimSpace(r.SessionID)
	r.Limit = strings.TrimSpace(r.Limit)
	if r.SessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if r.Limit == "" {
		return fmt.Errorf("time limit is required")
	}
	if r.RecordedAt.IsZero() {
		r.RecordedAt = s.now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO results (session_id, time_limit, score, reason, elapsed, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Limit, r.Score, r.Reason, r.Elapsed, r.RecordedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// Best returns the highest score recorded for a time limit, false when none exist
func (s *Store) Best(ctx context.Context, limit string) (int, bool, error) {
	if s == nil || s.db == nil {
		return 0, false, ErrNotConfigured
	}

	var best sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT MAX(score) FROM results WHERE time_limit = ?`, limit,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("query best: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// History returns the most recent results for a time limit, newest first
func (s *Store) History(ctx context.Context, limit string, n int) ([]Result, error) {
	if s == nil || s.db == nil {
		return nil, ErrNotConfigured
	}
	if n <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, time_limit, score, reason, elapsed, recorded_at
		 FROM results WHERE time_limit = ? ORDER BY recorded_at DESC, id DESC LIMIT ?`,
		limit, n,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		var at int64
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Limit, &r.Score, &r.Reason, &r.Elapsed, &at); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.RecordedAt = time.UnixMilli(at)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return out, nil
}
