// Package history records evaluated expressions in a SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Entry is one evaluated expression.
type Entry struct {
	ID         string    `json:"id"`
	Time       time.Time `json:"time"`
	Expression string    `json:"expression"`
	// Result is the formatted result. It is empty if evaluation failed.
	Result string `json:"result,omitempty"`
	// Error is the evaluation error message, if any.
	Error string `json:"error,omitempty"`
}

// Failed reports whether the entry records an error.
func (e *Entry) Failed() bool {
	return e.Error != ""
}

// Config holds configuration for a Store.
type Config struct {
	Path string
}

// Store persists history entries.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens or creates the history database at cfg.Path.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("history: no database path")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		ts INTEGER NOT NULL,
		expression TEXT NOT NULL,
		result TEXT NOT NULL DEFAULT '',
		error TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_history_ts ON history(ts);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores an entry. A missing ID or time is filled in.
func (s *Store) Record(ctx context.Context, e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (id, ts, expression, result, error) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Time.UnixNano(), e.Expression, e.Result, e.Error)
	if err != nil {
		return fmt.Errorf("failed to record entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. A limit of 0 or less
// returns every entry.
func (s *Store) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, ts, expression, result, error FROM history ORDER BY ts DESC, rowid DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.ID, &ts, &e.Expression, &e.Result, &e.Error); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.Time = time.Unix(0, ts)
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}

// Clear deletes every entry and returns how many there were.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.ExecContext(ctx, `DELETE FROM history`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return res.RowsAffected()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
