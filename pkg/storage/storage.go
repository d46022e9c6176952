// Package storage caches fetched weekly archive listings in a local
// sqlite database so repeat resolutions replay from disk instead of
// hitting the archive again.
package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type DB struct {
	sql *sql.DB
}

// DefaultPath resolves the cache database path. An empty dbPath lands in
// the user config directory.
func DefaultPath(dbPath string) (string, error) {
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "gnsscope", "gnsscope.sqlite"), nil
	}
	return filepath.Abs(dbPath)
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS listings (
  week    INTEGER NOT NULL,
  line_no INTEGER NOT NULL,
  line    TEXT NOT NULL,
  PRIMARY KEY (week, line_no)
);
CREATE TABLE IF NOT EXISTS fetches (
  week       INTEGER PRIMARY KEY,
  fetched_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  line_count INTEGER NOT NULL
);
    `); err != nil {
		return nil, err
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// PutWeek replaces the cached listing for one GPS week.
func (d *DB) PutWeek(ctx context.Context, week int, lines []string) (err error) {
	tx, err := d.sql.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM listings WHERE week = ?", week); err != nil {
		return err
	}
	for i, line := range lines {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO listings(week, line_no, line) VALUES(?,?,?)", week, i, line); err != nil {
			return err
		}
	}
	if _, err = tx.ExecContext(ctx, `
INSERT INTO fetches(week, fetched_at, line_count) VALUES(?, CURRENT_TIMESTAMP, ?)
ON CONFLICT(week) DO UPDATE SET fetched_at = CURRENT_TIMESTAMP, line_count = excluded.line_count`,
		week, len(lines)); err != nil {
		return err
	}
	return tx.Commit()
}

// GetWeek returns the cached listing for one GPS week in original line
// order. The boolean is false when the week has never been cached; a
// cached-but-empty week is a hit, matching the archive occasionally
// listing nothing for a future week.
func (d *DB) GetWeek(ctx context.Context, week int) ([]string, bool, error) {
	var count int
	err := d.sql.QueryRowContext(ctx,
		"SELECT line_count FROM fetches WHERE week = ?", week).Scan(&count)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	rows, err := d.sql.QueryContext(ctx,
		"SELECT line FROM listings WHERE week = ? ORDER BY line_no", week)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	lines := make([]string, 0, count)
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, false, err
		}
		lines = append(lines, line)
	}
	return lines, true, rows.Err()
}

// Stats summarizes the cached weeks in ascending week order.
func (d *DB) Stats(ctx context.Context) ([]WeekStat, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT week, fetched_at, line_count FROM fetches ORDER BY week")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []WeekStat
	for rows.Next() {
		var (
			s  WeekStat
			ts string
		)
		if err := rows.Scan(&s.Week, &ts, &s.LineCount); err != nil {
			return nil, err
		}
		if parsed, err := time.Parse("2006-01-02 15:04:05", ts); err == nil {
			s.FetchedAt = parsed.UTC()
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
