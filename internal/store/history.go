// Package store persists a history of rendered snapshots to a local
// SQLite database, so the `watch` subcommand (and any later diffing tool)
// can tell whether a page has actually changed since the last poll
// without keeping rendered text in memory across process runs.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// History is a handle on the snapshot history database.
type History struct {
	db *sql.DB
}

// Open opens (creating if absent) the SQLite database at path and ensures
// the schema exists.
func Open(path string) (*History, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("store: ping %s: %w", path, err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	url TEXT NOT NULL,
	mode TEXT NOT NULL,
	digest TEXT NOT NULL,
	rendered TEXT NOT NULL,
	taken_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_snapshots_url_mode ON snapshots(url, mode, taken_at);
`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return &History{db: db}, nil
}

// Close closes the underlying database handle.
func (h *History) Close() error {
	return h.db.Close()
}

// Entry is a single stored snapshot.
type Entry struct {
	ID       int64
	URL      string
	Mode     string
	Digest   string
	Rendered string
	TakenAt  time.Time
}

// Latest returns the most recently recorded snapshot for url/mode, or
// (Entry{}, false, nil) if none exists yet.
func (h *History) Latest(ctx context.Context, url, mode string) (Entry, bool, error) {
	row := h.db.QueryRowContext(ctx, `
SELECT id, url, mode, digest, rendered, taken_at
FROM snapshots
WHERE url = ? AND mode = ?
ORDER BY taken_at DESC
LIMIT 1`, url, mode)

	var rec Entry
	var takenAtUnix int64
	err := row.Scan(&rec.ID, &rec.URL, &rec.Mode, &rec.Digest, &rec.Rendered, &takenAtUnix)
	if err == sql.ErrNoRows {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("store: latest: %w", err)
	}
	rec.TakenAt = time.Unix(takenAtUnix, 0).UTC()
	return rec, true, nil
}

// Insert stores a new snapshot record.
func (h *History) Insert(ctx context.Context, url, mode, digest, rendered string, takenAt time.Time) error {
	_, err := h.db.ExecContext(ctx, `
INSERT INTO snapshots (url, mode, digest, rendered, taken_at)
VALUES (?, ?, ?, ?, ?)`, url, mode, digest, rendered, takenAt.Unix())
	if err != nil {
		return fmt.Errorf("store: insert: %w", err)
	}
	return nil
}
