// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/catalog/catalog.go
// Summary: SQLite catalog of recordings with FTS5 search over their text.
//
// Each recording path has one row holding its stats, the GIF it was last
// exported to, and the escape-stripped text used for search. Searches use the
// trigram tokenizer so any substring of the output matches.

package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry describes one cataloged recording.
type Entry struct {
	ID         string
	Path       string
	Frames     int
	Duration   time.Duration
	Bytes      int
	CreatedAt  time.Time
	ExportedTo string
}

// Match is a search hit with a short excerpt around the first occurrence.
type Match struct {
	Entry
	Excerpt string
}

// Catalog is safe for concurrent use.
type Catalog struct {
	db  *sql.DB
	now func() time.Time
	mu  sync.RWMutex
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithClock replaces the clock used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		c.now = now
	}
}

// Current schema version - increment when the FTS layout changes.
const catalogSchemaVersion = 1

const catalogSchema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS recordings (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    path TEXT NOT NULL UNIQUE,
    frames INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL,
    bytes INTEGER NOT NULL,
    created_at INTEGER NOT NULL,       -- UnixNano
    exported_to TEXT NOT NULL DEFAULT '',
    text TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_recordings_created ON recordings(created_at);
`

const catalogFTSSchema = `
CREATE VIRTUAL TABLE IF NOT EXISTS recording_text USING fts5(
    text,
    content='recordings',
    content_rowid='seq',
    tokenize='trigram'
);

CREATE TRIGGER IF NOT EXISTS recordings_ai AFTER INSERT ON recordings BEGIN
    INSERT INTO recording_text(rowid, text) VALUES (new.seq, new.text);
END;

CREATE TRIGGER IF NOT EXISTS recordings_au AFTER UPDATE ON recordings BEGIN
    INSERT INTO recording_text(recording_text, rowid, text) VALUES ('delete', old.seq, old.text);
    INSERT INTO recording_text(rowid, text) VALUES (new.seq, new.text);
END;

CREATE TRIGGER IF NOT EXISTS recordings_ad AFTER DELETE ON recordings BEGIN
    INSERT INTO recording_text(recording_text, rowid, text) VALUES ('delete', old.seq, old.text);
END;
`

// Open opens or creates the catalog database at path.
func Open(path string, opts ...Option) (*Catalog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create catalog dir: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(2000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect catalog: %w", err)
	}
	if _, err := db.Exec(catalogSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create catalog schema: %w", err)
	}
	rebuild, err := migrateCatalog(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate catalog: %w", err)
	}
	if _, err := db.Exec(catalogFTSSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create catalog FTS schema: %w", err)
	}
	if rebuild {
		if _, err := db.Exec("INSERT INTO recording_text(recording_text) VALUES ('rebuild')"); err != nil {
			db.Close()
			return nil, fmt.Errorf("rebuild catalog index: %w", err)
		}
		log.Printf("Catalog: Rebuilt search index")
	}

	c := &Catalog{db: db, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// migrateCatalog drops the FTS table when the schema version changed and
// reports whether it must be rebuilt.
func migrateCatalog(db *sql.DB) (bool, error) {
	var current int
	if err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&current); err != nil {
		current = 0
	}
	if current == catalogSchemaVersion {
		return false, nil
	}
	log.Printf("Catalog: Migrating schema from version %d to %d", current, catalogSchemaVersion)

	for _, stmt := range []string{
		"DROP TRIGGER IF EXISTS recordings_ai",
		"DROP TRIGGER IF EXISTS recordings_au",
		"DROP TRIGGER IF EXISTS recordings_ad",
		"DROP TABLE IF EXISTS recording_text",
		"DELETE FROM schema_version",
	} {
		if _, err := db.Exec(stmt); err != nil {
			return false, fmt.Errorf("migration failed on '%s': %w", stmt, err)
		}
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", catalogSchemaVersion); err != nil {
		return false, fmt.Errorf("update schema version: %w", err)
	}
	return true, nil
}

// Add records or refreshes the entry for e.Path with its searchable text.
// New paths get a fresh ID and CreatedAt; existing ones keep both.
func (c *Catalog) Add(e Entry, text string) (Entry, error) {
	if e.Path == "" {
		return Entry{}, fmt.Errorf("catalog add: empty path")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.Exec(`
		INSERT INTO recordings (id, path, frames, duration_ms, bytes, created_at, exported_to, text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			frames = excluded.frames,
			duration_ms = excluded.duration_ms,
			bytes = excluded.bytes,
			text = excluded.text
	`, uuid.NewString(), e.Path, e.Frames, e.Duration.Milliseconds(), e.Bytes,
		c.now().UnixNano(), e.ExportedTo, text)
	if err != nil {
		return Entry{}, fmt.Errorf("catalog add %s: %w", e.Path, err)
	}
	return c.getLocked(e.Path)
}

// MarkExported stores the GIF path a recording was last exported to.
func (c *Catalog) MarkExported(path, gif string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	res, err := c.db.Exec("UPDATE recordings SET exported_to = ? WHERE path = ?", gif, path)
	if err != nil {
		return fmt.Errorf("catalog mark exported %s: %w", path, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("catalog mark exported %s: %w", path, ErrNotFound)
	}
	return nil
}

// Get returns the entry for path.
func (c *Catalog) Get(path string) (Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.getLocked(path)
}

func (c *Catalog) getLocked(path string) (Entry, error) {
	row := c.db.QueryRow(`
		SELECT id, path, frames, duration_ms, bytes, created_at, exported_to
		FROM recordings WHERE path = ?
	`, path)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("catalog get %s: %w", path, ErrNotFound)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("catalog get %s: %w", path, err)
	}
	return e, nil
}

// List returns every entry, newest first.
func (c *Catalog) List() ([]Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rows, err := c.db.Query(`
		SELECT id, path, frames, duration_ms, bytes, created_at, exported_to
		FROM recordings
		ORDER BY created_at DESC, seq DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("catalog list: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("catalog list: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Search finds recordings whose text contains query, newest first.
// Queries shorter than 3 characters use LIKE since trigrams need 3.
func (c *Catalog) Search(query string, limit int) ([]Match, error) {
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	var rows *sql.Rows
	var err error
	if len(query) < 3 {
		like := "%" + strings.ReplaceAll(strings.ReplaceAll(strings.ReplaceAll(query, `\`, `\\`), "%", `\%`), "_", `\_`) + "%"
		rows, err = c.db.Query(`
			SELECT id, path, frames, duration_ms, bytes, created_at, exported_to, text
			FROM recordings
			WHERE text LIKE ? ESCAPE '\'
			ORDER BY created_at DESC, seq DESC
			LIMIT ?
		`, like, limit)
	} else {
		quoted := `"` + strings.ReplaceAll(query, `"`, `""`) + `"`
		rows, err = c.db.Query(`
			SELECT r.id, r.path, r.frames, r.duration_ms, r.bytes, r.created_at, r.exported_to, r.text
			FROM recording_text
			JOIN recordings r ON r.seq = recording_text.rowid
			WHERE recording_text MATCH ?
			ORDER BY r.created_at DESC, r.seq DESC
			LIMIT ?
		`, quoted, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog search: %w", err)
	}
	defer rows.Close()

	var out []Match
	for rows.Next() {
		var m Match
		var durMS, created int64
		var text string
		if err := rows.Scan(&m.ID, &m.Path, &m.Frames, &durMS, &m.Bytes, &created, &m.ExportedTo, &text); err != nil {
			return nil, fmt.Errorf("catalog search: %w", err)
		}
		m.Duration = time.Duration(durMS) * time.Millisecond
		m.CreatedAt = time.Unix(0, created)
		m.Excerpt = Excerpt(text, query, 30)
		out = append(out, m)
	}
	return out, rows.Err()
}

// Close closes the database.
func (c *Catalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var e Entry
	var durMS, created int64
	if err := s.Scan(&e.ID, &e.Path, &e.Frames, &durMS, &e.Bytes, &created, &e.ExportedTo); err != nil {
		return Entry{}, err
	}
	e.Duration = time.Duration(durMS) * time.Millisecond
	e.CreatedAt = time.Unix(0, created)
	return e, nil
}
