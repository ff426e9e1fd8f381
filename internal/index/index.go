// Package index maintains a derived SQLite mirror of the paper store
// for list queries and stats. The JSONL store is the source of truth;
// the index is rebuilt whenever the stored content hash no longer
// matches the store file.
package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/zyho/litnotes/internal/paper"
	"github.com/zyho/litnotes/internal/store"
)

const createPapersDDL = `CREATE TABLE IF NOT EXISTS papers (
  topic TEXT NOT NULL,
  topic_num INTEGER NOT NULL,
  pos INTEGER NOT NULL,
  title TEXT NOT NULL,
  authors TEXT NOT NULL,
  year INTEGER NOT NULL,
  journal TEXT NOT NULL,
  paragraphs INTEGER NOT NULL
)`

const createMetaDDL = `CREATE TABLE IF NOT EXISTS _meta (
  key TEXT PRIMARY KEY,
  value TEXT
)`

// DB wraps the index database.
type DB struct {
	db *sql.DB
}

// Open opens (creating if needed) the index database at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening index database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	for _, ddl := range []string{
		createPapersDDL,
		createMetaDDL,
		"CREATE INDEX IF NOT EXISTS idx_papers_topic ON papers(topic)",
		"CREATE INDEX IF NOT EXISTS idx_papers_year ON papers(year)",
	} {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating index tables: %w", err)
		}
	}

	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.db.Close()
}

// StoredHash returns the store content hash recorded at the last
// rebuild, or "" when the index has never been built.
func (d *DB) StoredHash() (string, error) {
	var hash string
	err := d.db.QueryRow("SELECT value FROM _meta WHERE key = 'store_hash'").Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading stored hash: %w", err)
	}
	return hash, nil
}

// Stale reports whether the index no longer matches the store file at
// storePath.
func (d *DB) Stale(storePath string) (bool, error) {
	current, err := store.ComputeHash(storePath)
	if err != nil {
		return true, err
	}
	stored, err := d.StoredHash()
	if err != nil {
		return true, err
	}
	return current != stored, nil
}

// Rebuild clears the index and reinserts every entry from s, then
// records the store file hash and rebuild time.
func (d *DB) Rebuild(s *store.Store, storePath string) error {
	hash, err := store.ComputeHash(storePath)
	if err != nil {
		return fmt.Errorf("hashing store file: %w", err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("starting rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM papers"); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}

	for _, t := range paper.Topics {
		for i, p := range s.Papers(t) {
			_, err := tx.Exec(
				"INSERT INTO papers (topic, topic_num, pos, title, authors, year, journal, paragraphs) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
				string(t), t.Number(), i, p.Title, paper.FormatAuthors(p.Authors), p.Year, p.Journal, len(p.Abstract),
			)
			if err != nil {
				return fmt.Errorf("inserting %q: %w", p.Title, err)
			}
		}
	}

	if _, err := tx.Exec("INSERT OR REPLACE INTO _meta (key, value) VALUES ('store_hash', ?)", hash); err != nil {
		return fmt.Errorf("recording store hash: %w", err)
	}
	if _, err := tx.Exec("INSERT OR REPLACE INTO _meta (key, value) VALUES ('last_rebuild', ?)", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("recording rebuild time: %w", err)
	}

	return tx.Commit()
}

// Row is one indexed entry.
type Row struct {
	Topic      string `json:"topic"`
	Title      string `json:"title"`
	Authors    string `json:"authors"`
	Year       int    `json:"year"`
	Journal    string `json:"journal"`
	Paragraphs int    `json:"paragraphs"`
}

// Filter narrows List results. Zero values leave a dimension
// unfiltered.
type Filter struct {
	Topic paper.Topic
	Year  int // Exact year
	Since int // Minimum year, inclusive
}

// List returns indexed entries matching f, in topic enumeration order
// then store insertion order.
func (d *DB) List(f Filter) ([]Row, error) {
	query := "SELECT topic, title, authors, year, journal, paragraphs FROM papers"
	var conds []string
	var args []any

	if f.Topic != "" {
		conds = append(conds, "topic = ?")
		args = append(args, string(f.Topic))
	}
	if f.Year != 0 {
		conds = append(conds, "year = ?")
		args = append(args, f.Year)
	}
	if f.Since != 0 {
		conds = append(conds, "year >= ?")
		args = append(args, f.Since)
	}

	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY topic_num, pos"

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Topic, &r.Title, &r.Authors, &r.Year, &r.Journal, &r.Paragraphs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns the number of indexed entries.
func (d *DB) Count() (int, error) {
	var n int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM papers").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}

// LastRebuild returns the time of the last rebuild, or the zero time
// when the index has never been built.
func (d *DB) LastRebuild() (time.Time, error) {
	var value string
	err := d.db.QueryRow("SELECT value FROM _meta WHERE key = 'last_rebuild'").Scan(&value)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("reading rebuild time: %w", err)
	}
	return time.Parse(time.RFC3339, value)
}
