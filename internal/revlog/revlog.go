// Package revlog keeps a local history of training-max revisions so a
// lifter can see how each max has moved across waves.
package revlog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one recorded training-max revision.
type Entry struct {
	ID         string
	Lift       string
	OldTM      float64
	NewTM      float64
	Wave       int
	RecordedAt time.Time
}

// DB is the SQLite-backed revision log.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the revision log at dir/revlog.db.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating revlog dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "revlog.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening revlog db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS revisions (
		id          TEXT PRIMARY KEY,
		lift        TEXT NOT NULL,
		old_tm      REAL NOT NULL,
		new_tm      REAL NOT NULL,
		wave        INTEGER NOT NULL,
		recorded_at TIMESTAMP NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating revisions table: %w", err)
	}

	return &DB{db: db}, nil
}

// Record appends one revision per entry, assigning fresh identifiers
// and a shared timestamp.
func (d *DB) Record(entries []Entry) error {
	now := time.Now().UTC()
	for _, e := range entries {
		_, err := d.db.Exec(
			`INSERT INTO revisions (id, lift, old_tm, new_tm, wave, recorded_at) VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), e.Lift, e.OldTM, e.NewTM, e.Wave, now,
		)
		if err != nil {
			return fmt.Errorf("recording %s revision: %w", e.Lift, err)
		}
	}
	return nil
}

// List returns the most recent revisions, newest first.
func (d *DB) List(limit int) ([]Entry, error) {
	rows, err := d.db.Query(
		`SELECT id, lift, old_tm, new_tm, wave, recorded_at
		 FROM revisions ORDER BY recorded_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying revisions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Lift, &e.OldTM, &e.NewTM, &e.Wave, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning revision: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the revision log.
func (d *DB) Close() error {
	return d.db.Close()
}
