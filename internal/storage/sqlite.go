package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/nikbrunner/nt/internal/model"
)

const currentSchemaVersion = 1

// SQLiteStorage implements Storage using a SQLite database.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys and set pragmas for performance
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// migrate runs database migrations.
func (s *SQLiteStorage) migrate() error {
	// Check current schema version
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema. Entries form one flat table:
// top level rows have a NULL parent_id, folder children point at their
// folder. Position orders rows within their scope.
func (s *SQLiteStorage) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY NOT NULL,
			kind TEXT NOT NULL,
			title TEXT NOT NULL,
			url TEXT NOT NULL DEFAULT '',
			icon TEXT NOT NULL DEFAULT '',
			parent_id TEXT,
			position INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (parent_id) REFERENCES entries(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_entries_parent_id ON entries(parent_id);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads the dial from the SQLite database.
func (s *SQLiteStorage) Load() ([]model.Entry, error) {
	entries := []model.Entry{}

	// Top level first, in dial order.
	rows, err := s.db.Query(`
		SELECT id, kind, title, url, icon
		FROM entries
		WHERE parent_id IS NULL
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slot := make(map[string]int)
	for rows.Next() {
		var e model.Entry
		var kind string
		if err := rows.Scan(&e.ID, &kind, &e.Title, &e.URL, &e.Icon); err != nil {
			return nil, err
		}
		e.Kind = model.Kind(kind)
		if e.Kind == model.KindFolder {
			e.Children = []model.Entry{}
		}
		slot[e.ID] = len(entries)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Children attach to their folders, ordered within each folder.
	rows, err = s.db.Query(`
		SELECT id, kind, title, url, icon, parent_id
		FROM entries
		WHERE parent_id IS NOT NULL
		ORDER BY parent_id, position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Entry
		var kind, parentID string
		if err := rows.Scan(&c.ID, &kind, &c.Title, &c.URL, &c.Icon, &parentID); err != nil {
			return nil, err
		}
		c.Kind = model.Kind(kind)

		at, ok := slot[parentID]
		if !ok {
			return nil, fmt.Errorf("entry %q references missing folder %q", c.ID, parentID)
		}
		entries[at].Children = append(entries[at].Children, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := model.Validate(entries); err != nil {
		return nil, fmt.Errorf("invalid dial in %s: %w", s.path, err)
	}

	return entries, nil
}

// Save writes the dial to the SQLite database.
// Uses a transaction for atomicity - all or nothing.
func (s *SQLiteStorage) Save(entries []model.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Clear existing data
	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO entries (id, kind, title, url, icon, parent_id, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	// Folders insert before their children, so foreign keys stay on.
	for i, e := range entries {
		if _, err := stmt.Exec(e.ID, string(e.Kind), e.Title, e.URL, e.Icon, nil, i); err != nil {
			return err
		}
		for j, c := range e.Children {
			if _, err := stmt.Exec(c.ID, string(c.Kind), c.Title, c.URL, c.Icon, e.ID, j); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// DefaultSQLitePath returns the default SQLite database path: ~/.config/nt/dial.db
func DefaultSQLitePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "nt", "dial.db"), nil
}
