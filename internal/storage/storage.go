package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikbrunner/nt/internal/model"
)

// Storage defines the interface for persisting the dial.
type Storage interface {
	Load() ([]model.Entry, error)
	Save(entries []model.Entry) error
}

// JSONStorage implements Storage using a JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads the dial from the JSON file.
// Returns an empty dial if the file doesn't exist.
func (s *JSONStorage) Load() ([]model.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Entry{}, nil
		}
		return nil, err
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.Entry{}
	}

	// A corrupt file surfaces here rather than as odd behavior later.
	if err := model.Validate(entries); err != nil {
		return nil, fmt.Errorf("invalid dial in %s: %w", s.path, err)
	}

	return entries, nil
}

// Save writes the dial to the JSON file.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(entries []model.Entry) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	if entries == nil {
		entries = []model.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// DefaultDialPath returns the default dial path: ~/.config/nt/dial.json
func DefaultDialPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "nt", "dial.json"), nil
}

// OpenStorage opens the appropriate storage backend.
// Prefers SQLite if the database file exists, otherwise falls back to JSON.
func OpenStorage() (Storage, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteStorage(sqlitePath)
	}

	jsonPath, err := DefaultDialPath()
	if err != nil {
		return nil, err
	}
	return NewJSONStorage(jsonPath), nil
}
