package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nikbrunner/nt/internal/model"
)

const backupPrefix = "nt-backup-"

// Snapshot is one backup file: the dial plus settings at a point in time.
type Snapshot struct {
	CreatedAt time.Time     `json:"createdAt"`
	Settings  *Settings     `json:"settings,omitempty"`
	Entries   []model.Entry `json:"entries"`
}

// Backup writes a timestamped snapshot into dir and returns its path.
func Backup(dir string, entries []model.Entry, settings *Settings) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	if entries == nil {
		entries = []model.Entry{}
	}
	snapshot := Snapshot{
		CreatedAt: time.Now(),
		Settings:  settings,
		Entries:   entries,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", err
	}

	name := backupPrefix + snapshot.CreatedAt.Format("20060102-150405") + ".json"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// Restore reads a snapshot file back into a dial and settings.
// Settings may be nil when the snapshot carries none.
func Restore(path string) ([]model.Entry, *Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, nil, err
	}
	if snapshot.Entries == nil {
		snapshot.Entries = []model.Entry{}
	}

	if err := model.Validate(snapshot.Entries); err != nil {
		return nil, nil, fmt.Errorf("invalid snapshot %s: %w", path, err)
	}

	return snapshot.Entries, snapshot.Settings, nil
}

// ListBackups returns the snapshot paths in dir, newest first.
func ListBackups(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var paths []string
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}

	// The timestamp in the name sorts lexically, newest last.
	sort.Sort(sort.Reverse(sort.StringSlice(paths)))
	return paths, nil
}

// DefaultBackupDir returns the default backup directory: ~/.config/nt/backups
func DefaultBackupDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "nt", "backups"), nil
}
