package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/nikbrunner/nt/internal/storage"
)

func TestBackupAndRestore(t *testing.T) {
	tmpDir := t.TempDir()

	dial := sampleDial()
	settings := storage.DefaultSettings()
	settings.Theme = "mono"

	path, err := storage.Backup(tmpDir, dial, &settings)
	assert.NilError(t, err)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("backup file missing: %s", path)
	}

	entries, restored, err := storage.Restore(path)
	assert.NilError(t, err)
	assert.DeepEqual(t, entries, dial)
	if restored == nil || restored.Theme != "mono" {
		t.Errorf("settings not restored: %+v", restored)
	}
}

func TestRestore_WithoutSettings(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nt-backup-20250101-120000.json")

	snapshot := `{"createdAt": "2025-01-01T12:00:00Z", "entries": []}`
	assert.NilError(t, os.WriteFile(path, []byte(snapshot), 0644))

	entries, settings, err := storage.Restore(path)
	assert.NilError(t, err)
	if len(entries) != 0 {
		t.Errorf("expected empty dial, got %d entries", len(entries))
	}
	if settings != nil {
		t.Errorf("expected nil settings, got %+v", settings)
	}
}

func TestRestore_RejectsInvalidDial(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nt-backup-bad.json")

	snapshot := `{"entries": [{"id": "", "type": "link", "title": "broken", "url": "https://x.example"}]}`
	assert.NilError(t, os.WriteFile(path, []byte(snapshot), 0644))

	if _, _, err := storage.Restore(path); err == nil {
		t.Error("expected error for entry without id, got nil")
	}
}

func TestListBackups(t *testing.T) {
	tmpDir := t.TempDir()

	names := []string{
		"nt-backup-20250101-090000.json",
		"nt-backup-20250301-090000.json",
		"nt-backup-20250201-090000.json",
		"unrelated.txt",
	}
	for _, name := range names {
		assert.NilError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("{}"), 0644))
	}

	paths, err := storage.ListBackups(tmpDir)
	assert.NilError(t, err)

	if len(paths) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(paths))
	}
	// Newest first.
	if filepath.Base(paths[0]) != "nt-backup-20250301-090000.json" {
		t.Errorf("newest backup not first: %s", paths[0])
	}
	if filepath.Base(paths[2]) != "nt-backup-20250101-090000.json" {
		t.Errorf("oldest backup not last: %s", paths[2])
	}
}

func TestListBackups_MissingDir(t *testing.T) {
	paths, err := storage.ListBackups(filepath.Join(t.TempDir(), "nope"))
	assert.NilError(t, err)
	if len(paths) != 0 {
		t.Errorf("expected no backups, got %v", paths)
	}
}
