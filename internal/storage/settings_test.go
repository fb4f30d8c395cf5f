package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nikbrunner/nt/internal/storage"
)

func TestLoadSettings_CreatesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	settingsPath := filepath.Join(tmpDir, "settings.json")

	settings, err := storage.LoadSettings(settingsPath)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	defaults := storage.DefaultSettings()
	if settings.Theme != defaults.Theme {
		t.Errorf("theme mismatch: got %q, want %q", settings.Theme, defaults.Theme)
	}
	if settings.ClockFormat != defaults.ClockFormat {
		t.Errorf("clock format mismatch: got %q, want %q", settings.ClockFormat, defaults.ClockFormat)
	}

	// The file is created on first load.
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		t.Error("settings file was not created")
	}
}

func TestLoadSettings_BackfillsMissingFields(t *testing.T) {
	tmpDir := t.TempDir()
	settingsPath := filepath.Join(tmpDir, "settings.json")

	// A hand-edited file with only a theme set.
	partial := `{"theme": "rose", "columns": 4}`
	if err := os.WriteFile(settingsPath, []byte(partial), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	settings, err := storage.LoadSettings(settingsPath)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if settings.Theme != "rose" {
		t.Errorf("theme overwritten: got %q", settings.Theme)
	}
	if settings.Columns != 4 {
		t.Errorf("columns overwritten: got %d", settings.Columns)
	}
	if settings.ClockFormat == "" || settings.SearchURL == "" {
		t.Errorf("missing fields not backfilled: %+v", settings)
	}
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	settingsPath := filepath.Join(tmpDir, "nested", "settings.json")

	want := storage.Settings{
		Theme:       "amber",
		Columns:     5,
		TopOffset:   3,
		ClockFormat: "12",
		SearchURL:   "https://www.startpage.com/sp/search?query=",
	}
	if err := storage.SaveSettings(settingsPath, &want); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	got, err := storage.LoadSettings(settingsPath)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if *got != want {
		t.Errorf("round trip mismatch: got %+v, want %+v", *got, want)
	}
}
