package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Settings holds the start page customization.
type Settings struct {
	Theme       string `json:"theme"`       // accent palette name
	Columns     int    `json:"columns"`     // 0 = fit to terminal width
	TopOffset   int    `json:"topOffset"`   // blank rows above the clock
	ClockFormat string `json:"clockFormat"` // "24" or "12"
	SearchURL   string `json:"searchUrl"`   // search handoff prefix, query appended
}

// DefaultSettings returns the default customization.
func DefaultSettings() Settings {
	return Settings{
		Theme:       "teal",
		Columns:     0,
		TopOffset:   1,
		ClockFormat: "24",
		SearchURL:   "https://duckduckgo.com/?q=",
	}
}

// LoadSettings reads settings from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			settings := DefaultSettings()
			// Create the settings file with defaults
			if saveErr := SaveSettings(path, &settings); saveErr != nil {
				// Non-fatal: return defaults even if save fails
				return &settings, nil
			}
			return &settings, nil
		}
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields. Zero is a valid value for the
	// numeric fields (auto columns, no offset), so only strings backfill.
	defaults := DefaultSettings()
	if settings.Theme == "" {
		settings.Theme = defaults.Theme
	}
	if settings.ClockFormat == "" {
		settings.ClockFormat = defaults.ClockFormat
	}
	if settings.SearchURL == "" {
		settings.SearchURL = defaults.SearchURL
	}

	return &settings, nil
}

// SaveSettings writes settings to the JSON file.
// Creates the directory if it doesn't exist.
func SaveSettings(path string, settings *Settings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultSettingsPath returns the default settings path: ~/.config/nt/settings.json
func DefaultSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "nt", "settings.json"), nil
}
