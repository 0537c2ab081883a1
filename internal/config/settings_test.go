package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), SettingsFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}
	return path
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.DataFile != "playlists.csv" {
		t.Errorf("Expected default data file playlists.csv, got %s", settings.DataFile)
	}
	if settings.GridColumns != 4 {
		t.Errorf("Expected 4 grid columns, got %d", settings.GridColumns)
	}
	if settings.WindowWidth != 700 || settings.WindowHeight != 420 {
		t.Errorf("Expected 700x420 window, got %dx%d", settings.WindowWidth, settings.WindowHeight)
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "nonexistent.toml"))
	if err != nil {
		t.Errorf("Expected no error for non-existent file, got: %v", err)
	}
	if settings != DefaultSettings() {
		t.Errorf("Expected defaults, got %+v", settings)
	}
}

func TestLoadSettings_Overrides(t *testing.T) {
	path := writeSettings(t, `
data_file = "moods.csv"
grid_columns = 3
language = "pt"
`)

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	if settings.DataFile != "moods.csv" {
		t.Errorf("Expected data file moods.csv, got %s", settings.DataFile)
	}
	if settings.GridColumns != 3 {
		t.Errorf("Expected 3 grid columns, got %d", settings.GridColumns)
	}
	if settings.Language != "pt" {
		t.Errorf("Expected language pt, got %s", settings.Language)
	}
	if settings.WindowWidth != DefaultWindowWidth {
		t.Errorf("Unset values should keep defaults, got width %d", settings.WindowWidth)
	}
}

func TestLoadSettings_InvalidValuesClamped(t *testing.T) {
	path := writeSettings(t, `
data_file = ""
window_width = -5
grid_columns = 0
language = "xx"
`)

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if settings != DefaultSettings() {
		t.Errorf("Expected invalid values to fall back to defaults, got %+v", settings)
	}
}

func TestLoadSettings_Malformed(t *testing.T) {
	path := writeSettings(t, "grid_columns = [not valid")

	settings, err := LoadSettings(path)
	if err == nil {
		t.Error("Expected error for malformed settings file")
	}
	if settings != DefaultSettings() {
		t.Errorf("Expected defaults on parse failure, got %+v", settings)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	options := GetLanguageOptions()

	expectedLangs := []string{"en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
