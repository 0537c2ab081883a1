package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// SettingsFile is the optional settings file looked up in the working directory
const SettingsFile = "moodlists.toml"

// Default values
const (
	DefaultDataFile     = "playlists.csv"
	DefaultWindowWidth  = 700
	DefaultWindowHeight = 420
	DefaultGridColumns  = 4
	DefaultLanguage     = "en"
)

// Supported UI languages
var supportedLanguages = map[string]string{
	"en": "English",
	"ru": "Русский",
	"pt": "Português",
}

// Settings holds read-only application configuration
type Settings struct {
	DataFile     string `toml:"data_file"`
	WindowWidth  int    `toml:"window_width"`
	WindowHeight int    `toml:"window_height"`
	GridColumns  int    `toml:"grid_columns"`
	Language     string `toml:"language"`
}

// DefaultSettings returns the built-in configuration
func DefaultSettings() Settings {
	return Settings{
		DataFile:     DefaultDataFile,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		GridColumns:  DefaultGridColumns,
		Language:     DefaultLanguage,
	}
}

// LoadSettings reads settings from a TOML file.
// A missing file is not an error; defaults are returned instead.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings file: %w", err)
	}

	return settings.Normalize(), nil
}

// Normalize replaces invalid values with defaults
func (s Settings) Normalize() Settings {
	if s.DataFile == "" {
		s.DataFile = DefaultDataFile
	}
	if s.WindowWidth <= 0 {
		s.WindowWidth = DefaultWindowWidth
	}
	if s.WindowHeight <= 0 {
		s.WindowHeight = DefaultWindowHeight
	}
	if s.GridColumns <= 0 {
		s.GridColumns = DefaultGridColumns
	}
	if _, ok := supportedLanguages[s.Language]; !ok {
		s.Language = DefaultLanguage
	}
	return s
}

// GetLanguageOptions returns available language options
func GetLanguageOptions() map[string]string {
	options := make(map[string]string, len(supportedLanguages))
	for code, name := range supportedLanguages {
		options[code] = name
	}
	return options
}
