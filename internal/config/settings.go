package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"listdeck/internal/record"
)

// DefaultDateFormat renders cart item timestamps as month/day/year
// hour:minute.
const DefaultDateFormat = "01/02/2006 15:04"

// Settings are the user-editable options of config.yaml.
type Settings struct {
	// Seed loads the starter entries when a session starts.
	Seed bool `yaml:"seed"`

	// Currency prefixes prices and totals.
	Currency string `yaml:"currency"`

	// DateFormat is a Go time layout for cart item details.
	DateFormat string `yaml:"date_format"`

	// DefaultMode is the mode a session starts in.
	DefaultMode string `yaml:"default_mode"`

	// PushList is the Google Tasks list push writes to. Empty means the
	// account's default list.
	PushList string `yaml:"push_list"`

	// PDFFont is a TrueType font embedded in PDF exports. Empty means the
	// built-in Arial, which covers Windows-1252 only.
	PDFFont string `yaml:"pdf_font"`
}

// DefaultSettings returns the settings used when config.yaml is absent.
func DefaultSettings() Settings {
	return Settings{
		Seed:        true,
		Currency:    "$",
		DateFormat:  DefaultDateFormat,
		DefaultMode: record.ModeStudents.Key(),
	}
}

// LoadSettings reads path over the defaults. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}

	if s.Currency == "" {
		s.Currency = "$"
	}
	if s.DateFormat == "" {
		s.DateFormat = DefaultDateFormat
	}
	if _, err := s.Mode(); err != nil {
		return s, fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}
	return s, nil
}

// Save writes the settings as YAML with mode 0600.
func (s Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Mode returns DefaultMode parsed. Empty means the student roster.
func (s Settings) Mode() (record.Mode, error) {
	if s.DefaultMode == "" {
		return record.ModeStudents, nil
	}
	return record.ParseMode(s.DefaultMode)
}
