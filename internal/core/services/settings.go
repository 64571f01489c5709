package services

import (
	"fmt"

	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
	"github.com/hercnav-labs/hercnav-cli/internal/core/ports/driven"
	"github.com/hercnav-labs/hercnav-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDatabasePath = "db_path"
	keyBackup       = "backup"
	keyDefaultAltFt = "default_alt_ft"
)

// SettingsService manages the tool configuration over a ConfigStore.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings, with defaults applied for unset keys.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if path := s.configStore.GetString(keyDatabasePath); path != "" {
		settings.DatabasePath = path
	}
	if _, ok := s.configStore.Get(keyBackup); ok {
		settings.Backup = s.configStore.GetBool(keyBackup)
	}
	if raw, ok := s.configStore.Get(keyDefaultAltFt); ok {
		if feet, ok := asFloat(raw); ok {
			settings.DefaultAltFeet = &feet
		}
	}

	return settings, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings domain.Settings) error {
	if err := s.configStore.Set(keyDatabasePath, settings.DatabasePath); err != nil {
		return fmt.Errorf("saving database path: %w", err)
	}
	if err := s.configStore.Set(keyBackup, settings.Backup); err != nil {
		return fmt.Errorf("saving backup setting: %w", err)
	}
	var altValue any
	if settings.DefaultAltFeet != nil {
		altValue = *settings.DefaultAltFeet
	} else {
		altValue = ""
	}
	if err := s.configStore.Set(keyDefaultAltFt, altValue); err != nil {
		return fmt.Errorf("saving default altitude: %w", err)
	}
	return s.configStore.Save()
}

// SetDatabasePath updates the simulator database location.
func (s *SettingsService) SetDatabasePath(path string) error {
	return s.configStore.Set(keyDatabasePath, path)
}

// SetBackup toggles the copy-on-open backup.
func (s *SettingsService) SetBackup(enabled bool) error {
	return s.configStore.Set(keyBackup, enabled)
}

// SetDefaultAltFeet updates the elevation applied to new waypoints added
// without one.
func (s *SettingsService) SetDefaultAltFeet(feet *float64) error {
	if feet == nil {
		return s.configStore.Set(keyDefaultAltFt, "")
	}
	return s.configStore.Set(keyDefaultAltFt, *feet)
}

// asFloat handles the numeric types TOML values decode into.
func asFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
