package driving

import "github.com/hercnav-labs/hercnav-cli/internal/core/domain"

// SettingsService manages the tool configuration.
type SettingsService interface {
	// Get retrieves current settings, with defaults applied for unset
	// keys.
	Get() (domain.Settings, error)

	// Save persists settings.
	Save(settings domain.Settings) error

	// SetDatabasePath updates the simulator database location. Empty
	// reverts to the standard Saved Games location.
	SetDatabasePath(path string) error

	// SetBackup toggles the copy-on-open backup.
	SetBackup(enabled bool) error

	// SetDefaultAltFeet updates the elevation applied to new waypoints
	// added without one. Nil clears it.
	SetDefaultAltFeet(feet *float64) error
}
