package domain

// Settings holds the tool configuration persisted in the config file.
type Settings struct {
	// DatabasePath is the simulator database location. Empty means the
	// standard Saved Games location is resolved at startup.
	DatabasePath string

	// Backup controls whether a .bak copy of the database is taken
	// before it is opened for writing.
	Backup bool

	// DefaultAltFeet is the elevation applied when a new waypoint is
	// added without one. Nil leaves the column unset so the simulator
	// falls back to its own default.
	DefaultAltFeet *float64
}

// DefaultSettings returns settings with sensible defaults.
// Backups are on: the simulator owns the database file and a bad write
// is otherwise unrecoverable.
func DefaultSettings() Settings {
	return Settings{
		Backup: true,
	}
}
