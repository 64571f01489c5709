package driven

// ConfigStore persists the tool configuration. hercnav keeps three flat
// keys (db_path, backup, default_alt_ft); the store is deliberately a
// small key/value surface rather than a typed settings struct so the
// settings service owns defaulting and type coercion.
type ConfigStore interface {
	// Get retrieves a raw value and whether the key is present.
	// Presence matters: an absent backup key means "use the default",
	// not "false".
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" when the key is absent
	// or holds another type.
	GetString(key string) string

	// GetBool retrieves a boolean value, or false when the key is
	// absent or holds another type.
	GetBool(key string) bool

	// Set stores a value. Implementations write through so that a
	// single "config set" invocation survives the process exit.
	Set(key string, value any) error

	// Save persists all current values.
	Save() error

	// Load re-reads values from the backing storage.
	Load() error

	// Path names the backing storage location, for display.
	Path() string
}
