// Package env reads hercnav's environment overrides.
// Environment values sit between command-line flags and the config file in
// precedence: flag > environment > file > default.
package env

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Overrides holds the environment variables hercnav honours.
type Overrides struct {
	// DatabasePath overrides the simulator database location.
	DatabasePath string `env:"HERCNAV_DB"`

	// NoBackup disables the copy-on-open backup.
	NoBackup bool `env:"HERCNAV_NO_BACKUP"`

	// Verbose enables debug logging.
	Verbose bool `env:"HERCNAV_VERBOSE"`
}

// Load reads the overrides from the process environment.
func Load(ctx context.Context) (*Overrides, error) {
	var o Overrides
	if err := envconfig.Process(ctx, &o); err != nil {
		return nil, fmt.Errorf("reading environment overrides: %w", err)
	}
	return &o, nil
}
