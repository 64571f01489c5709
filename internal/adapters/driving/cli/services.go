package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driven/config/env"
	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driven/config/file"
	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driven/gridconv"
	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driven/storage/sqlite"
	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
	"github.com/hercnav-labs/hercnav-cli/internal/core/ports/driving"
	"github.com/hercnav-labs/hercnav-cli/internal/core/services"
	"github.com/hercnav-labs/hercnav-cli/internal/logger"
)

// Services are wired lazily: only the commands that touch the database
// open it, so parse/encode/config/version work without a simulator install.
var (
	waypointService    driving.WaypointService
	calibrationService driving.CalibrationService
	settingsService    driving.SettingsService

	openStore *sqlite.Store

	envOverrides *env.Overrides
)

// loadEnvOverrides reads the HERCNAV_* environment once per invocation.
// Called from the root PersistentPreRun so every command sees the
// overrides, not just the ones that open the database.
func loadEnvOverrides(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	overrides, err := env.Load(ctx)
	if err != nil {
		logger.Warn("reading environment overrides", "error", err)
		overrides = &env.Overrides{}
	}
	envOverrides = overrides
}

// SetWaypointService sets the waypoint service (used by tests).
func SetWaypointService(s driving.WaypointService) {
	waypointService = s
}

// SetCalibrationService sets the calibration service (used by tests).
func SetCalibrationService(s driving.CalibrationService) {
	calibrationService = s
}

// SetSettingsService sets the settings service (used by tests).
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// ensureSettingsService wires the TOML-backed settings service on first use.
func ensureSettingsService() error {
	if settingsService != nil {
		return nil
	}
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	settingsService = services.NewSettingsService(configStore)
	return nil
}

// ensureDatabase resolves the simulator database and wires the services
// that need it. Safe to call more than once per invocation.
func ensureDatabase(ctx context.Context) error {
	if waypointService != nil && calibrationService != nil {
		return nil
	}
	if err := ensureSettingsService(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	if envOverrides == nil {
		loadEnvOverrides(ctx)
	}
	overrides := envOverrides

	path, err := resolveDatabasePath(overrides, settings)
	if err != nil {
		return err
	}

	backup := settings.Backup && !flagNoBackup && !overrides.NoBackup
	store, err := sqlite.Open(path, sqlite.Options{Create: flagCreate, Backup: backup})
	if err != nil {
		return err
	}
	openStore = store

	converter := gridconv.NewConverter()
	if waypointService == nil {
		waypointService = services.NewWaypointService(store.WaypointStore(), converter)
	}
	if calibrationService == nil {
		calibrationService = services.NewCalibrationService(store.WaypointStore(), converter)
	}
	return nil
}

// closeDatabase releases the store if a command opened it.
func closeDatabase() {
	if openStore == nil {
		return
	}
	if err := openStore.Close(); err != nil {
		logger.Warn("closing database", "error", err)
	}
	openStore = nil
	waypointService = nil
	calibrationService = nil
}

// resolveDatabasePath applies the precedence flag > environment > config
// file > standard Saved Games location.
func resolveDatabasePath(overrides *env.Overrides, settings domain.Settings) (string, error) {
	if flagDB != "" {
		return flagDB, nil
	}
	if overrides != nil && overrides.DatabasePath != "" {
		return overrides.DatabasePath, nil
	}
	if settings.DatabasePath != "" {
		return settings.DatabasePath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, "Saved Games", "DCS.C130J", "user_data.db"), nil
}

// defaultAltFeet returns the configured default elevation, if any.
func defaultAltFeet() *float64 {
	if err := ensureSettingsService(); err != nil {
		logger.Debug("settings unavailable", "error", err)
		return nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil
	}
	return settings.DefaultAltFeet
}
