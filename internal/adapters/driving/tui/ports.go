// Package tui provides an interactive terminal user interface for hercnav.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/hercnav-labs/hercnav-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Waypoint orchestrates parsing, encoding and persistence.
	Waypoint driving.WaypointService

	// Calibration provides the diagnostic operations.
	Calibration driving.CalibrationService

	// Settings manages application settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	waypoint driving.WaypointService,
	calibration driving.CalibrationService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Waypoint:    waypoint,
		Calibration: calibration,
		Settings:    settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Waypoint == nil {
		return ErrMissingWaypointService
	}
	return nil
}
