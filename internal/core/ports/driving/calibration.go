package driving

import (
	"context"

	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
)

// ProbeRow is one named slot in a probe report. Waypoint is nil when the
// name is absent from the database.
type ProbeRow struct {
	Name     string
	Waypoint *domain.Waypoint
}

// CalibrationService provides the diagnostic operations that poke the
// simulator database directly: probing named rows and injecting the
// altitude-calibration ladder.
type CalibrationService interface {
	// Probe fetches the named rows, reporting absent names alongside
	// found ones.
	Probe(ctx context.Context, names []string) ([]ProbeRow, error)

	// Calibrate injects the fixed ten-point altitude ladder at the given
	// control point, replacing rows of the same names, and returns the
	// injected waypoints in ladder order.
	Calibrate(ctx context.Context, lat, lon float64) ([]domain.Waypoint, error)
}
