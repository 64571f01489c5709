package services

import (
	"context"
	"fmt"

	"github.com/hercnav-labs/hercnav-cli/internal/coordtext"
	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
	"github.com/hercnav-labs/hercnav-cli/internal/core/ports/driven"
	"github.com/hercnav-labs/hercnav-cli/internal/core/ports/driving"
	"github.com/hercnav-labs/hercnav-cli/internal/logger"
)

// Default calibration control point: Baghdad Intl, grid zone 38 (not a
// multiple of 10, so the ladder rows carry a real grid entry string).
const (
	DefaultCalibrationLat = 33.2625
	DefaultCalibrationLon = 44.2325
)

// DefaultProbeNames are the rows probed when the caller names none.
var DefaultProbeNames = []string{"ALT01", "BADZN", "PRECI"}

// ladderStep is one point of the altitude-calibration ladder.
type ladderStep struct {
	Name string
	Feet float64
}

// calibrationLadder spans the altitudes whose simulator behaviour is under
// investigation, from baseline through negatives to the service ceiling.
var calibrationLadder = []ladderStep{
	{"A_ZER", 0},
	{"A_ONE", 1},
	{"A_100", 100},
	{"A_1K", 1000},
	{"A_5K", 5000},
	{"A_10K", 10000},
	{"A_NEG", -1},
	{"A_N1K", -1000},
	{"A_MAG", -0.1},
	{"A_MAX", 50000},
}

// Ensure CalibrationService implements the interface.
var _ driving.CalibrationService = (*CalibrationService)(nil)

// CalibrationService implements the diagnostic operations.
type CalibrationService struct {
	store   driven.WaypointStore
	encoder *coordtext.Encoder
}

// NewCalibrationService creates a calibration service. converter may be
// nil; ladder rows then carry the degrees/decimal-minutes entry form.
func NewCalibrationService(store driven.WaypointStore, converter driven.GridConverter) *CalibrationService {
	encoder := coordtext.NewEncoder(nil)
	if converter != nil {
		encoder = coordtext.NewEncoder(converter)
	}
	encoder.OnFallback = func(reason string) {
		logger.Debug("using lat/lon entry form", "reason", reason)
	}

	return &CalibrationService{store: store, encoder: encoder}
}

// Probe fetches the named rows, reporting absent names alongside found
// ones so the report always has one row per requested name.
func (s *CalibrationService) Probe(ctx context.Context, names []string) ([]driving.ProbeRow, error) {
	if len(names) == 0 {
		names = DefaultProbeNames
	}

	normalized := make([]string, 0, len(names))
	for _, name := range names {
		normalized = append(normalized, domain.NormalizeWaypointName(name))
	}

	found, err := s.store.GetByNames(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("probing waypoints: %w", err)
	}

	byName := make(map[string]*domain.Waypoint, len(found))
	for i := range found {
		byName[found[i].Name] = &found[i]
	}

	rows := make([]driving.ProbeRow, 0, len(normalized))
	for _, name := range normalized {
		rows = append(rows, driving.ProbeRow{Name: name, Waypoint: byName[name]})
	}
	return rows, nil
}

// Calibrate injects the altitude ladder at the control point. Each step
// replaces any previous row of the same name, so repeated runs stay clean.
func (s *CalibrationService) Calibrate(ctx context.Context, lat, lon float64) ([]domain.Waypoint, error) {
	coord := domain.Coordinate{Lat: lat, Lon: lon}
	if err := coord.Validate(); err != nil {
		return nil, err
	}

	entryPos := s.encoder.Encode(coord)
	logger.Info("injecting calibration ladder", "lat", lat, "lon", lon, "entry", entryPos)

	injected := make([]domain.Waypoint, 0, len(calibrationLadder))
	for _, step := range calibrationLadder {
		meters := step.Feet * domain.MetersPerFoot
		wp := domain.Waypoint{
			Name:      step.Name,
			EntryPos:  entryPos,
			Lat:       lat,
			Lon:       lon,
			AltMeters: &meters,
		}
		if err := s.store.Replace(ctx, wp); err != nil {
			return nil, fmt.Errorf("injecting %s: %w", step.Name, err)
		}
		injected = append(injected, wp)
	}
	return injected, nil
}
