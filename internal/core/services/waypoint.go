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

// Ensure WaypointService implements the interface.
var _ driving.WaypointService = (*WaypointService)(nil)

// WaypointService orchestrates the parse/validate/encode/store pipeline.
// Parsing stays permissive; range validation happens here, at the boundary
// where a user can react to it.
type WaypointService struct {
	store   driven.WaypointStore
	parser  *coordtext.Parser
	encoder *coordtext.Encoder
}

// NewWaypointService creates a waypoint service. converter may be nil, in
// which case grid input is unrecognized and every entry string uses the
// degrees/decimal-minutes form.
func NewWaypointService(store driven.WaypointStore, converter driven.GridConverter) *WaypointService {
	var (
		parser  = coordtext.NewParser(nil)
		encoder = coordtext.NewEncoder(nil)
	)
	if converter != nil {
		parser = coordtext.NewParser(converter)
		encoder = coordtext.NewEncoder(converter)
	}
	encoder.OnFallback = func(reason string) {
		logger.Debug("using lat/lon entry form", "reason", reason)
	}

	return &WaypointService{
		store:   store,
		parser:  parser,
		encoder: encoder,
	}
}

// Preview parses and encodes coordinate text without persisting anything.
func (s *WaypointService) Preview(text string) (*driving.Preview, error) {
	result, err := s.parser.Parse(text)
	if err != nil {
		return nil, err
	}
	if err := result.Coordinate.Validate(); err != nil {
		return nil, err
	}

	return &driving.Preview{
		Notation:   result.Notation,
		Coordinate: result.Coordinate,
		Display:    coordtext.FormatCNIMU(result.Coordinate),
		EntryPos:   s.encoder.Encode(result.Coordinate),
	}, nil
}

// Add parses coordinate text and stores a waypoint under the given name.
func (s *WaypointService) Add(ctx context.Context, name, text string, altFeet *float64) (*domain.Waypoint, error) {
	name = domain.NormalizeWaypointName(name)
	if err := domain.ValidateWaypointName(name); err != nil {
		return nil, err
	}

	preview, err := s.Preview(text)
	if err != nil {
		return nil, err
	}

	wp := domain.Waypoint{
		Name:     name,
		EntryPos: preview.EntryPos,
		Lat:      preview.Coordinate.Lat,
		Lon:      preview.Coordinate.Lon,
	}
	if altFeet != nil {
		meters := *altFeet * domain.MetersPerFoot
		wp.AltMeters = &meters
	}

	if err := s.store.Add(ctx, wp); err != nil {
		return nil, fmt.Errorf("storing waypoint %s: %w", name, err)
	}

	logger.Info("waypoint injected", "name", name, "notation", preview.Notation, "entry", wp.EntryPos)
	return &wp, nil
}

// Get retrieves a waypoint by name.
func (s *WaypointService) Get(ctx context.Context, name string) (*domain.Waypoint, error) {
	name = domain.NormalizeWaypointName(name)
	if err := domain.ValidateWaypointName(name); err != nil {
		return nil, err
	}
	return s.store.GetByName(ctx, name)
}

// List returns all waypoints ordered by name.
func (s *WaypointService) List(ctx context.Context) ([]domain.Waypoint, error) {
	return s.store.List(ctx)
}

// Remove deletes a waypoint by name.
func (s *WaypointService) Remove(ctx context.Context, name string) error {
	name = domain.NormalizeWaypointName(name)
	if err := domain.ValidateWaypointName(name); err != nil {
		return err
	}
	return s.store.Delete(ctx, name)
}

// RemoveAll deletes every stored waypoint.
func (s *WaypointService) RemoveAll(ctx context.Context) (int, error) {
	waypoints, err := s.store.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(waypoints) == 0 {
		return 0, nil
	}

	names := make([]string, 0, len(waypoints))
	for i := range waypoints {
		names = append(names, waypoints[i].Name)
	}
	if err := s.store.DeleteByNames(ctx, names); err != nil {
		return 0, err
	}
	return len(names), nil
}
