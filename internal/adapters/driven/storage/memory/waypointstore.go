package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
	"github.com/hercnav-labs/hercnav-cli/internal/core/ports/driven"
)

// Ensure WaypointStore implements the interface.
var _ driven.WaypointStore = (*WaypointStore)(nil)

// WaypointStore is an in-memory implementation of driven.WaypointStore.
type WaypointStore struct {
	mu        sync.RWMutex
	waypoints map[string]domain.Waypoint
}

// NewWaypointStore creates a new in-memory waypoint store.
func NewWaypointStore() *WaypointStore {
	return &WaypointStore{
		waypoints: make(map[string]domain.Waypoint),
	}
}

// Add inserts a waypoint.
func (s *WaypointStore) Add(_ context.Context, wp domain.Waypoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.waypoints[wp.Name]; ok {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, wp.Name)
	}
	s.waypoints[wp.Name] = wp
	return nil
}

// Replace inserts a waypoint, overwriting any existing row of the same name.
func (s *WaypointStore) Replace(_ context.Context, wp domain.Waypoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waypoints[wp.Name] = wp
	return nil
}

// GetByName retrieves a waypoint.
func (s *WaypointStore) GetByName(_ context.Context, name string) (*domain.Waypoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wp, ok := s.waypoints[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	return &wp, nil
}

// GetByNames retrieves the waypoints whose names are present.
func (s *WaypointStore) GetByNames(_ context.Context, names []string) ([]domain.Waypoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Waypoint
	for _, name := range names {
		if wp, ok := s.waypoints[name]; ok {
			result = append(result, wp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// List returns all waypoints ordered by name.
func (s *WaypointStore) List(_ context.Context) ([]domain.Waypoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Waypoint, 0, len(s.waypoints))
	for _, wp := range s.waypoints {
		result = append(result, wp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Delete removes a waypoint.
func (s *WaypointStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.waypoints[name]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	delete(s.waypoints, name)
	return nil
}

// DeleteByNames removes the named waypoints, ignoring absent ones.
func (s *WaypointStore) DeleteByNames(_ context.Context, names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range names {
		delete(s.waypoints, name)
	}
	return nil
}

// Count returns the number of stored waypoints.
func (s *WaypointStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.waypoints), nil
}
