package driven

import (
	"context"

	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
)

// WaypointStore persists waypoints in the simulator database.
// Names are the primary key; the store treats EntryPos as an opaque value.
type WaypointStore interface {
	// Add inserts a waypoint. Returns domain.ErrAlreadyExists if the
	// name is taken.
	Add(ctx context.Context, wp domain.Waypoint) error

	// Replace inserts a waypoint, deleting any existing row of the same
	// name first.
	Replace(ctx context.Context, wp domain.Waypoint) error

	// GetByName retrieves a waypoint. Returns domain.ErrNotFound if the
	// name is absent.
	GetByName(ctx context.Context, name string) (*domain.Waypoint, error)

	// GetByNames retrieves the waypoints whose names are present,
	// silently skipping absent ones.
	GetByNames(ctx context.Context, names []string) ([]domain.Waypoint, error)

	// List returns all waypoints ordered by name.
	List(ctx context.Context) ([]domain.Waypoint, error)

	// Delete removes a waypoint. Returns domain.ErrNotFound if the name
	// is absent.
	Delete(ctx context.Context, name string) error

	// DeleteByNames removes the named waypoints, ignoring absent ones.
	DeleteByNames(ctx context.Context, names []string) error

	// Count returns the number of stored waypoints.
	Count(ctx context.Context) (int, error)
}
