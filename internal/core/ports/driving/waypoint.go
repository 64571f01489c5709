package driving

import (
	"context"

	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
)

// Preview is the outcome of running coordinate text through the full
// parse/validate/encode pipeline without touching the database. It drives
// the CLI parse/encode output and the TUI's live preview line.
type Preview struct {
	// Notation names the grammar that matched, for user feedback.
	Notation domain.Notation

	// Coordinate is the canonical value the text normalizes to.
	Coordinate domain.Coordinate

	// Display is the human-readable degrees/decimal-minutes rendering,
	// independent of which encoding EntryPos uses.
	Display string

	// EntryPos is the exact string the aircraft would store.
	EntryPos string
}

// WaypointService is the primary driving port: it orchestrates parsing,
// validation, encoding and persistence of custom waypoints.
type WaypointService interface {
	// Preview parses and encodes coordinate text without persisting.
	// Returns domain.ErrUnrecognizedFormat for unmatched text and
	// domain.ErrCoordinateRange for recognised but out-of-range values.
	Preview(text string) (*Preview, error)

	// Add parses coordinate text and stores a waypoint under the given
	// name. altFeet is the elevation in feet; nil leaves the altitude
	// unset so the simulator applies its default.
	Add(ctx context.Context, name, text string, altFeet *float64) (*domain.Waypoint, error)

	// Get retrieves a waypoint by name.
	Get(ctx context.Context, name string) (*domain.Waypoint, error)

	// List returns all waypoints ordered by name.
	List(ctx context.Context) ([]domain.Waypoint, error)

	// Remove deletes a waypoint by name.
	Remove(ctx context.Context, name string) error

	// RemoveAll deletes every stored waypoint and returns how many went.
	RemoveAll(ctx context.Context) (int, error)
}
