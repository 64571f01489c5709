// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewWaypoints is the stored-waypoints list view.
	ViewWaypoints
	// ViewAddWaypoint is the add-waypoint form.
	ViewAddWaypoint
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewWaypoints:
		return "waypoints"
	case ViewAddWaypoint:
		return "add_waypoint"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// WaypointsLoaded carries the stored waypoints from the service.
type WaypointsLoaded struct {
	Waypoints []domain.Waypoint
	Err       error
}

// WaypointAdded signals a waypoint was added.
type WaypointAdded struct {
	Waypoint *domain.Waypoint
	Err      error
}

// WaypointRemoved signals a waypoint was removed.
type WaypointRemoved struct {
	Name string
	Err  error
}

// DatabaseChangedMsg signals the database file changed outside the TUI.
// The waypoints view reloads in response.
type DatabaseChangedMsg struct{}
