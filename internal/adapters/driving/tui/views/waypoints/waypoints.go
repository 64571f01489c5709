// Package waypoints provides the stored-waypoints view component for the TUI.
package waypoints

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/messages"
	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/styles"
	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
	"github.com/hercnav-labs/hercnav-cli/internal/core/ports/driving"
)

// View is the stored-waypoints view.
type View struct {
	styles          *styles.Styles
	waypointService driving.WaypointService

	waypoints  []domain.Waypoint
	selected   int
	confirming bool // delete confirmation pending for the selected row
	width      int
	height     int
	ready      bool
	err        error
	loading    bool
}

// NewView creates a new waypoints view.
func NewView(s *styles.Styles, waypointService driving.WaypointService) *View {
	return &View{
		styles:          s,
		waypointService: waypointService,
		waypoints:       []domain.Waypoint{},
	}
}

// Init initialises the view and loads waypoints.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadWaypoints()
}

// loadWaypoints returns a command that loads waypoints from the service.
func (v *View) loadWaypoints() tea.Cmd {
	return func() tea.Msg {
		if v.waypointService == nil {
			return messages.WaypointsLoaded{Err: fmt.Errorf("waypoint service not available")}
		}
		waypoints, err := v.waypointService.List(context.Background())
		return messages.WaypointsLoaded{Waypoints: waypoints, Err: err}
	}
}

// Update handles messages for the waypoints view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.WaypointsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.waypoints = msg.Waypoints
			v.err = nil
			if v.selected >= len(v.waypoints) {
				v.selected = 0
			}
		}
		return v, nil

	case messages.WaypointRemoved:
		v.confirming = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, v.loadWaypoints()

	case messages.DatabaseChangedMsg:
		// Something outside the TUI touched the database.
		return v, v.loadWaypoints()
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.confirming {
		switch msg.String() {
		case "y", "enter":
			v.confirming = false
			if len(v.waypoints) > 0 && v.selected < len(v.waypoints) {
				return v, v.deleteWaypoint(v.waypoints[v.selected].Name)
			}
		default:
			v.confirming = false
		}
		return v, nil
	}

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.waypoints)-1 {
			v.selected++
		}
	case "a":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewAddWaypoint}
		}
	case "d", "delete", "backspace":
		if len(v.waypoints) > 0 && v.selected < len(v.waypoints) {
			v.confirming = true
		}
	case "r":
		v.loading = true
		return v, v.loadWaypoints()
	}

	return v, nil
}

// deleteWaypoint returns a command that deletes a waypoint.
func (v *View) deleteWaypoint(name string) tea.Cmd {
	return func() tea.Msg {
		if v.waypointService == nil {
			return messages.WaypointRemoved{Name: name, Err: fmt.Errorf("waypoint service not available")}
		}
		err := v.waypointService.Remove(context.Background(), name)
		return messages.WaypointRemoved{Name: name, Err: err}
	}
}

// View renders the waypoints view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Waypoints"))
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading waypoints..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if len(v.waypoints) == 0 {
		b.WriteString(v.styles.Muted.Render("No waypoints stored."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	header := fmt.Sprintf("  %-6s %-24s %11s %12s %9s", "NAME", "ENTRY", "LAT", "LON", "ALT FT")
	b.WriteString(v.styles.Subtitle.Render(header))
	b.WriteString("\n")

	for i := range v.waypoints {
		b.WriteString(v.renderWaypoint(i, &v.waypoints[i]))
		b.WriteString("\n")
	}

	if v.confirming && v.selected < len(v.waypoints) {
		b.WriteString("\n")
		prompt := fmt.Sprintf("Delete %s? [y/n]", v.waypoints[v.selected].Name)
		b.WriteString(v.styles.Warning.Render(prompt))
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderWaypoint renders a single waypoint row.
func (v *View) renderWaypoint(index int, wp *domain.Waypoint) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	alt := "-"
	if feet, ok := wp.AltFeet(); ok {
		alt = fmt.Sprintf("%.0f", feet)
	}

	row := fmt.Sprintf("%s%-6s %-24s %11.5f %12.5f %9s",
		indicator, wp.Name, wp.EntryPos, wp.Lat, wp.Lon, alt)

	if index == v.selected {
		return v.styles.Selected.Render(row)
	}
	return v.styles.Normal.Render(row)
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[a] add  [d] delete  [r] refresh  [esc] back  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Waypoints returns the current list of waypoints.
func (v *View) Waypoints() []domain.Waypoint {
	return v.waypoints
}

// SelectedIndex returns the currently selected waypoint index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Confirming returns whether a delete confirmation is pending.
func (v *View) Confirming() bool {
	return v.confirming
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
