// Package addwaypoint provides the add-waypoint form view for the TUI.
package addwaypoint

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/components/input"
	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/messages"
	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/styles"
	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
	"github.com/hercnav-labs/hercnav-cli/internal/core/ports/driving"
)

// Field indices, in focus order.
const (
	fieldName = iota
	fieldCoords
	fieldAlt
	fieldCount
)

// View is the add-waypoint form view.
type View struct {
	styles          *styles.Styles
	waypointService driving.WaypointService

	fields     [fieldCount]*input.Field
	focusIndex int

	// Live preview of the coordinates field as typed.
	preview    *driving.Preview
	previewErr error

	added *domain.Waypoint
	err   error

	width  int
	height int
	ready  bool
}

// NewView creates a new add-waypoint view.
func NewView(s *styles.Styles, waypointService driving.WaypointService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:          s,
		waypointService: waypointService,
	}
	v.fields[fieldName] = input.NewField(s, "Name       ", "BGW01", domain.MaxWaypointNameLen)
	v.fields[fieldCoords] = input.NewField(s, "Coordinates", "N 33 15.750 E 044 13.950", 64)
	v.fields[fieldAlt] = input.NewField(s, "Alt (ft)   ", "optional", 10)
	return v
}

// Init initialises the view and focuses the first field.
func (v *View) Init() tea.Cmd {
	return v.fields[v.focusIndex].Focus()
}

// Reset clears the form.
func (v *View) Reset() {
	for _, f := range v.fields {
		f.Reset()
		f.Blur()
	}
	v.focusIndex = 0
	v.preview = nil
	v.previewErr = nil
	v.added = nil
	v.err = nil
}

// Update handles messages for the add-waypoint view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		for _, f := range v.fields {
			f.SetWidth(msg.Width - 8)
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.WaypointAdded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.added = msg.Waypoint
		v.err = nil
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses, forwarding typing to the focused field
// and refreshing the preview line.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return v, v.focusField((v.focusIndex + 1) % fieldCount)

	case "shift+tab", "up":
		return v, v.focusField((v.focusIndex + fieldCount - 1) % fieldCount)

	case "enter":
		if v.focusIndex < fieldCount-1 {
			return v, v.focusField(v.focusIndex + 1)
		}
		return v, v.submit()
	}

	// A fresh submission invalidates the previous outcome banner.
	v.added = nil

	var cmd tea.Cmd
	v.fields[v.focusIndex], cmd = v.fields[v.focusIndex].Update(msg)
	v.refreshPreview()
	return v, cmd
}

// focusField moves focus to the given field.
func (v *View) focusField(index int) tea.Cmd {
	v.fields[v.focusIndex].Blur()
	v.focusIndex = index
	return v.fields[v.focusIndex].Focus()
}

// refreshPreview re-runs the parse/encode pipeline on the coordinates field.
func (v *View) refreshPreview() {
	text := strings.TrimSpace(v.fields[fieldCoords].Value())
	if text == "" || v.waypointService == nil {
		v.preview = nil
		v.previewErr = nil
		return
	}
	v.preview, v.previewErr = v.waypointService.Preview(text)
}

// submit returns a command that adds the waypoint.
func (v *View) submit() tea.Cmd {
	name := strings.TrimSpace(v.fields[fieldName].Value())
	coords := strings.TrimSpace(v.fields[fieldCoords].Value())
	altText := strings.TrimSpace(v.fields[fieldAlt].Value())

	var altFeet *float64
	if altText != "" {
		feet, err := strconv.ParseFloat(altText, 64)
		if err != nil {
			v.err = fmt.Errorf("%w: altitude %q is not a number", domain.ErrInvalidInput, altText)
			return nil
		}
		altFeet = &feet
	}

	return func() tea.Msg {
		if v.waypointService == nil {
			return messages.WaypointAdded{Err: fmt.Errorf("waypoint service not available")}
		}
		wp, err := v.waypointService.Add(context.Background(), name, coords, altFeet)
		return messages.WaypointAdded{Waypoint: wp, Err: err}
	}
}

// View renders the add-waypoint form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Add Waypoint"))
	b.WriteString("\n\n")

	for _, f := range v.fields {
		b.WriteString(f.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderPreview())
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	}
	if v.added != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Success.Render(
			fmt.Sprintf("Added %s → %s", v.added.Name, v.added.EntryPos)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[tab] next field  [enter] add  [esc] back"))

	return b.String()
}

// renderPreview renders the live parse result for the coordinates field.
func (v *View) renderPreview() string {
	if v.preview == nil && v.previewErr == nil {
		return v.styles.Muted.Render("Preview: enter coordinates above")
	}
	if v.previewErr != nil {
		return v.styles.Warning.Render(fmt.Sprintf("Preview: %s", v.previewErr.Error()))
	}
	return v.styles.Normal.Render(fmt.Sprintf("Preview: %s → %.5f, %.5f → %s",
		v.preview.Notation, v.preview.Coordinate.Lat, v.preview.Coordinate.Lon, v.preview.EntryPos))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Preview returns the current preview, if any.
func (v *View) Preview() *driving.Preview {
	return v.preview
}

// PreviewErr returns the current preview error, if any.
func (v *View) PreviewErr() error {
	return v.previewErr
}

// FocusIndex returns the focused field index.
func (v *View) FocusIndex() int {
	return v.focusIndex
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Added returns the last successfully added waypoint, if any.
func (v *View) Added() *domain.Waypoint {
	return v.added
}
