package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/messages"
	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/styles"
	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/views/addwaypoint"
	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/views/menu"
	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/views/waypoints"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// waypointsView is the stored-waypoints list view.
	waypointsView *waypoints.View

	// addWaypointView is the add-waypoint form view.
	addWaypointView *addwaypoint.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:           ports,
		ctx:             context.Background(),
		styles:          s,
		menuView:        menu.NewView(s),
		waypointsView:   waypoints.NewView(s, ports.Waypoint),
		addWaypointView: addwaypoint.NewView(s, ports.Waypoint),
		currentView:     messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("hercnav - C-130J Waypoints"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.waypointsView, _ = a.waypointsView.Update(msg)
		a.addWaypointView, _ = a.addWaypointView.Update(msg)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewWaypoints:
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			if msg.String() == "q" && !a.waypointsView.Confirming() {
				return a, tea.Quit
			}
			a.waypointsView, cmd = a.waypointsView.Update(msg)
			return a, cmd

		case messages.ViewAddWaypoint:
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			a.addWaypointView, cmd = a.addWaypointView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewWaypoints:
			return a, a.waypointsView.Init()
		case messages.ViewAddWaypoint:
			a.addWaypointView.Reset()
			return a, a.addWaypointView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// No initialisation needed
		}
		return a, nil

	case messages.WaypointsLoaded, messages.WaypointRemoved:
		a.waypointsView, cmd = a.waypointsView.Update(msg)
		return a, cmd

	case messages.WaypointAdded:
		a.addWaypointView, cmd = a.addWaypointView.Update(msg)
		return a, cmd

	case messages.DatabaseChangedMsg:
		// Keep the list current regardless of which view is active.
		a.waypointsView, cmd = a.waypointsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewWaypoints:
		a.waypointsView, cmd = a.waypointsView.Update(msg)
	case messages.ViewAddWaypoint:
		a.addWaypointView, cmd = a.addWaypointView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewWaypoints:
		return a.waypointsView.View()
	case messages.ViewAddWaypoint:
		return a.addWaypointView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Waypoints:
  j/k, ↑/↓    Navigate rows
  a           Add waypoint
  d           Delete selected (with confirmation)
  r           Refresh from database

Add Waypoint:
  tab         Next field
  enter       Add (from the last field)
  esc         Back to Menu

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.waypointsView.SetDimensions(width, height)
	a.addWaypointView.SetDimensions(width, height)
}
