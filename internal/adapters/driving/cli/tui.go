package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui"
	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/messages"
	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/watch"
	"github.com/hercnav-labs/hercnav-cli/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for hercnav.

Browse stored waypoints, add new ones with a live entry-string preview,
and watch the database for outside changes.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select / Confirm
  Esc      - Back / Cancel
  ?        - Toggle help
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery so a render bug leaves a stack trace, not a
	// corrupted terminal and nothing else.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("tui requires an interactive terminal")
	}

	ctx := cmd.Context()
	if err := ensureDatabase(ctx); err != nil {
		return err
	}

	ports := &tui.Ports{
		Waypoint:    waypointService,
		Calibration: calibrationService,
		Settings:    settingsService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Forward database changes made outside the TUI (another hercnav
	// invocation, or the simulator itself) into the running program.
	if openStore != nil {
		watcher, err := watch.New(openStore.Path())
		if err != nil {
			logger.Warn("database watcher unavailable", "error", err)
		} else {
			defer watcher.Close()
			go func() {
				for range watcher.Changes() {
					p.Send(messages.DatabaseChangedMsg{})
				}
			}()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
