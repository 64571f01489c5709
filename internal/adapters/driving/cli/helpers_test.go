package cli

import (
	"bytes"
	"testing"

	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driven/gridconv"
	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driven/storage/memory"
	"github.com/hercnav-labs/hercnav-cli/internal/core/services"
)

// withMemoryServices wires the commands to in-memory stores for the
// duration of a test, so no simulator database is opened.
func withMemoryServices(t *testing.T) *memory.WaypointStore {
	t.Helper()

	store := memory.NewWaypointStore()
	converter := gridconv.NewConverter()
	SetWaypointService(services.NewWaypointService(store, converter))
	SetCalibrationService(services.NewCalibrationService(store, converter))
	SetSettingsService(services.NewSettingsService(memory.NewConfigStore()))

	t.Cleanup(func() {
		SetWaypointService(nil)
		SetCalibrationService(nil)
		SetSettingsService(nil)
	})
	return store
}

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
