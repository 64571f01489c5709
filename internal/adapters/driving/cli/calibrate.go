package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hercnav-labs/hercnav-cli/internal/core/services"
)

var probeCmd = &cobra.Command{
	Use:   "probe [name]...",
	Short: "Inspect database rows by name",
	Long: `Fetches the named rows straight from the simulator database and prints
them as stored. With no names, probes the standard diagnostic set
(ALT01, BADZN, PRECI).`,
	RunE: runProbe,
}

var (
	calibrateLat float64
	calibrateLon float64
)

var calibrateAltCmd = &cobra.Command{
	Use:   "calibrate-alt",
	Short: "Inject the altitude-calibration ladder",
	Long: `Injects ten waypoints at one control point whose elevations step from
0 ft through negatives up to 50000 ft, for reading back what the
aircraft actually displays at each. Existing rows of the same names are
replaced.`,
	Args: cobra.NoArgs,
	RunE: runCalibrateAlt,
}

func init() {
	calibrateAltCmd.Flags().Float64Var(&calibrateLat, "lat", services.DefaultCalibrationLat, "control point latitude")
	calibrateAltCmd.Flags().Float64Var(&calibrateLon, "lon", services.DefaultCalibrationLon, "control point longitude")
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(calibrateAltCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := ensureDatabase(ctx); err != nil {
		return err
	}

	rows, err := calibrationService.Probe(ctx, args)
	if err != nil {
		return fmt.Errorf("probing: %w", err)
	}

	cmd.Printf("%-6s %-24s %11s %12s %10s %9s\n", "NAME", "ENTRY", "LAT", "LON", "ALT M", "ALT FT")
	for _, row := range rows {
		if row.Waypoint == nil {
			cmd.Printf("%-6s %s\n", row.Name, "<not found>")
			continue
		}
		wp := row.Waypoint
		altM, altFt := "-", "-"
		if wp.AltMeters != nil {
			feet, _ := wp.AltFeet()
			altM = fmt.Sprintf("%.3f", *wp.AltMeters)
			altFt = fmt.Sprintf("%.1f", feet)
		}
		cmd.Printf("%-6s %-24s %11.5f %12.5f %10s %9s\n",
			wp.Name, wp.EntryPos, wp.Lat, wp.Lon, altM, altFt)
	}
	return nil
}

func runCalibrateAlt(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := ensureDatabase(ctx); err != nil {
		return err
	}

	injected, err := calibrationService.Calibrate(ctx, calibrateLat, calibrateLon)
	if err != nil {
		return fmt.Errorf("calibrating: %w", err)
	}

	cmd.Printf("Injected %d calibration waypoints at (%.4f, %.4f):\n",
		len(injected), calibrateLat, calibrateLon)
	for _, wp := range injected {
		feet, _ := wp.AltFeet()
		cmd.Printf("  %-6s %8.1f ft → %10.4f m\n", wp.Name, feet, *wp.AltMeters)
	}
	cmd.Println("Read the values back in the cockpit and compare.")
	return nil
}
