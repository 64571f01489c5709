package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hercnav-labs/hercnav-cli/internal/coordtext"
	"github.com/hercnav-labs/hercnav-cli/internal/flightplan"
)

var exportOutput string

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import waypoints from a CSV flight plan",
	Long: `Reads a CSV flight plan with columns name,coords,alt_ft and adds each
row as a waypoint. Rows that fail to parse are reported and skipped;
valid rows still land.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored waypoints to a CSV flight plan",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to a file instead of stdout")
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening flight plan: %w", err)
	}
	defer f.Close()

	records, err := flightplan.Read(f)
	if err != nil {
		return fmt.Errorf("reading flight plan: %w", err)
	}
	if len(records) == 0 {
		cmd.Println("Flight plan is empty.")
		return nil
	}

	ctx := cmd.Context()
	if err := ensureDatabase(ctx); err != nil {
		return err
	}

	added, failed := 0, 0
	for i, record := range records {
		if _, err := waypointService.Add(ctx, record.Name, record.Coords, record.AltFeet); err != nil {
			failed++
			cmd.Printf("row %d (%s): %v\n", i+1, record.Name, err)
			continue
		}
		added++
	}

	cmd.Printf("Imported %d waypoint(s), %d failed\n", added, failed)
	if failed > 0 {
		return fmt.Errorf("%d row(s) failed", failed)
	}
	return nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := ensureDatabase(ctx); err != nil {
		return err
	}

	waypoints, err := waypointService.List(ctx)
	if err != nil {
		return fmt.Errorf("listing waypoints: %w", err)
	}

	records := flightplan.FromWaypoints(waypoints, coordtext.FormatCNIMU)

	if exportOutput == "" {
		return flightplan.Write(cmd.OutOrStdout(), records)
	}

	f, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("creating %s: %w", exportOutput, err)
	}
	defer f.Close()

	if err := flightplan.Write(f, records); err != nil {
		return fmt.Errorf("writing flight plan: %w", err)
	}
	cmd.Printf("Exported %d waypoint(s) to %s\n", len(records), exportOutput)
	return nil
}
