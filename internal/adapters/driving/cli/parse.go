package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driven/gridconv"
	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driven/storage/memory"
	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
	"github.com/hercnav-labs/hercnav-cli/internal/core/ports/driving"
	"github.com/hercnav-labs/hercnav-cli/internal/core/services"
)

var parseCmd = &cobra.Command{
	Use:   "parse [text]",
	Short: "Parse coordinate text without writing anything",
	Long: `Runs coordinate text through the recognizer and prints the matched
notation, the canonical decimal pair and the entry string the aircraft
would store. Nothing is written to the database.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var encodeCmd = &cobra.Command{
	Use:   "encode [lat] [lon]",
	Short: "Encode a decimal coordinate pair",
	// Negative coordinates look like flags to cobra ("encode 52.0 -3.0"),
	// so flag parsing is off and the arguments are handled as-is.
	DisableFlagParsing: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
			return nil
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(encodeCmd)
}

// previewService returns the wired waypoint service when a command already
// opened the database, or a throwaway one: previewing never persists, so a
// memory store behind it is fine.
func previewService() driving.WaypointService {
	if waypointService != nil {
		return waypointService
	}
	return services.NewWaypointService(memory.NewWaypointStore(), gridconv.NewConverter())
}

func runParse(cmd *cobra.Command, args []string) error {
	preview, err := previewService().Preview(args[0])
	if err != nil {
		return fmt.Errorf("parsing %q: %w", args[0], err)
	}

	printPreview(cmd, preview)
	return nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return cmd.Help()
	}

	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("%w: latitude %q is not a number", domain.ErrInvalidInput, args[0])
	}
	lon, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%w: longitude %q is not a number", domain.ErrInvalidInput, args[1])
	}

	preview, err := previewService().Preview(fmt.Sprintf("%.8f, %.8f", lat, lon))
	if err != nil {
		return fmt.Errorf("encoding (%g, %g): %w", lat, lon, err)
	}

	printPreview(cmd, preview)
	return nil
}

func printPreview(cmd *cobra.Command, preview *driving.Preview) {
	cmd.Printf("Notation:  %s\n", preview.Notation)
	cmd.Printf("Canonical: %.5f, %.5f\n", preview.Coordinate.Lat, preview.Coordinate.Lon)
	cmd.Printf("Display:   %s\n", preview.Display)
	cmd.Printf("Entry:     %s\n", preview.EntryPos)
}
