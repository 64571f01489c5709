package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
)

var addAltFeet float64

var addCmd = &cobra.Command{
	Use:   "add [name] [coordinates]",
	Short: "Add a custom waypoint",
	Long: `Parses the coordinate text, encodes it for the CNI-MU and stores it
under the given name. Quote the coordinates if they contain spaces:

  hercnav add BGW01 "N 33 15.750 E 044 13.950"
  hercnav add BGW01 "33.2625, 44.2325" --alt-ft 115`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored waypoints",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var removeAll bool

var removeCmd = &cobra.Command{
	Use:   "remove [name]...",
	Short: "Remove stored waypoints",
	RunE:  runRemove,
}

func init() {
	addCmd.Flags().Float64Var(&addAltFeet, "alt-ft", 0, "waypoint elevation in feet")
	removeCmd.Flags().BoolVar(&removeAll, "all", false, "remove every stored waypoint")
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := ensureDatabase(ctx); err != nil {
		return err
	}

	alt := defaultAltFeet()
	if cmd.Flags().Changed("alt-ft") {
		alt = &addAltFeet
	}

	wp, err := waypointService.Add(ctx, args[0], args[1], alt)
	if err != nil {
		return fmt.Errorf("adding waypoint: %w", err)
	}

	cmd.Printf("Added %s → %s\n", wp.Name, wp.EntryPos)
	if feet, ok := wp.AltFeet(); ok {
		cmd.Printf("Elevation: %.0f ft\n", feet)
	}
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := ensureDatabase(ctx); err != nil {
		return err
	}

	waypoints, err := waypointService.List(ctx)
	if err != nil {
		return fmt.Errorf("listing waypoints: %w", err)
	}
	if len(waypoints) == 0 {
		cmd.Println("No waypoints stored.")
		return nil
	}

	cmd.Printf("%-6s %-24s %11s %12s %9s\n", "NAME", "ENTRY", "LAT", "LON", "ALT FT")
	for _, wp := range waypoints {
		cmd.Printf("%-6s %-24s %11.5f %12.5f %9s\n",
			wp.Name, wp.EntryPos, wp.Lat, wp.Lon, formatAltFeet(wp))
	}
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	if removeAll && len(args) > 0 {
		return errors.New("--all cannot be combined with names")
	}
	if !removeAll && len(args) == 0 {
		return errors.New("name a waypoint to remove, or pass --all")
	}

	ctx := cmd.Context()
	if err := ensureDatabase(ctx); err != nil {
		return err
	}

	if removeAll {
		removed, err := waypointService.RemoveAll(ctx)
		if err != nil {
			return fmt.Errorf("removing waypoints: %w", err)
		}
		cmd.Printf("Removed %d waypoint(s)\n", removed)
		return nil
	}

	for _, name := range args {
		if err := waypointService.Remove(ctx, name); err != nil {
			return fmt.Errorf("removing %s: %w", name, err)
		}
		cmd.Printf("Removed %s\n", domain.NormalizeWaypointName(name))
	}
	return nil
}

func formatAltFeet(wp domain.Waypoint) string {
	feet, ok := wp.AltFeet()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.0f", feet)
}
