// Package cli implements the hercnav command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/hercnav-labs/hercnav-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	flagDB       string
	flagNoBackup bool
	flagVerbose  bool
	flagCreate   bool
)

var rootCmd = &cobra.Command{
	Use:   "hercnav",
	Short: "Custom waypoint tool for the C-130J navigation database",
	Long: `hercnav normalizes coordinates from common notations and injects them
into the simulator's navigation database as custom waypoints, encoded the
way the aircraft's CNI-MU accepts them.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		loadEnvOverrides(cmd.Context())
		logger.SetVerbose(flagVerbose || envOverrides.Verbose)
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		closeDatabase()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "path to the simulator database")
	rootCmd.PersistentFlags().BoolVar(&flagNoBackup, "no-backup", false, "skip the copy-on-open backup")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagCreate, "create", false, "create the database if missing (testing)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
