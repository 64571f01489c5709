package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage hercnav configuration",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all configuration values",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a configuration value",
	Long: `Changes a configuration value. Keys:

  db_path         simulator database location (empty: Saved Games default)
  backup          copy-on-open backup, true or false
  default_alt_ft  elevation for waypoints added without one (empty: unset)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if err := ensureSettingsService(); err != nil {
		return err
	}
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	cmd.Printf("db_path         %s\n", orDefault(settings.DatabasePath, "<Saved Games default>"))
	cmd.Printf("backup          %t\n", settings.Backup)
	if settings.DefaultAltFeet != nil {
		cmd.Printf("default_alt_ft  %g\n", *settings.DefaultAltFeet)
	} else {
		cmd.Printf("default_alt_ft  <unset>\n")
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if err := ensureSettingsService(); err != nil {
		return err
	}
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	switch args[0] {
	case "db_path":
		cmd.Println(orDefault(settings.DatabasePath, "<Saved Games default>"))
	case "backup":
		cmd.Println(settings.Backup)
	case "default_alt_ft":
		if settings.DefaultAltFeet != nil {
			cmd.Printf("%g\n", *settings.DefaultAltFeet)
		} else {
			cmd.Println("<unset>")
		}
	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidInput, args[0])
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := ensureSettingsService(); err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "db_path":
		if err := settingsService.SetDatabasePath(value); err != nil {
			return fmt.Errorf("setting db_path: %w", err)
		}
	case "backup":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: backup must be true or false", domain.ErrInvalidInput)
		}
		if err := settingsService.SetBackup(enabled); err != nil {
			return fmt.Errorf("setting backup: %w", err)
		}
	case "default_alt_ft":
		if value == "" {
			if err := settingsService.SetDefaultAltFeet(nil); err != nil {
				return fmt.Errorf("clearing default_alt_ft: %w", err)
			}
		} else {
			feet, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("%w: default_alt_ft must be a number", domain.ErrInvalidInput)
			}
			if err := settingsService.SetDefaultAltFeet(&feet); err != nil {
				return fmt.Errorf("setting default_alt_ft: %w", err)
			}
		}
	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidInput, key)
	}

	cmd.Printf("%s updated\n", key)
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
