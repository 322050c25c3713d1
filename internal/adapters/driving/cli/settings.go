package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/unital-labs/unital-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure display notation and arithmetic policy.

Use subcommands to change specific settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsModeCmd = &cobra.Command{
	Use:   "mode [fractional|exponential]",
	Short: "Set the unit display mode",
	Long: `Set how unit strings are rendered.

Available modes:
  fractional  - negative exponents as a denominator (kg/s)
  exponential - explicit signed exponents (kg*s^-1)`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsMode,
}

var settingsImplicitCmd = &cobra.Command{
	Use:   "implicit-dimensionless [true|false]",
	Short: "Allow bare numbers in multiplication and division",
	Long: `When enabled, a bare number multiplies or divides a quantity without
being wrapped in explicit dimensionless units. Addition and
subtraction always require matching units.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsImplicit,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsModeCmd)
	settingsCmd.AddCommand(settingsImplicitCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Display]")
	cmd.Printf("  Mode: %s\n", settings.Display.Mode.Description())
	cmd.Println()

	cmd.Println("[Arithmetic]")
	cmd.Printf("  Implicit dimensionless: %t\n", settings.Arithmetic.ImplicitDimensionless)

	return nil
}

func runSettingsMode(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	mode := domain.DisplayMode(args[0])
	if err := settingsService.SetDisplayMode(mode); err != nil {
		return err
	}

	cmd.Printf("Display mode set to: %s\n", mode.Description())
	return nil
}

func runSettingsImplicit(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	enabled, err := strconv.ParseBool(args[0])
	if err != nil {
		return fmt.Errorf("invalid boolean %q: %w", args[0], err)
	}

	if err := settingsService.SetImplicitDimensionless(enabled); err != nil {
		return err
	}

	cmd.Printf("Implicit dimensionless set to: %t\n", enabled)
	return nil
}
