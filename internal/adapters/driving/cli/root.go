// Package cli implements the unital command-line interface with cobra.
// Commands talk to the core through the driving ports; services are
// injected once at startup via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/unital-labs/unital-cli/internal/core/ports/driving"
	"github.com/unital-labs/unital-cli/internal/logger"
)

// version is set at startup from the build information.
var version = "dev"

// Injected services. Nil checks in the commands keep partial wiring
// (e.g. in tests) from panicking.
var (
	conversionService driving.ConversionService
	calculatorService driving.CalculatorService
	settingsService   driving.SettingsService
	familyRegistry    driving.FamilyRegistry
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "unital",
	Short: "Unit algebra and conversion from the terminal",
	Long: `Unital is a unit-aware calculator and converter.

It parses compound unit expressions like "kg*m/s^2", does arithmetic
that tracks dimensions and SI prefixes, and converts values between
units of the same family.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

// Services bundles everything the CLI needs from the core.
type Services struct {
	Conversion driving.ConversionService
	Calculator driving.CalculatorService
	Settings   driving.SettingsService
	Families   driving.FamilyRegistry
}

// SetServices injects the core services into the command tree.
func SetServices(s Services) {
	conversionService = s.Conversion
	calculatorService = s.Calculator
	settingsService = s.Settings
	familyRegistry = s.Families
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
