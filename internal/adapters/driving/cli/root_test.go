package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unital-labs/unital-cli/internal/adapters/driven/storage/memory"
	"github.com/unital-labs/unital-cli/internal/core/services"
)

// setupServices wires real services over in-memory stores and restores
// the previous wiring when the test finishes.
func setupServices(t *testing.T) {
	t.Helper()

	prevConversion := conversionService
	prevCalculator := calculatorService
	prevSettings := settingsService
	prevFamilies := familyRegistry
	t.Cleanup(func() {
		conversionService = prevConversion
		calculatorService = prevCalculator
		settingsService = prevSettings
		familyRegistry = prevFamilies
	})

	registry, err := services.NewFamilyRegistry(nil)
	require.NoError(t, err)

	settings := services.NewSettingsService(memory.NewConfigStore())

	SetServices(Services{
		Conversion: services.NewConversionService(registry, memory.NewHistoryStore()),
		Calculator: services.NewCalculatorService(settings),
		Settings:   settings,
		Families:   registry,
	})
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
