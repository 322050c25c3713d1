// Command unital is the Unital unit conversion CLI.
package main

import (
	"fmt"
	"os"

	configfile "github.com/unital-labs/unital-cli/internal/adapters/driven/config/file"
	familyfile "github.com/unital-labs/unital-cli/internal/adapters/driven/familydata/file"
	"github.com/unital-labs/unital-cli/internal/adapters/driven/storage/sqlite"
	"github.com/unital-labs/unital-cli/internal/adapters/driving/cli"
	"github.com/unital-labs/unital-cli/internal/core/ports/driven"
	"github.com/unital-labs/unital-cli/internal/core/services"
	"github.com/unital-labs/unital-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "unital: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("failed to open config store: %w", err)
	}

	familyLoader, err := familyfile.NewLoader("")
	if err != nil {
		return fmt.Errorf("failed to open family directory: %w", err)
	}

	registry, err := services.NewFamilyRegistry(familyLoader)
	if err != nil {
		return fmt.Errorf("failed to build family registry: %w", err)
	}

	// History is best effort. Conversions still work without a database.
	var history driven.HistoryStore
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("History database unavailable: %v", err)
	} else {
		history = store
		defer store.Close()
	}

	settings := services.NewSettingsService(configStore)

	cli.SetServices(cli.Services{
		Conversion: services.NewConversionService(registry, history),
		Calculator: services.NewCalculatorService(settings),
		Settings:   settings,
		Families:   registry,
	})
	cli.SetVersion(version)

	return cli.Execute()
}
