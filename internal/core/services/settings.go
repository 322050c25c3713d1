package services

import (
	"fmt"

	"github.com/unital-labs/unital-cli/internal/core/domain"
	"github.com/unital-labs/unital-cli/internal/core/ports/driven"
	"github.com/unital-labs/unital-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDisplayMode           = "display.mode"
	keyImplicitDimensionless = "arithmetic.implicit_dimensionless"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Display: domain.DisplaySettings{
			Mode: s.getDisplayMode(defaults.Display.Mode),
		},
		Arithmetic: domain.ArithmeticSettings{
			ImplicitDimensionless: s.getBool(keyImplicitDimensionless, defaults.Arithmetic.ImplicitDimensionless),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyDisplayMode, settings.Display.Mode.String()); err != nil {
		return fmt.Errorf("save display mode: %w", err)
	}
	if err := s.configStore.Set(keyImplicitDimensionless, settings.Arithmetic.ImplicitDimensionless); err != nil {
		return fmt.Errorf("save implicit dimensionless: %w", err)
	}

	return nil
}

// SetDisplayMode updates how unit strings are rendered.
func (s *SettingsService) SetDisplayMode(mode domain.DisplayMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("invalid display mode: %s", mode)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Display.Mode = mode

	return s.Save(settings)
}

// SetImplicitDimensionless toggles whether bare numbers are treated as
// dimensionless quantities in arithmetic.
func (s *SettingsService) SetImplicitDimensionless(enabled bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Arithmetic.ImplicitDimensionless = enabled

	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getDisplayMode(defaultVal domain.DisplayMode) domain.DisplayMode {
	val := s.configStore.GetString(keyDisplayMode)
	if val == "" {
		return defaultVal
	}
	mode := domain.DisplayMode(val)
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}
