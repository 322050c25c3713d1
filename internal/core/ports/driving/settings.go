package driving

import "github.com/unital-labs/unital-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetDisplayMode updates how unit strings are rendered.
	SetDisplayMode(mode domain.DisplayMode) error

	// SetImplicitDimensionless toggles whether bare numbers are treated
	// as dimensionless quantities in arithmetic.
	SetImplicitDimensionless(enabled bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
