package domain

const unknownDescription = "Unknown"

// DisplayMode selects how a quantity renders its units.
type DisplayMode string

// Available display modes.
const (
	// DisplayFractional renders negative exponents as a denominator
	// ("kg/s").
	DisplayFractional DisplayMode = "fractional"

	// DisplayExponential renders every exponent explicitly
	// ("kg*s^-1").
	DisplayExponential DisplayMode = "exponential"
)

// IsValid returns true if the display mode is recognised.
func (m DisplayMode) IsValid() bool {
	switch m {
	case DisplayFractional, DisplayExponential:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m DisplayMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m DisplayMode) Description() string {
	switch m {
	case DisplayFractional:
		return "Fractional (negative exponents as denominator, kg/s)"
	case DisplayExponential:
		return "Exponential (explicit signed exponents, kg*s^-1)"
	default:
		return unknownDescription
	}
}

// DisplaySettings configures unit rendering.
type DisplaySettings struct {
	// Mode selects fractional or exponential notation.
	Mode DisplayMode
}

// ArithmeticSettings configures arithmetic policy.
type ArithmeticSettings struct {
	// ImplicitDimensionless permits bare scalars to multiply or
	// divide a quantity without explicit unit-wrapping.
	ImplicitDimensionless bool
}

// AppSettings is the complete application configuration.
type AppSettings struct {
	// Display holds rendering settings.
	Display DisplaySettings

	// Arithmetic holds arithmetic policy settings.
	Arithmetic ArithmeticSettings
}

// DefaultAppSettings returns the default configuration.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Display: DisplaySettings{
			Mode: DisplayFractional,
		},
		Arithmetic: ArithmeticSettings{
			ImplicitDimensionless: false,
		},
	}
}
