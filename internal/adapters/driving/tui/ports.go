package tui

import (
	"github.com/unital-labs/unital-cli/internal/core/ports/driving"
)

// Ports holds the driving services the TUI depends on.
type Ports struct {
	// Conversion performs unit conversions. Required.
	Conversion driving.ConversionService

	// Families lists unit families for the picker. Optional.
	Families driving.FamilyRegistry
}

// Validate checks that all required ports are present.
func (p *Ports) Validate() error {
	if p.Conversion == nil {
		return ErrMissingConversionService
	}

	return nil
}
