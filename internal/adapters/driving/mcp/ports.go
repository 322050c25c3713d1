package mcp

import (
	"github.com/unital-labs/unital-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Conversion converts values between units of a family.
	Conversion driving.ConversionService

	// Calculator evaluates unit-aware arithmetic.
	Calculator driving.CalculatorService

	// Families exposes the registered unit families.
	Families driving.FamilyRegistry
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Conversion == nil {
		return ErrMissingConversionService
	}
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	// Families is optional; the families resource degrades to an empty list
	return nil
}
