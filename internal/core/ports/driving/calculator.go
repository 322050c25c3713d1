package driving

import (
	"context"

	"github.com/unital-labs/unital-cli/internal/core/domain"
)

// Operand is one side of a calculator operation: either a quantity
// expressed as a value plus a unit string, or a bare number.
type Operand struct {
	// Value is the numeric part of the operand.
	Value float64

	// Units is the unit string, e.g. "kg*m/s^2". Empty means a bare
	// number.
	Units string
}

// CalculatorService evaluates arithmetic over quantities, applying the
// display and arithmetic policy from the current settings.
type CalculatorService interface {
	// Evaluate applies the operator to the two operands. Supported
	// operators are "+", "-", "*", "/", "//" and "^".
	Evaluate(ctx context.Context, lhs Operand, operator string, rhs Operand) (*domain.Quantity, error)

	// Parse parses a unit string and returns the quantity 1 in those
	// units, so callers can inspect the parsed terms.
	Parse(ctx context.Context, units string) (*domain.Quantity, error)
}
