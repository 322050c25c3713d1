package services

import (
	"context"
	"fmt"

	"github.com/unital-labs/unital-cli/internal/core/domain"
	"github.com/unital-labs/unital-cli/internal/core/ports/driving"
)

// Ensure CalculatorService implements the interface.
var _ driving.CalculatorService = (*CalculatorService)(nil)

// CalculatorService evaluates arithmetic over quantities. Display mode
// and arithmetic policy come from the settings service at call time, so
// configuration changes take effect without restarting.
type CalculatorService struct {
	settings driving.SettingsService
}

// NewCalculatorService creates a new calculator service.
func NewCalculatorService(settings driving.SettingsService) *CalculatorService {
	return &CalculatorService{
		settings: settings,
	}
}

// Evaluate applies the operator to the two operands.
func (s *CalculatorService) Evaluate(ctx context.Context, lhs driving.Operand, operator string, rhs driving.Operand) (*domain.Quantity, error) {
	opts, err := s.quantityOptions()
	if err != nil {
		return nil, err
	}

	left, err := domain.NewQuantity(lhs.Value, lhs.Units, opts...)
	if err != nil {
		return nil, fmt.Errorf("left operand: %w", err)
	}

	right, err := s.rightOperand(rhs, opts)
	if err != nil {
		return nil, fmt.Errorf("right operand: %w", err)
	}

	switch operator {
	case "+":
		return left.Add(right)
	case "-":
		return left.Sub(right)
	case "*":
		return left.Mul(right)
	case "/":
		return left.Div(right)
	case "//":
		return left.FloorDiv(right)
	case "^":
		return left.Pow(right)
	default:
		return nil, fmt.Errorf("%w: operator %q", domain.ErrNotSupported, operator)
	}
}

// Parse parses a unit string and returns the quantity 1 in those units.
func (s *CalculatorService) Parse(ctx context.Context, units string) (*domain.Quantity, error) {
	opts, err := s.quantityOptions()
	if err != nil {
		return nil, err
	}
	return domain.NewQuantity(1.0, units, opts...)
}

// rightOperand builds the right-hand side: a quantity when a unit
// string is present, a bare number otherwise. Bare numbers stay bare so
// the arithmetic policy decides whether they are acceptable.
func (s *CalculatorService) rightOperand(op driving.Operand, opts []domain.QuantityOption) (any, error) {
	if op.Units == "" {
		return op.Value, nil
	}
	return domain.NewQuantity(op.Value, op.Units, opts...)
}

func (s *CalculatorService) quantityOptions() ([]domain.QuantityOption, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	return []domain.QuantityOption{
		domain.WithDisplayMode(settings.Display.Mode),
		domain.WithImplicitDimensionless(settings.Arithmetic.ImplicitDimensionless),
	}, nil
}
