package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/unital-labs/unital-cli/internal/core/domain"
	"github.com/unital-labs/unital-cli/internal/core/ports/driven"
	"github.com/unital-labs/unital-cli/internal/core/ports/driving"
	"github.com/unital-labs/unital-cli/internal/logger"
)

// Ensure ConversionService implements the interface.
var _ driving.ConversionService = (*ConversionService)(nil)

// ConversionService converts values between units of the same family.
// Completed conversions are recorded to the history store; recording
// failures are logged and do not fail the conversion.
type ConversionService struct {
	registry driving.FamilyRegistry
	history  driven.HistoryStore
}

// NewConversionService creates a new conversion service. The history
// store may be nil, in which case conversions are not recorded.
func NewConversionService(registry driving.FamilyRegistry, history driven.HistoryStore) *ConversionService {
	return &ConversionService{
		registry: registry,
		history:  history,
	}
}

// Convert converts value from one unit to another. Both units must
// belong to the same family.
func (s *ConversionService) Convert(ctx context.Context, value float64, from, to string) (domain.Conversion, error) {
	family, err := s.registry.FamilyForUnit(from)
	if err != nil {
		return domain.Conversion{}, err
	}

	output, err := family.Convert(value, from, to)
	if err != nil {
		return domain.Conversion{}, err
	}

	conv := domain.Conversion{
		ID:          uuid.New().String(),
		Family:      family.Name,
		FromUnit:    from,
		ToUnit:      to,
		Input:       value,
		Output:      output,
		ConvertedAt: time.Now().UTC(),
	}

	if s.history != nil {
		if err := s.history.Record(ctx, conv); err != nil {
			logger.Warn("Failed to record conversion: %v", err)
		}
	}

	return conv, nil
}

// History returns the most recent conversions, newest first.
func (s *ConversionService) History(ctx context.Context, limit int) ([]domain.Conversion, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.List(ctx, limit)
}

// ClearHistory removes all recorded conversions.
func (s *ConversionService) ClearHistory(ctx context.Context) error {
	if s.history == nil {
		return nil
	}
	return s.history.Clear(ctx)
}
