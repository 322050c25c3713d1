package driving

import (
	"context"

	"github.com/unital-labs/unital-cli/internal/core/domain"
)

// ConversionService converts values between units of the same family
// and keeps a record of completed conversions.
type ConversionService interface {
	// Convert converts value from one unit to another. Both units must
	// belong to the same family.
	Convert(ctx context.Context, value float64, from, to string) (domain.Conversion, error)

	// History returns the most recent conversions, newest first, up to
	// limit entries. A limit of 0 returns all entries.
	History(ctx context.Context, limit int) ([]domain.Conversion, error)

	// ClearHistory removes all recorded conversions.
	ClearHistory(ctx context.Context) error
}
