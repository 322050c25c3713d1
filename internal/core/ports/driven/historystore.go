package driven

import (
	"context"

	"github.com/unital-labs/unital-cli/internal/core/domain"
)

// HistoryStore persists completed conversions so they can be recalled
// later. Recording is best-effort: services log and continue when a
// store write fails.
type HistoryStore interface {
	// Record appends a conversion to the history.
	Record(ctx context.Context, conv domain.Conversion) error

	// List returns the most recent conversions, newest first, up to
	// limit entries. A limit of 0 returns all entries.
	List(ctx context.Context, limit int) ([]domain.Conversion, error)

	// Clear removes all recorded conversions.
	Clear(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}
