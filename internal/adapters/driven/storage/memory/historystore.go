package memory

import (
	"context"
	"sync"

	"github.com/unital-labs/unital-cli/internal/core/domain"
	"github.com/unital-labs/unital-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore
// for testing.
type HistoryStore struct {
	mu          sync.RWMutex
	conversions []domain.Conversion
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Record appends a conversion to the history.
func (s *HistoryStore) Record(_ context.Context, conv domain.Conversion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversions = append(s.conversions, conv)
	return nil
}

// List returns the most recent conversions, newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.Conversion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.conversions)
	if limit <= 0 || limit > n {
		limit = n
	}

	result := make([]domain.Conversion, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		result = append(result, s.conversions[i])
	}
	return result, nil
}

// Clear removes all recorded conversions.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversions = nil
	return nil
}

// Close releases any underlying resources (no-op for memory store).
func (s *HistoryStore) Close() error {
	return nil
}
