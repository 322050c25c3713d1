package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unital-labs/unital-cli/internal/adapters/driven/storage/memory"
	"github.com/unital-labs/unital-cli/internal/core/services"
)

// newTestPorts wires real services over in-memory stores.
func newTestPorts(t *testing.T) *Ports {
	t.Helper()

	registry, err := services.NewFamilyRegistry(nil)
	require.NoError(t, err)

	return &Ports{
		Conversion: services.NewConversionService(registry, memory.NewHistoryStore()),
		Families:   registry,
	}
}

func TestPorts_Validate(t *testing.T) {
	t.Run("valid ports", func(t *testing.T) {
		assert.NoError(t, newTestPorts(t).Validate())
	})

	t.Run("nil conversion service returns error", func(t *testing.T) {
		ports := newTestPorts(t)
		ports.Conversion = nil

		assert.ErrorIs(t, ports.Validate(), ErrMissingConversionService)
	})

	t.Run("families is optional", func(t *testing.T) {
		ports := newTestPorts(t)
		ports.Families = nil

		assert.NoError(t, ports.Validate())
	})
}
