package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unital-labs/unital-cli/internal/core/domain"
)

func TestParseCmd_Executes(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "parse", "kg^3/m*s")

	require.NoError(t, err)
	assert.Contains(t, out, "Input: kg^3/m*s")
	assert.Contains(t, out, "kilo")
	assert.Contains(t, out, "Fractional:  kg^3/m*s")
	assert.Contains(t, out, "Exponential: kg^3*m^-1*s^-1")
}

func TestParseCmd_Invalid(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "parse", "kg/m/s")

	assert.ErrorIs(t, err, domain.ErrParse)
}
