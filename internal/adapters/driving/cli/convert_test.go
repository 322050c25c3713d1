package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unital-labs/unital-cli/internal/core/domain"
)

func TestConvertCmd_Executes(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "convert", "2", "s", "hr")

	require.NoError(t, err)
	assert.Contains(t, out, "2 s = 7200 hr")
}

func TestConvertCmd_JSON(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "convert", "--json", "1", "kg", "g")
	defer func() { convertJSON = false }()

	require.NoError(t, err)

	var conv domain.Conversion
	require.NoError(t, json.Unmarshal([]byte(out), &conv))
	assert.Equal(t, "mass", conv.Family)
	assert.Equal(t, "kg", conv.FromUnit)
	assert.InDelta(t, 0.001, conv.Output, 1e-12)
}

func TestConvertCmd_InvalidValue(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "convert", "two", "kg", "g")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value")
}

func TestConvertCmd_UnknownUnit(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "convert", "1", "wobble", "kg")

	assert.ErrorIs(t, err, domain.ErrUnknownFamily)
}

func TestConvertCmd_NoService(t *testing.T) {
	setupServices(t)
	conversionService = nil

	_, err := execute(t, "convert", "1", "kg", "g")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
