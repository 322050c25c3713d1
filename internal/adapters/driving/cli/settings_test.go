package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCmd_Show(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "[Display]")
	assert.Contains(t, out, "Fractional")
	assert.Contains(t, out, "Implicit dimensionless: false")
}

func TestSettingsCmd_Mode(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "settings", "mode", "exponential")
	require.NoError(t, err)
	assert.Contains(t, out, "Exponential")

	out, err = execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Exponential")
}

func TestSettingsCmd_Mode_Invalid(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "settings", "mode", "scientific")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid display mode")
}

func TestSettingsCmd_ImplicitDimensionless(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "settings", "implicit-dimensionless", "true")
	require.NoError(t, err)
	assert.Contains(t, out, "Implicit dimensionless set to: true")

	// The calculator picks the policy up on the next evaluation
	out, err = execute(t, "eval", "2", "m", "*", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "6 m/")
}

func TestSettingsCmd_ImplicitDimensionless_InvalidBool(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "settings", "implicit-dimensionless", "maybe")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid boolean")
}
