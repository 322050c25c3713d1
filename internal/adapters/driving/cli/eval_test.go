package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unital-labs/unital-cli/internal/core/domain"
)

func TestEvalCmd_Add(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "eval", "2", "kg", "+", "3", "kg")

	require.NoError(t, err)
	assert.Contains(t, out, "5 kg/")
}

func TestEvalCmd_Multiply(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "eval", "2", "kg", "*", "3", "m/s^2")

	require.NoError(t, err)
	assert.Contains(t, out, "6 kg*m/s^2")
}

func TestEvalCmd_Power(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "eval", "3", "m", "^", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "9 m^2/")
}

func TestEvalCmd_MismatchedUnits(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "eval", "1", "m", "+", "1", "s")

	assert.ErrorIs(t, err, domain.ErrUnitMismatch)
}

func TestEvalCmd_BareScalarRejectedByDefault(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "eval", "2", "m", "*", "3")

	assert.ErrorIs(t, err, domain.ErrUnitlessNumber)
}

func TestEvalCmd_InvalidValue(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "eval", "x", "m", "+", "1", "m")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid left value")
}
