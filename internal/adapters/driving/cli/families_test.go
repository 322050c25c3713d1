package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unital-labs/unital-cli/internal/core/domain"
)

func TestFamiliesCmd_List(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "families")

	require.NoError(t, err)
	assert.Contains(t, out, "mass")
	assert.Contains(t, out, "distance")
	assert.Contains(t, out, "energy")
}

func TestFamiliesCmd_Units(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "families", "units", "time")

	require.NoError(t, err)
	assert.Contains(t, out, "s\n")
	assert.Contains(t, out, "hr\n")
}

func TestFamiliesCmd_Units_Unknown(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "families", "units", "flavour")

	assert.ErrorIs(t, err, domain.ErrUnknownFamily)
}

func TestFamiliesCmd_Aliases(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "families", "aliases", "mass")

	require.NoError(t, err)
	assert.Contains(t, out, "pound -> lb")
}

func TestFamiliesCmd_Import(t *testing.T) {
	setupServices(t)

	src := filepath.Join(t.TempDir(), "pressure.toml")
	require.NoError(t, os.WriteFile(src, []byte(`name = "pressure"
standard_unit = "Pa"

[units]
Pa = 1.0
bar = 1e5
`), 0600))

	target := t.TempDir()
	out, err := execute(t, "families", "import", "--dir", target, src)
	defer func() { familiesDir = "" }()

	require.NoError(t, err)
	assert.Contains(t, out, `Imported family "pressure"`)
	assert.FileExists(t, filepath.Join(target, "pressure.toml"))
}

func TestFamiliesCmd_Import_Invalid(t *testing.T) {
	setupServices(t)

	src := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(src, []byte(`name = "bad"`), 0600))

	_, err := execute(t, "families", "import", src)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid family file")
}
