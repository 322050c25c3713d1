package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	f := New("From", "kg", nil)

	require.NotNil(t, f)
	assert.Empty(t, f.Value())
	assert.False(t, f.Focused())
}

func TestField_FocusBlur(t *testing.T) {
	f := New("From", "kg", nil)

	cmd := f.Focus()
	assert.NotNil(t, cmd)
	assert.True(t, f.Focused())

	f.Blur()
	assert.False(t, f.Focused())
}

func TestField_Update(t *testing.T) {
	f := New("Value", "1", nil)
	f.Focus()

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12.5")})

	assert.Equal(t, "12.5", f.Value())
}

func TestField_SetValueAndReset(t *testing.T) {
	f := New("To", "lb", nil)

	f.SetValue("stone")
	assert.Equal(t, "stone", f.Value())

	f.Reset()
	assert.Empty(t, f.Value())
}

func TestField_View(t *testing.T) {
	f := New("From", "kg", nil)

	view := f.View()

	assert.Contains(t, view, "From")
}
