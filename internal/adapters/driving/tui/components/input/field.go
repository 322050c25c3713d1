// Package input provides a labelled text input component for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unital-labs/unital-cli/internal/adapters/driving/tui/styles"
)

// Field wraps a Bubbles text input with a label.
type Field struct {
	label  string
	input  textinput.Model
	styles *styles.Styles
}

// New creates a field with the given label and placeholder text.
func New(label, placeholder string, s *styles.Styles) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = 30

	return &Field{
		label:  label,
		input:  ti,
		styles: s,
	}
}

// Init returns the cursor blink command.
func (f *Field) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the field.
func (f *Field) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)

	return cmd
}

// View renders the labelled field.
func (f *Field) View() string {
	label := f.styles.Muted.Render(f.label)
	if f.Focused() {
		label = f.styles.Selected.Render(f.label)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		label,
		" ",
		f.styles.InputField.Render(f.input.View()),
	)
}

// Value returns the current input text.
func (f *Field) Value() string {
	return f.input.Value()
}

// SetValue replaces the input text.
func (f *Field) SetValue(value string) {
	f.input.SetValue(value)
}

// Focus gives the field keyboard focus.
func (f *Field) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes keyboard focus.
func (f *Field) Blur() {
	f.input.Blur()
}

// Focused reports whether the field has focus.
func (f *Field) Focused() bool {
	return f.input.Focused()
}

// SetWidth sets the visible width of the input.
func (f *Field) SetWidth(width int) {
	if width > 0 {
		f.input.Width = width
	}
}

// Reset clears the input text.
func (f *Field) Reset() {
	f.input.Reset()
}
