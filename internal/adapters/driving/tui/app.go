package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unital-labs/unital-cli/internal/adapters/driving/tui/components/input"
	"github.com/unital-labs/unital-cli/internal/adapters/driving/tui/keymap"
	"github.com/unital-labs/unital-cli/internal/adapters/driving/tui/messages"
	"github.com/unital-labs/unital-cli/internal/adapters/driving/tui/styles"
	"github.com/unital-labs/unital-cli/internal/core/domain"
)

// Input field order.
const (
	fieldValue = iota
	fieldFrom
	fieldTo
	fieldCount
)

// App is the root Bubbletea model for the interactive converter.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap

	fields [fieldCount]*input.Field
	focus  int

	result *domain.Conversion
	err    error

	width  int
	height int
	ready  bool
}

// NewApp creates the converter application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		ports = &Ports{}
	}

	if err := ports.Validate(); err != nil {
		return nil, err
	}

	s := styles.DefaultStyles()

	app := &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		keys:   keymap.DefaultKeyMap(),
	}

	app.fields[fieldValue] = input.New("Value", "1", s)
	app.fields[fieldFrom] = input.New("From ", "kg", s)
	app.fields[fieldTo] = input.New("To   ", "lb", s)
	app.fields[fieldValue].Focus()

	return app, nil
}

// WithContext sets the context used for conversions.
func (a *App) WithContext(ctx context.Context) {
	if ctx != nil {
		a.ctx = ctx
	}
}

// Init starts the cursor blink and sets the window title.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.fields[fieldValue].Init(),
		tea.SetWindowTitle("unital - unit converter"),
	)
}

// Update handles incoming messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.ConversionCompleted:
		if msg.Err != nil {
			a.result = nil
			a.err = msg.Err
		} else {
			result := msg.Result
			a.result = &result
			a.err = nil
		}

		return a, nil
	}

	return a, a.fields[a.focus].Update(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.NextField):
		return a, a.cycleFocus(1)

	case key.Matches(msg, a.keys.PrevField):
		return a, a.cycleFocus(-1)

	case key.Matches(msg, a.keys.Convert):
		return a, a.convertCmd()

	case key.Matches(msg, a.keys.Clear):
		for _, f := range a.fields {
			f.Reset()
		}
		a.result = nil
		a.err = nil

		return a, a.setFocus(fieldValue)
	}

	return a, a.fields[a.focus].Update(msg)
}

func (a *App) cycleFocus(step int) tea.Cmd {
	next := (a.focus + step + fieldCount) % fieldCount
	return a.setFocus(next)
}

func (a *App) setFocus(index int) tea.Cmd {
	a.fields[a.focus].Blur()
	a.focus = index

	return a.fields[a.focus].Focus()
}

// convertCmd reads the current inputs and runs the conversion.
func (a *App) convertCmd() tea.Cmd {
	raw := strings.TrimSpace(a.fields[fieldValue].Value())
	from := strings.TrimSpace(a.fields[fieldFrom].Value())
	to := strings.TrimSpace(a.fields[fieldTo].Value())

	return func() tea.Msg {
		if raw == "" || from == "" || to == "" {
			return messages.ConversionCompleted{Err: fmt.Errorf("value, from and to are all required")}
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return messages.ConversionCompleted{Err: fmt.Errorf("invalid value %q", raw)}
		}

		result, err := a.ports.Conversion.Convert(a.ctx, value, from, to)
		if err != nil {
			return messages.ConversionCompleted{Err: err}
		}

		return messages.ConversionCompleted{Result: result}
	}
}

// View renders the converter.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Unital"))
	b.WriteString(a.styles.Muted.Render("  interactive unit converter"))
	b.WriteString("\n\n")

	for _, f := range a.fields {
		b.WriteString(f.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.resultView())
	b.WriteString("\n\n")

	if names := a.familyNames(); names != "" {
		b.WriteString(a.styles.Muted.Render("Families: " + names))
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Help.Render("tab next field • enter convert • ctrl+l clear • esc quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (a *App) resultView() string {
	switch {
	case a.err != nil:
		return a.styles.Error.Render("Error: " + a.err.Error())

	case a.result != nil:
		line := fmt.Sprintf("%v %s = %v %s",
			a.result.Input, a.result.FromUnit,
			a.result.Output, a.result.ToUnit)

		return a.styles.Border.Padding(0, 1).Render(
			a.styles.Subtitle.Render(a.result.Family) + "  " +
				a.styles.Success.Render(line))

	default:
		return a.styles.Warning.Render("Enter a value and units, then press enter.")
	}
}

func (a *App) familyNames() string {
	if a.ports.Families == nil {
		return ""
	}

	families := a.ports.Families.GetFamilies()
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.Name)
	}

	return strings.Join(names, ", ")
}

// SetDimensions sets the window size directly. Used in tests where no
// WindowSizeMsg is delivered.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	for _, f := range a.fields {
		f.SetWidth(min(30, width-10))
	}
}

// Ready reports whether the initial window size has been received.
func (a *App) Ready() bool {
	return a.ready
}

// Result returns the last successful conversion, if any.
func (a *App) Result() *domain.Conversion {
	return a.result
}

// Err returns the last conversion error, if any.
func (a *App) Err() error {
	return a.err
}
