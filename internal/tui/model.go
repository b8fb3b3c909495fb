package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"growth-rate-calculator/internal/growth"
	"growth-rate-calculator/internal/models"
	"growth-rate-calculator/internal/services"
)

const helpText = "tab/↓ next • shift+tab/↑ previous • esc quit"

// Model is the Bubble Tea model of the terminal calculator. It owns the
// three inputs and recomputes the result after every accepted edit.
type Model struct {
	service *services.CalculationService
	styles  Styles

	specs  []models.FieldSpec
	inputs []textinput.Model
	focus  int

	result growth.Result
}

// New creates a model with the first field focused
func New(service *services.CalculationService) *Model {
	m := &Model{
		service: service,
		styles:  DefaultStyles(),
		specs:   models.Specs(),
	}

	for _, spec := range m.specs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = spec.Tooltip
		ti.Width = 16
		m.inputs = append(m.inputs, ti)
	}
	m.inputs[0].Focus()

	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown, tea.KeyEnter:
			return m, m.moveFocus(1)
		case tea.KeyShiftTab, tea.KeyUp:
			return m, m.moveFocus(-1)
		}
	}

	// Edits the field does not accept are rolled back to the previous
	// value and cursor position.
	input := &m.inputs[m.focus]
	before, pos := input.Value(), input.Position()

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)

	if after := input.Value(); after != before {
		if !m.specs[m.focus].Accepts(after) {
			input.SetValue(before)
			input.SetCursor(pos)
			return m, nil
		}
		m.recalculate()
	}
	return m, cmd
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m *Model) recalculate() {
	m.result = m.service.Evaluate(m.Inputs())
}

// Inputs returns the current text of the three fields
func (m *Model) Inputs() models.RawInputs {
	var in models.RawInputs
	for i, spec := range m.specs {
		in = in.With(spec.Field, m.inputs[i].Value())
	}
	return in
}

// Result returns the displayed result text
func (m *Model) Result() string {
	return m.result.Text
}

// Focused returns the field that currently receives keystrokes
func (m *Model) Focused() models.Field {
	return m.specs[m.focus].Field
}

// View implements tea.Model.
func (m *Model) View() string {
	var rows []string
	rows = append(rows, m.styles.GroupTitle.Render("Input Values"))
	for i, spec := range m.specs {
		label := m.styles.Label.Render(spec.Label)
		if i == m.focus {
			label = m.styles.Focused.Render(spec.Label)
		}

		row := label + m.inputs[i].View()
		if err := spec.Validate(m.inputs[i].Value()); err != nil {
			row += " " + m.styles.Error.Render("!")
		}
		rows = append(rows, row)
	}

	result := m.styles.Result.Render(m.result.Text)
	if m.result.Kind() == growth.KindDomain {
		result = m.styles.Result.Inherit(m.styles.Error).Render(m.result.Text)
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Growth Rate Calculator"))
	b.WriteString("\n")
	b.WriteString(m.styles.Group.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")
	b.WriteString(m.styles.Group.Render(m.styles.GroupTitle.Render("CAGR") + "\n" + result))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(helpText))
	b.WriteString("\n")
	return b.String()
}
