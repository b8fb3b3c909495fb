package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growth-rate-calculator/internal/growth"
	"growth-rate-calculator/internal/models"
	"growth-rate-calculator/internal/services"
)

func newModel() *Model {
	return New(services.NewCalculationService(16, nil))
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, key tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: key})
	return cmd
}

func fill(m *Model, current, initial, years string) {
	typeText(m, current)
	press(m, tea.KeyTab)
	typeText(m, initial)
	press(m, tea.KeyTab)
	typeText(m, years)
}

func TestLiveResult(t *testing.T) {
	tests := []struct {
		current, initial, years string
		want                    string
	}{
		{"200", "100", "1", "100.00%"},
		{"121", "100", "2", "10.00%"},
		{"100", "100", "5", "0.00%"},
		{"50", "100", "1", "-50.00%"},
		{"50", "0", "1", growth.MessageZeroValue},
		{"50", "100", "0", growth.MessageZeroValue},
	}

	for _, tt := range tests {
		m := newModel()
		fill(m, tt.current, tt.initial, tt.years)
		assert.Equal(t, tt.want, m.Result(), "%s/%s/%s", tt.current, tt.initial, tt.years)
	}
}

func TestPartialInputClearsResult(t *testing.T) {
	m := newModel()
	fill(m, "200", "100", "1")
	require.Equal(t, "100.00%", m.Result())

	press(m, tea.KeyBackspace)
	assert.Equal(t, "", m.Result())
	assert.Equal(t, models.RawInputs{Current: "200", Initial: "100", Years: ""}, m.Inputs())
}

func TestKeystrokeFilter(t *testing.T) {
	m := newModel()

	typeText(m, "12a.3.45")
	assert.Equal(t, "12.34", m.Inputs().Current)

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, "12.34", m.Inputs().Current)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("99"), Paste: true})
	assert.Equal(t, "12.34", m.Inputs().Current)

	press(m, tea.KeyTab)
	press(m, tea.KeyTab)
	typeText(m, "10000")
	assert.Equal(t, "1000", m.Inputs().Years)
}

func TestPasteIsFiltered(t *testing.T) {
	m := newModel()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1e5"), Paste: true})
	assert.Equal(t, "", m.Inputs().Current)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2500.5"), Paste: true})
	assert.Equal(t, "2500.5", m.Inputs().Current)
}

func TestDeletionAboveMaximumIsRefused(t *testing.T) {
	m := newModel()
	press(m, tea.KeyTab)
	press(m, tea.KeyTab)
	typeText(m, "100.25")
	press(m, tea.KeyLeft)
	press(m, tea.KeyLeft)

	press(m, tea.KeyBackspace)
	assert.Equal(t, "100.25", m.Inputs().Years)

	press(m, tea.KeyDelete)
	assert.Equal(t, "100.5", m.Inputs().Years)

	press(m, tea.KeyLeft)
	press(m, tea.KeyDelete)
	assert.Equal(t, "100.5", m.Inputs().Years)
}

func TestFocusNavigation(t *testing.T) {
	m := newModel()
	assert.Equal(t, models.FieldCurrent, m.Focused())

	press(m, tea.KeyDown)
	assert.Equal(t, models.FieldInitial, m.Focused())

	press(m, tea.KeyEnter)
	assert.Equal(t, models.FieldYears, m.Focused())

	press(m, tea.KeyTab)
	assert.Equal(t, models.FieldCurrent, m.Focused())

	press(m, tea.KeyShiftTab)
	assert.Equal(t, models.FieldYears, m.Focused())

	press(m, tea.KeyUp)
	assert.Equal(t, models.FieldInitial, m.Focused())
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		cmd := press(newModel(), key)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestView(t *testing.T) {
	m := newModel()
	assert.NotNil(t, m.Init())

	fill(m, "121", "100", "2")
	view := m.View()

	assert.Contains(t, view, "Growth Rate Calculator")
	assert.Contains(t, view, "Input Values")
	assert.Contains(t, view, "Current:")
	assert.Contains(t, view, "Initial:")
	assert.Contains(t, view, "Year:")
	assert.Contains(t, view, "CAGR")
	assert.Contains(t, view, "10.00%")
}
