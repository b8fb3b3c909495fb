package components

import (
	"growth-rate-calculator/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// InputPanel groups the current, initial and years entries
type InputPanel struct {
	container *fyne.Container
	card      *widget.Card
	entries   map[models.Field]*NumericEntry
	order     []models.Field

	changeHandler func(models.Field, string)
}

// NewInputPanel creates the "Input Values" group
func NewInputPanel() *InputPanel {
	ip := &InputPanel{
		entries: make(map[models.Field]*NumericEntry),
	}
	ip.createComponents()
	ip.buildLayout()
	return ip
}

// createComponents creates one entry per field spec
func (ip *InputPanel) createComponents() {
	for _, spec := range models.Specs() {
		field := spec.Field
		entry := NewNumericEntry(spec)
		entry.OnChanged = func(text string) {
			if ip.changeHandler != nil {
				ip.changeHandler(field, text)
			}
		}
		ip.entries[field] = entry
		ip.order = append(ip.order, field)
	}
}

// buildLayout stacks a label above each entry
func (ip *InputPanel) buildLayout() {
	rows := container.NewVBox()
	for _, field := range ip.order {
		entry := ip.Entry(field)
		rows.Add(container.NewVBox(
			widget.NewLabel(entry.Spec().Label),
			entry,
		))
	}

	ip.card = widget.NewCard("Input Values", "", rows)
	ip.container = container.NewStack(ip.card)
}

// SetChangeHandler sets the callback invoked on every text change
func (ip *InputPanel) SetChangeHandler(handler func(models.Field, string)) {
	ip.changeHandler = handler
}

// GetInputs returns the current text of all fields
func (ip *InputPanel) GetInputs() models.RawInputs {
	var in models.RawInputs
	for _, field := range ip.order {
		in = in.With(field, ip.Entry(field).Text)
	}
	return in
}

// SetText replaces the text of one field
func (ip *InputPanel) SetText(field models.Field, text string) {
	if entry := ip.Entry(field); entry != nil {
		entry.SetText(text)
	}
}

// Entry returns the entry widget of a field, or nil for an unknown field
func (ip *InputPanel) Entry(field models.Field) *NumericEntry {
	return ip.entries[field]
}

// FocusFirst returns the first entry for initial focus
func (ip *InputPanel) FocusFirst() fyne.Focusable {
	return ip.Entry(ip.order[0])
}

// Reset clears every field
func (ip *InputPanel) Reset() {
	for _, field := range ip.order {
		ip.Entry(field).SetText("")
	}
}

// GetContainer returns the panel container
func (ip *InputPanel) GetContainer() *fyne.Container {
	return ip.container
}
