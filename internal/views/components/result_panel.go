package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ResultPanel shows the computed growth rate or the error message
type ResultPanel struct {
	container   *fyne.Container
	resultLabel *widget.Label
}

// NewResultPanel creates the "CAGR" group
func NewResultPanel() *ResultPanel {
	rp := &ResultPanel{}
	rp.createComponents()
	rp.buildLayout()
	return rp
}

func (rp *ResultPanel) createComponents() {
	rp.resultLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	rp.resultLabel.Wrapping = fyne.TextWrapWord
}

func (rp *ResultPanel) buildLayout() {
	rp.container = container.NewStack(
		widget.NewCard("CAGR", "", rp.resultLabel),
	)
}

// SetResult replaces the displayed text
func (rp *ResultPanel) SetResult(text string) {
	rp.resultLabel.SetText(text)
}

// GetResult returns the displayed text
func (rp *ResultPanel) GetResult() string {
	return rp.resultLabel.Text
}

// Reset clears the result
func (rp *ResultPanel) Reset() {
	rp.resultLabel.SetText("")
}

// GetContainer returns the panel container
func (rp *ResultPanel) GetContainer() *fyne.Container {
	return rp.container
}
