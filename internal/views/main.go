package views

import (
	"growth-rate-calculator/internal/models"
	"growth-rate-calculator/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const WindowTitle = "Growth Rate Calculator"

// MainView is the calculator window: an input group above a result group
// and a button that clears the form
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	inputPanel    *components.InputPanel
	resultPanel   *components.ResultPanel
	clearButton   *widget.Button

	// Event handlers - connected to controller
	inputChangeHandler func(models.Field, string)
	clearHandler       func()
}

// NewMainView creates the view and sets it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.inputPanel = components.NewInputPanel()
	mv.resultPanel = components.NewResultPanel()
	mv.clearButton = widget.NewButton("Clear", nil)
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewVBox(
		mv.inputPanel.GetContainer(),
		mv.resultPanel.GetContainer(),
		mv.clearButton,
	)

	mv.window.SetTitle(WindowTitle)
	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.inputPanel.SetChangeHandler(func(field models.Field, text string) {
		if mv.inputChangeHandler != nil {
			mv.inputChangeHandler(field, text)
		}
	})

	mv.clearButton.OnTapped = func() {
		if mv.clearHandler != nil {
			mv.clearHandler()
		}
	}
}

// SetInputChangeHandler sets the handler for edits to any input field
func (mv *MainView) SetInputChangeHandler(handler func(models.Field, string)) {
	mv.inputChangeHandler = handler
}

// SetClearHandler sets the handler for the Clear button
func (mv *MainView) SetClearHandler(handler func()) {
	mv.clearHandler = handler
}

// GetInputs returns the text of the three input fields
func (mv *MainView) GetInputs() models.RawInputs {
	return mv.inputPanel.GetInputs()
}

// SetResult replaces the result label text
func (mv *MainView) SetResult(text string) {
	mv.resultPanel.SetResult(text)
}

// GetResult returns the result label text
func (mv *MainView) GetResult() string {
	return mv.resultPanel.GetResult()
}

// ResetView clears inputs and result
func (mv *MainView) ResetView() {
	mv.inputPanel.Reset()
	mv.resultPanel.Reset()
}

// GetInputPanel returns the input panel component
func (mv *MainView) GetInputPanel() *components.InputPanel {
	return mv.inputPanel
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// Show displays the window and focuses the first field. Call it from the
// main goroutine.
func (mv *MainView) Show() {
	mv.window.Show()
	mv.window.Canvas().Focus(mv.inputPanel.FocusFirst())
}
