package controllers

import (
	"sync"

	"growth-rate-calculator/internal/growth"
	"growth-rate-calculator/internal/logger"
	"growth-rate-calculator/internal/models"
	"growth-rate-calculator/internal/services"
	"growth-rate-calculator/internal/views"
)

// MainController recomputes the growth rate whenever an input changes
type MainController struct {
	calculationService *services.CalculationService
	logger             logger.Logger

	mainView *views.MainView

	mu         sync.RWMutex
	stopped    bool
	lastInputs models.RawInputs
	lastResult growth.Result
}

// NewMainController creates a controller backed by the calculation service
func NewMainController(calculationService *services.CalculationService, log logger.Logger) *MainController {
	if log == nil {
		log = logger.Nop{}
	}
	return &MainController{
		calculationService: calculationService,
		logger:             log,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	view.SetInputChangeHandler(mc.HandleInputChange)
	view.SetClearHandler(mc.HandleClear)
}

func (mc *MainController) isStopped() bool {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.stopped
}

// HandleInputChange is called for every edit of an input field
func (mc *MainController) HandleInputChange(field models.Field, text string) {
	if mc.isStopped() {
		return
	}

	mc.logger.Debug("Input changed", map[string]interface{}{
		"field": field.String(),
		"text":  text,
	})
	mc.Recalculate()
}

// HandleClear empties the form and the result
func (mc *MainController) HandleClear() {
	if mc.isStopped() || mc.mainView == nil {
		return
	}

	mc.logger.Debug("Inputs cleared", nil)
	mc.mainView.ResetView()
	mc.Recalculate()
}

// Recalculate evaluates the current inputs and pushes the result to the view
func (mc *MainController) Recalculate() growth.Result {
	if mc.mainView == nil {
		return growth.Result{}
	}

	inputs := mc.mainView.GetInputs()
	result := mc.calculationService.Evaluate(inputs)
	mc.mainView.SetResult(result.Text)

	mc.mu.Lock()
	mc.lastInputs = inputs
	mc.lastResult = result
	mc.mu.Unlock()

	return result
}

// GetApplicationState returns the last evaluated inputs and result
func (mc *MainController) GetApplicationState() ApplicationState {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	return ApplicationState{
		Inputs:     mc.lastInputs,
		ResultText: mc.lastResult.Text,
		ResultKind: mc.lastResult.Kind(),
	}
}

// ApplicationState represents the current state of the calculator
type ApplicationState struct {
	Inputs     models.RawInputs
	ResultText string
	ResultKind growth.Kind
}

// Shutdown stops reacting to input changes
func (mc *MainController) Shutdown() {
	mc.mu.Lock()
	mc.stopped = true
	mc.mu.Unlock()

	mc.logger.Info("Controller shutdown completed", nil)
}
