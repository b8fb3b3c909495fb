package main

import (
	"context"
	"log"
	"os"
	"runtime"
	"time"

	"growth-rate-calculator/internal/config"
	"growth-rate-calculator/internal/controllers"
	"growth-rate-calculator/internal/logger"
	"growth-rate-calculator/internal/services"
	"growth-rate-calculator/internal/shutdown"
	"growth-rate-calculator/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/google/uuid"
)

const (
	AppName    = "Growth Rate Calculator"
	AppID      = "com.growthrate.calculator"
	AppVersion = "1.0.0"
)

// Application holds the wired calculator components
type Application struct {
	// Core components
	fyneApp fyne.App
	window  fyne.Window
	config  config.Config
	logger  *logger.ZerologAdapter

	// MVC Components
	controller *controllers.MainController
	view       *views.MainView

	// Services
	calculationService *services.CalculationService

	// Lifecycle management
	shutdown *shutdown.Manager
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application := NewApplication(cfg)
	application.Run()
}

func loadConfig() (config.Config, error) {
	path, err := config.Path()
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(path)
}

// NewApplication creates and wires the application components
func NewApplication(cfg config.Config) *Application {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetFixedSize(cfg.Window.Fixed)
	window.CenterOnScreen()
	window.SetMaster()

	appLogger := logger.NewConsoleLogger(cfg.Level()).With(map[string]interface{}{
		"session": uuid.NewString(),
	})

	appLogger.Info("Application starting", map[string]interface{}{
		"version":     AppVersion,
		"window_size": []float32{cfg.Window.Width, cfg.Window.Height},
		"go_version":  runtime.Version(),
		"log_level":   cfg.Level().String(),
		"cache_size":  cfg.Cache.Size,
	})

	calculationService := services.NewCalculationService(cfg.Cache.Size, appLogger.Component("CalculationService"))

	mainController := controllers.NewMainController(calculationService, appLogger.Component("MainController"))
	mainView := views.NewMainView(window)
	mainController.SetMainView(mainView)

	shutdownManager := shutdown.NewManager(appLogger.Component("ShutdownManager"))
	shutdownManager.SetStepTimeout(cfg.Shutdown.StepTimeout.Duration)
	shutdownManager.Register("calculation service", calculationService)
	shutdownManager.Register("controller", mainController)

	application := &Application{
		fyneApp:            fyneApp,
		window:             window,
		config:             cfg,
		logger:             appLogger,
		controller:         mainController,
		view:               mainView,
		calculationService: calculationService,
		shutdown:           shutdownManager,
	}

	application.setupWindowEvents()

	return application
}

// Run shows the window and blocks until the application quits
func (app *Application) Run() {
	app.shutdown.Listen(func(os.Signal) {
		fyne.Do(app.fyneApp.Quit)
	})

	go app.startStatsMonitoring(app.shutdown.Context())

	app.view.Show()
	app.fyneApp.Run()

	app.shutdown.Shutdown()
	app.logger.Info("Application terminated", nil)
}

func (app *Application) setupWindowEvents() {
	app.window.SetOnClosed(func() {
		app.logger.Info("Window closed", nil)
	})
}

// startStatsMonitoring logs evaluation statistics until ctx is cancelled
func (app *Application) startStatsMonitoring(ctx context.Context) {
	ticker := time.NewTicker(app.config.Monitor.Interval.Duration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			app.logStats()
		case <-ctx.Done():
			return
		}
	}
}

func (app *Application) logStats() {
	stats := app.calculationService.GetStats()
	state := app.controller.GetApplicationState()

	app.logger.Debug("Calculation statistics", map[string]interface{}{
		"evaluations":     stats.Evaluations,
		"cache_hits":      stats.CacheHits,
		"cache_entries":   app.calculationService.CacheLen(),
		"parse_failures":  stats.ParseFailures,
		"domain_failures": stats.DomainFailures,
		"last_result":     state.ResultText,
		"goroutine_count": runtime.NumGoroutine(),
	})
}
