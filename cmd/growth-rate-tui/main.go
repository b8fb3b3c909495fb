package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"growth-rate-calculator/internal/config"
	"growth-rate-calculator/internal/logger"
	"growth-rate-calculator/internal/services"
	"growth-rate-calculator/internal/shutdown"
	"growth-rate-calculator/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "growth-rate-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	// stdout belongs to the terminal UI, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	appLogger := logger.NewFileLogger(cfg.Level(), logOut).With(map[string]interface{}{
		"session": uuid.NewString(),
	})
	appLogger.Info("Terminal calculator starting", nil)

	service := services.NewCalculationService(cfg.Cache.Size, appLogger.Component("CalculationService"))

	shutdownManager := shutdown.NewManager(appLogger.Component("ShutdownManager"))
	shutdownManager.SetStepTimeout(cfg.Shutdown.StepTimeout.Duration)
	shutdownManager.Register("calculation service", service)
	defer shutdownManager.Shutdown()

	if _, err := tea.NewProgram(tui.New(service)).Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
