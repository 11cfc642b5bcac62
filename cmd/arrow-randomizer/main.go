package main

import (
	"log"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"arrow-randomizer/internal/app"
	"arrow-randomizer/internal/config"
	"arrow-randomizer/internal/logger"
)

func main() {
	cfg, err := config.Load(os.LookupEnv)
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Logger initialization failed: %v", err)
	}

	appLogger.Info("Main", "starting", map[string]interface{}{
		"version":    app.AppVersion,
		"go_version": runtime.Version(),
		"config":     config.ConfigPath(),
	})

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      app.AppID,
		Name:    app.AppName,
		Version: app.AppVersion,
	})
	fyneApp := fyneapp.NewWithID(app.AppID)

	application, err := app.NewApplication(fyneApp, cfg, appLogger)
	if err != nil {
		appLogger.Error("Main", err, nil)
		os.Exit(1)
	}

	application.Run()

	appLogger.Info("Main", "terminated", nil)
}

func newLogger(cfg *config.Config) (logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	if cfg.Logging.JSON {
		return logger.NewJSONLogger(level), nil
	}
	return logger.NewConsoleLogger(level), nil
}
