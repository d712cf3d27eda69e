package main

import (
	"log"
	"runtime"

	"zephyr-lite/internal/app"
	"zephyr-lite/internal/config"
	"zephyr-lite/internal/logger"
	"zephyr-lite/internal/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}
	appLogger := logger.New(level, cfg.Log.JSON)

	appLogger.Info("Main", "starting", map[string]interface{}{
		"version":    app.AppVersion,
		"go_version": runtime.Version(),
		"log_level":  level.String(),
	})

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register("application", application)
	shutdownManager.Listen()

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
	shutdownManager.Shutdown()

	appLogger.Info("Main", "application terminated", nil)
}
