package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskmanager-api/interfaces/api"
	"taskmanager-api/interfaces/api/handlers"
	"taskmanager-api/pkg/di"
	"taskmanager-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		// logger อาจยัง init ไม่เสร็จ
		panic("Failed to initialize container: " + err.Error())
	}

	cfg := container.GetConfig()
	h := handlers.NewHandlers(container.GetHandlerServices())
	app := api.NewApp(api.AppConfig{
		Name:         cfg.App.Name,
		AllowOrigins: cfg.CORS.AllowOrigins,
	}, h)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		logger.Info("Gracefully shutting down...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error("Server shutdown failed", "error", err)
		}
	}()

	logger.Info("Server starting",
		"port", cfg.App.Port,
		"env", cfg.App.Env,
		"app", cfg.App.Name,
		"db_driver", cfg.Database.Driver,
	)

	if err := app.Listen(":" + cfg.App.Port); err != nil {
		logger.Error("Server failed to start", "error", err)
		_ = container.Cleanup()
		os.Exit(1)
	}

	if err := container.Cleanup(); err != nil {
		logger.Error("Error during cleanup", "error", err)
	}
	logger.Info("Shutdown complete")
}
