package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g main.go -o ../../docs --parseDependency

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata" // zone database for hosts without one

	_ "celestial-chart/docs" // Import generated docs
	"celestial-chart/internal/config"
)

const shutdownTimeout = 10 * time.Second

// @title Celestial Chart API
// @version 1.0
// @description Altitude charts of the Sun, Moon, planets and deep-sky objects for any observer.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	// Create app
	app, err := NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	if err := app.Start(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer app.Stop()

	srv := &http.Server{
		Addr:         cfg.GetServerAddr(),
		Handler:      app.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "error", err)
			app.Stop()
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
