package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/ItemForge_Go/internal/bootstrap"
	"github.com/osse101/ItemForge_Go/internal/config"
	"github.com/osse101/ItemForge_Go/internal/handler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg, handler.ResolveVersion())

	// Load has already merged .env into the environment
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := app.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	// the signal context is already cancelled here
	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	app.Shutdown(shutdownCtx)
}
