package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/ItemForge_Go/internal/database"
)

type stoppable interface {
	Stop(ctx context.Context) error
}

type drainable interface {
	Shutdown(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  stoppable
	Storage drainable
	Pool    database.Pool
}

// GracefulShutdown stops the server first so no new work arrives, then
// drains pending item transactions and finally closes the database pool.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if err := components.Storage.Shutdown(ctx); err != nil {
		slog.Error(LogMsgStorageDrainFailed, "error", err)
	}

	components.Pool.Close()
	slog.Info(LogMsgServerStopped)
}

// Shutdown releases every component of the app.
func (a *App) Shutdown(ctx context.Context) {
	GracefulShutdown(ctx, ShutdownComponents{Server: a.Server, Storage: a.Storage, Pool: a.Pool})
}
