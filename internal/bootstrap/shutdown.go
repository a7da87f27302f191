package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is anything that drains in-flight work before exit
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  Stopper
	Storage *Storage
	Locks   *Locks
}

// GracefulShutdown stops the HTTP server first so no new requests start,
// then releases the lock backend and storage. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Locks != nil {
		slog.Info(LogMsgClosingLocks)
		if err := components.Locks.Close(); err != nil {
			slog.Error(LogMsgLocksCloseFailed, "error", err)
		}
	}

	if components.Storage != nil {
		slog.Info(LogMsgClosingStorage)
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
