package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-tracker/internal/config"
)

// NewLogger returns a JSON logger in production and a text logger elsewhere
func NewLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Logging.Level}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler).With("service", cfg.Service)
}

// Main runs one service until SIGINT or SIGTERM and returns the process exit code
func Main(service string) int {
	cfg := config.Load(service)
	logger := NewLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, err := OpenStores(ctx, cfg)
	if err != nil {
		logger.Error("failed to open stores", "driver", cfg.Database.Driver, "error", err)
		return 1
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := stores.Close(closeCtx); err != nil {
			logger.Warn("failed to close stores", "error", err)
		}
	}()

	srv, err := New(cfg, stores, logger)
	if err != nil {
		logger.Error("failed to build server", "error", err)
		return 1
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped with error", "error", err)
		return 1
	}

	logger.Info("server stopped gracefully")
	return 0
}
