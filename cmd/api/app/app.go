package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Yashshinde43/tinyurl/internal/assembly/apiapp"
	"github.com/Yashshinde43/tinyurl/internal/platform/config"
)

// Run loads configuration, assembles the API and serves until the
// process is signalled to stop.
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)

		return err
	}

	app, err := apiapp.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Close()
	}()

	logger.Info("api starting",
		"addr", cfg.HTTPAddr,
		"base_url", cfg.BaseURL,
		"code_length", cfg.CodeLength,
		"code_attempts", cfg.CodeAttempts,
	)

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Info("api stopped")

	return nil
}
