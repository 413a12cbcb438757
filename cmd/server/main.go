// Package main is the entry point for the polyboard web server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/polyboard/board/internal/cache"
	"github.com/polyboard/board/internal/config"
	"github.com/polyboard/board/internal/marketdata"
	"github.com/polyboard/board/internal/metrics"
	"github.com/polyboard/board/internal/web"
)

// ShutdownTimeout bounds how long in-flight requests may run during shutdown.
const ShutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(setupLogger(cfg.LogLevel))

	slog.Info("polyboard server starting",
		"addr", cfg.HTTPAddr,
		"pm_bin", cfg.PolymarketBin,
		"cache_ttl", cfg.CacheTTL,
		"fetch_timeout", cfg.FetchTimeout,
		"static_dir", cfg.StaticDir,
	)

	client := marketdata.NewClient(cfg.PolymarketBin, cfg.FetchTimeout)
	tracker := metrics.NewTracker()
	events := cache.New(cfg.CacheTTL, client.Fetch, tracker)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: web.NewServer(events, tracker, cfg.StaticDir).Handler(),
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	slog.Info("shutdown_signal_received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Warn("shutdown incomplete", "error", err)
	}

	slog.Info("shutdown_complete")
}

// setupLogger creates a structured logger with the specified level.
func setupLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("2006-01-02 15:04:05"))
				}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
