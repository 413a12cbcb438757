// Package main is the entry point for the polyboard terminal dashboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/polyboard/board/internal/cache"
	"github.com/polyboard/board/internal/config"
	"github.com/polyboard/board/internal/marketdata"
	"github.com/polyboard/board/internal/ui"
)

func main() {
	limit := flag.Int("limit", 10, "Events to show")
	refresh := flag.Int("refresh", 0, "Auto-refresh interval in seconds (0 = print once and exit)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr so single-shot table output stays pipe-clean.
	slog.SetDefault(setupLogger(cfg.LogLevel, os.Stderr))

	if *limit < 1 {
		*limit = 1
	}

	client := marketdata.NewClient(cfg.PolymarketBin, cfg.FetchTimeout)
	events := cache.New(cfg.CacheTTL, client.Fetch, nil)

	if *refresh > 0 {
		runLive(events, *limit, time.Duration(*refresh)*time.Second)
		return
	}

	result := events.Get(context.Background(), *limit)
	fmt.Print(ui.Render(result, ui.TerminalWidth(), time.Now()))
}

// runLive runs the auto-refresh TUI until the user quits or the process
// is signalled.
func runLive(events *cache.Service, limit int, interval time.Duration) {
	app := ui.NewApp(func(ctx context.Context) []marketdata.Event {
		return events.Get(ctx, limit)
	}, interval)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- app.Run()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("shutdown_signal_received", "signal", sig.String())
		app.Stop()
		<-done
	case err := <-done:
		if err != nil {
			slog.Error("tui_error", "error", err)
			os.Exit(1)
		}
	}
}

// setupLogger creates a structured logger with the specified level.
// Format: 2025-01-04 14:32:01 [INFO]  message key=value
func setupLogger(levelStr string, w io.Writer) *slog.Logger {
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

	return slog.New(slog.NewTextHandler(w, opts))
}
