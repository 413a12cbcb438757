package ui

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/polyboard/board/internal/marketdata"
)

// FetchFunc supplies the events for one refresh cycle.
type FetchFunc func(ctx context.Context) []marketdata.Event

// App is the auto-refresh terminal application. It redraws the dashboard
// in place on a fixed interval until the user quits.
type App struct {
	app  *tview.Application
	view *tview.TextView

	fetch    FetchFunc
	interval time.Duration

	// width is captured from the tcell screen on every draw so the next
	// refresh lays out for the current terminal size.
	width atomic.Int64

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the auto-refresh application.
func NewApp(fetch FetchFunc, interval time.Duration) *App {
	ctx, cancel := context.WithCancel(context.Background())

	view := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetScrollable(false)

	a := &App{
		app:      tview.NewApplication(),
		view:     view,
		fetch:    fetch,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}

	a.app.SetRoot(view, true)

	a.app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		w, _ := screen.Size()
		a.width.Store(int64(w))
		return false
	})

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			a.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				a.Stop()
				return nil
			}
		}
		return event
	})

	return a
}

// Run starts the refresh loop and the TUI (blocking).
func (a *App) Run() error {
	go a.updateLoop()

	if err := a.app.Run(); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

// Stop gracefully stops the application. Quitting is expected, not an
// error.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}

// updateLoop fetches and redraws immediately, then on every tick.
func (a *App) updateLoop() {
	a.refresh()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-a.ctx.Done():
			return
		case <-ticker.C:
			a.refresh()
		}
	}
}

// refresh fetches the events and redraws the whole board. The fetch
// blocks this loop only; key handling stays live.
func (a *App) refresh() {
	width := int(a.width.Load())
	if width <= 0 {
		width = TerminalWidth()
	}

	events := a.fetch(a.ctx)
	text := Render(events, width, time.Now())

	a.app.QueueUpdateDraw(func() {
		a.view.Clear()
		fmt.Fprint(tview.ANSIWriter(a.view), text)
	})
}
