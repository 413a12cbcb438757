// Package web exposes the cached event data over HTTP: a JSON snapshot,
// an SSE stream, a WebSocket stream, and the static browser UI.
package web

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polyboard/board/internal/cache"
	"github.com/polyboard/board/internal/metrics"
)

const (
	// DefaultLimit is used when the limit query parameter is absent.
	DefaultLimit = 10
	// MaxLimit caps the limit query parameter.
	MaxLimit = 100
)

// Server wires the cached fetch service into the HTTP routes.
type Server struct {
	cache   *cache.Service
	tracker *metrics.Tracker

	staticDir string
	engine    *gin.Engine
}

// NewServer creates the server and registers all routes.
func NewServer(c *cache.Service, tracker *metrics.Tracker, staticDir string) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cache:     c,
		tracker:   tracker,
		staticDir: staticDir,
		engine:    gin.New(),
	}

	s.engine.Use(gin.Recovery(), requestLogger())
	s.routes()

	return s
}

// Handler returns the HTTP handler for use with an http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	s.engine.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(s.staticDir, "index.html"))
	})
	s.engine.GET("/new", func(c *gin.Context) {
		c.File(filepath.Join(s.staticDir, "new.html"))
	})
	s.engine.Static("/static", s.staticDir)

	api := s.engine.Group("/api")
	api.GET("/events", s.handleEvents)
	api.GET("/events/stream", s.handleStream)
	api.GET("/events/ws", s.handleWebSocket)
	api.GET("/stats", s.handleStats)
}

// handleEvents returns a JSON snapshot of the top-N events.
func (s *Server) handleEvents(c *gin.Context) {
	limit := clampLimit(c.Query("limit"))
	c.JSON(http.StatusOK, s.snapshot(c, limit))
}

// handleStats returns the fetch/cache counters.
func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.tracker.Snapshot())
}

// snapshot fetches through the cache and shapes the response document.
func (s *Server) snapshot(c *gin.Context, limit int) Payload {
	events := s.cache.Get(c.Request.Context(), limit)
	return BuildPayload(events, int(s.cache.TTL()/time.Second), time.Now())
}

// clampLimit parses the limit query parameter, clamped to [1, MaxLimit].
// A missing or non-numeric value falls back to the default rather than
// rejecting the request.
func clampLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// requestLogger logs completed requests in the slog format.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// Streaming endpoints log once per connection, on close.
		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
		)
	}
}
