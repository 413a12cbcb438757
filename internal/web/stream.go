package web

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The dashboard is same-host and unauthenticated.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleStream serves Server-Sent Events: one snapshot frame
// immediately, then one every cache TTL, until the client disconnects.
func (s *Server) handleStream(c *gin.Context) {
	limit := clampLimit(c.Query("limit"))

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	// Disable intermediary (nginx) response buffering.
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	ctx := c.Request.Context()
	ticker := time.NewTicker(s.cache.TTL())
	defer ticker.Stop()

	c.Stream(func(w io.Writer) bool {
		payload := s.snapshot(c, limit)
		data, err := json.Marshal(payload)
		if err != nil {
			slog.Error("sse marshal failed", "error", err)
			return false
		}
		fmt.Fprintf(w, "data: %s\n\n", data)
		// Flush before blocking: gin only flushes after the step
		// returns, which would delay the frame by a full TTL.
		c.Writer.Flush()

		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			return true
		}
	})
}

// handleWebSocket pushes the same snapshot payload over a WebSocket on
// the same cadence as the SSE stream.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	limit := clampLimit(c.Query("limit"))
	ctx := c.Request.Context()

	// Drain client messages so close frames are processed.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.cache.TTL())
	defer ticker.Stop()

	for {
		if err := conn.WriteJSON(s.snapshot(c, limit)); err != nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-closed:
			return
		case <-ticker.C:
		}
	}
}
