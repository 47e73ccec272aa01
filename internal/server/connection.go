package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10
)

// connection answers evaluation requests on one WebSocket. Requests are
// handled in order; each gets exactly one response.
type connection struct {
	conn   *websocket.Conn
	server *Server
	logger *log.Logger

	writeMu sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
}

func newConnection(conn *websocket.Conn, s *Server) *connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &connection{
		conn:   conn,
		server: s,
		logger: s.logger.WithPrefix("conn"),
		ctx:    ctx,
		cancel: cancel,
	}
}

// serve blocks until the peer goes away
func (c *connection) serve() {
	defer func() {
		c.cancel()
		_ = c.conn.Close() // Ignore close errors during cleanup
	}()

	go c.pingLoop()
	c.readLoop()
}

func (c *connection) readLoop() {
	c.conn.SetReadLimit(c.server.maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}

		var req EvaluateRequest
		var resp *EvaluateResponse
		if err := json.Unmarshal(data, &req); err != nil {
			resp = NewErrorResponse("", CodeInvalidMessage, "failed to parse request", c.server.clock.Now())
		} else {
			resp = c.server.evaluate(req)
		}

		if err := c.write(func() error { return c.conn.WriteJSON(resp) }); err != nil {
			c.logger.Error("Failed to write message", "error", err)
			return
		}
	}
}

func (c *connection) pingLoop() {
	ticker := c.server.clock.NewTicker(pingPeriod, "conn", "ping")
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.write(func() error { return c.conn.WriteMessage(websocket.PingMessage, nil) }); err != nil {
				c.logger.Debug("Ping failed", "error", err)
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}

// write serialises writers; gorilla allows one concurrent writer.
func (c *connection) write(fn func() error) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(c.server.writeWait))
	return fn()
}
