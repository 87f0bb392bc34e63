package ws_watchlist

import (
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kkcodebase/movie-mood-predictor/internal/model"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan Event
	username model.Username
}

func NewClient(hub *Hub, conn *websocket.Conn, username model.Username) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		send:     make(chan Event, 16),
		username: username,
	}
}

// StartReading drains inbound frames until the connection drops, then
// unregisters the client. Clients do not send meaningful data.
func (c *Client) StartReading() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Warn("watchlist client read failed",
					slog.String("username", c.username),
					slog.String("error", err.Error()),
				)
			}
			return
		}
	}
}

func (c *Client) StartWriting() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
