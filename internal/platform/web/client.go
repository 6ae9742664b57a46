package web

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
)

// client is one WebSocket connection. readPump owns the session; writePump
// owns writes to conn.
type client struct {
	server *Server
	conn   *websocket.Conn
	send   chan []byte
	sess   *session
}

// readPump applies commands in arrival order and queues the replies.
func (c *client) readPump() {
	defer func() {
		close(c.send)
		c.conn.Close()
		c.server.logger.Info("session ended", "session", c.sess.id)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	if !c.queue(c.sess.frame(false)) {
		return
	}

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.server.logger.Warn("websocket error", "session", c.sess.id, "error", err)
			}
			return
		}

		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			if !c.queue(ErrorMessage{Type: MsgError, Error: "malformed command"}) {
				return
			}
			continue
		}

		frame, err := c.sess.apply(cmd, c.server.seed)
		if err != nil {
			if !c.queue(ErrorMessage{Type: MsgError, Error: err.Error()}) {
				return
			}
			continue
		}

		if run, ok := c.sess.finishedRun(); ok {
			c.server.saveRun(run)
		}

		if !c.queue(frame) {
			return
		}
	}
}

// queue marshals v onto the send channel. It reports false when the
// connection cannot keep up and should be dropped.
func (c *client) queue(v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		c.server.logger.Error("cannot marshal message", "session", c.sess.id, "error", err)
		return true
	}

	select {
	case c.send <- data:
		return true
	default:
		c.server.logger.Warn("send buffer full, dropping connection", "session", c.sess.id)
		return false
	}
}

// writePump writes queued messages and keeps the connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{}) //nolint:errcheck
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
