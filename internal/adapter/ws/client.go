package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize int64 = 4 * 1024
)

type client struct {
	conn *websocket.Conn
	send chan []byte
	hub  *Hub

	closeOnce sync.Once
}

func newClient(conn *websocket.Conn, hub *Hub) *client {
	return &client{
		conn: conn,
		send: make(chan []byte, 256),
		hub:  hub,
	}
}

// enqueue serializes an envelope onto the client's send queue. A client too
// slow to drain its queue is disconnected rather than blocking the hub.
func (c *client) enqueue(e Envelope) {
	data, err := json.Marshal(e)
	if err != nil {
		c.hub.logger.Error("marshal surface op", "op", e.Op, "error", err)
		return
	}
	select {
	case c.send <- data:
	default:
		// Called under the hub lock; close asynchronously since close
		// re-enters the hub to unregister.
		c.hub.logger.Warn("dropping slow websocket client")
		go c.close()
	}
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
		close(c.send)
	})
}

// listenRead discards inbound messages; the surface stream is one-way. It
// keeps the read side alive for pong handling and exits on disconnect.
func (c *client) listenRead() {
	defer c.close()
	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.hub.logger.Error("set read deadline", "error", err)
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			c.hub.logger.Debug("websocket read ended", "error", err)
			return
		}
	}
}

func (c *client) listenWrite() {
	write := func(mt int, payload []byte) error {
		if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return err
		}
		return c.conn.WriteMessage(mt, payload)
	}
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				_ = write(websocket.CloseMessage, []byte{})
				return
			}
			if err := write(websocket.TextMessage, message); err != nil {
				c.hub.logger.Debug("websocket write failed", "error", err)
				return
			}
		case <-ticker.C:
			if err := write(websocket.PingMessage, []byte{}); err != nil {
				return
			}
		}
	}
}
