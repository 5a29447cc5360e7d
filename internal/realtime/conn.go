package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"rehab-app/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// Envelope is the wire frame for every realtime event in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type outboundEnvelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Conn is one live realtime session. Its identifier is generated fresh
// per connection and is what the presence registry binds users to.
type Conn struct {
	id  string
	hub *Hub
	ws  *websocket.Conn

	// mu guards send against the close in closeSend. A relay goroutine
	// may hold this connection as a delivery target while its own read
	// pump is tearing it down.
	mu     sync.Mutex
	send   chan []byte
	closed bool
}

func newConn(hub *Hub, ws *websocket.Conn) *Conn {
	return &Conn{
		id:   uuid.NewString(),
		hub:  hub,
		ws:   ws,
		send: make(chan []byte, 256),
	}
}

func (c *Conn) ID() string {
	return c.id
}

// Emit queues one event for delivery on this connection. It fails when
// the connection has closed or its send buffer is full, which usually
// means the peer has stopped reading.
func (c *Conn) Emit(event string, data interface{}) error {
	payload, err := json.Marshal(outboundEnvelope{Event: event, Data: data})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return fmt.Errorf("connection %s is closed", c.id)
	}

	select {
	case c.send <- payload:
		return nil
	default:
		return fmt.Errorf("send buffer full for connection %s", c.id)
	}
}

// closeSend shuts the send channel exactly once. Emit calls that lost
// the race report a closed connection instead of panicking.
func (c *Conn) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *Conn) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.drop(c)
		c.ws.Close()
	}()

	// Set read deadline and pong handler for connection health
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("WebSocket error on %s: %v", c.id, err)
			}
			break
		}

		c.hub.dispatch(ctx, c, message)
	}
}

func (c *Conn) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Error("Write error on %s: %v", c.id, err)
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
