package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"rehab-app/pkg/logger"

	"github.com/gorilla/websocket"
)

// HandlerFunc handles one inbound event. The originating connection is
// passed in so replies target the right socket.
type HandlerFunc func(ctx context.Context, conn *Conn, data json.RawMessage)

// Hub owns the set of live connections and routes inbound events to
// their handlers. Connecting alone does not touch the presence registry;
// a client becomes visible only after an explicit join event.
type Hub struct {
	mu       sync.RWMutex
	conns    map[string]*Conn
	handlers map[string]HandlerFunc
	presence *Presence
}

func NewHub(presence *Presence) *Hub {
	return &Hub{
		conns:    make(map[string]*Conn),
		handlers: make(map[string]HandlerFunc),
		presence: presence,
	}
}

// Route registers the handler for one event name.
func (h *Hub) Route(event string, fn HandlerFunc) {
	h.handlers[event] = fn
}

// Peer returns the emitter for a live connection.
func (h *Hub) Peer(connID string) (Emitter, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conn, ok := h.conns[connID]
	return conn, ok
}

// ConnectionCount reports the number of live connections, joined or not.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.conns)
}

// Serve attaches a freshly upgraded socket to the hub and runs its pumps.
// It returns when the connection closes.
func (h *Hub) Serve(ctx context.Context, ws *websocket.Conn) {
	conn := newConn(h, ws)

	h.mu.Lock()
	h.conns[conn.id] = conn
	h.mu.Unlock()

	logger.Debug("Connection %s opened", conn.id)

	go conn.WritePump()
	conn.ReadPump(ctx)
}

func (h *Hub) drop(conn *Conn) {
	h.mu.Lock()
	if _, ok := h.conns[conn.id]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.conns, conn.id)
	h.mu.Unlock()

	conn.closeSend()
	h.presence.Unregister(conn.id)
	logger.Debug("Connection %s closed", conn.id)
}

func (h *Hub) dispatch(ctx context.Context, conn *Conn, raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		logger.Warn("Malformed frame on %s: %v", conn.id, err)
		conn.Emit(EventError, ErrorEvent{Message: "malformed event"})
		return
	}

	handler, ok := h.handlers[env.Event]
	if !ok {
		conn.Emit(EventError, ErrorEvent{Message: "unknown event: " + env.Event})
		return
	}

	handler(ctx, conn, env.Data)
}
