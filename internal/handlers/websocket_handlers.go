package handlers

import (
	"context"
	"net/http"

	"rehab-app/internal/realtime"
	"rehab-app/pkg/logger"

	"github.com/gorilla/websocket"
)

type WebSocketHandlers struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
}

func NewWebSocketHandlers(hub *realtime.Hub) *WebSocketHandlers {
	return &WebSocketHandlers{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // Configure for production
		},
	}
}

// HandleWebSocket upgrades the request and hands the socket to the hub.
// Identity is established later through the join event, not here.
func (h *WebSocketHandlers) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Upgrade error: %v", err)
		return
	}

	// The request context dies when this handler returns; the connection
	// outlives it.
	go h.hub.Serve(context.Background(), conn)
}
