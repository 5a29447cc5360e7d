package realtime

import (
	"context"
	"encoding/json"

	"rehab-app/internal/models"
	"rehab-app/pkg/logger"
)

// JoinRequest is the payload of a join event.
type JoinRequest struct {
	UserID int `json:"userId"`
}

// JoinHandler binds the joining user to the originating connection.
func JoinHandler(presence *Presence) HandlerFunc {
	return func(ctx context.Context, conn *Conn, data json.RawMessage) {
		var req JoinRequest
		if err := json.Unmarshal(data, &req); err != nil || req.UserID == 0 {
			conn.Emit(EventError, ErrorEvent{Message: "userId is required"})
			return
		}

		presence.Register(req.UserID, conn.ID())
		logger.Info("User %d joined on connection %s", req.UserID, conn.ID())
	}
}

// SendHandler forwards a sendMessage event to the relay.
func SendHandler(relay *Relay) HandlerFunc {
	return func(ctx context.Context, conn *Conn, data json.RawMessage) {
		var req models.SendMessageRequest
		if err := json.Unmarshal(data, &req); err != nil {
			conn.Emit(EventError, ErrorEvent{Message: "malformed sendMessage payload"})
			return
		}

		relay.HandleSend(ctx, conn, &req)
	}
}
