package realtime

import (
	"context"
	"time"

	"rehab-app/internal/models"
	"rehab-app/pkg/logger"
)

// Event names on the realtime wire.
const (
	EventJoin           = "join"
	EventSendMessage    = "sendMessage"
	EventMessageSent    = "messageSent"
	EventReceiveMessage = "receiveMessage"
	EventError          = "error"
)

// MessageStore is the persistence surface the relay depends on.
type MessageStore interface {
	InsertMessage(ctx context.Context, chatID, senderID int, text, status string) (int, error)
	GetChatParticipants(ctx context.Context, chatID int) (professionalID, participantID int, err error)
}

// Emitter pushes one event to a single connection.
type Emitter interface {
	Emit(event string, data interface{}) error
}

// PeerDirectory resolves a connection ID to its live emitter.
type PeerDirectory interface {
	Peer(connID string) (Emitter, bool)
}

// ErrorEvent is the payload of every error event sent back to a sender.
type ErrorEvent struct {
	Message string `json:"message"`
}

// ReceivedMessage is the live-push payload delivered to an online receiver.
type ReceivedMessage struct {
	ID         int       `json:"messageId"`
	ChatID     int       `json:"chat_id"`
	SenderID   int       `json:"sender_id"`
	ReceiverID int       `json:"receiver_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// Relay handles one send-message request end to end: validate, persist,
// resolve the receiver, push if online, acknowledge the sender. Delivery
// is best effort on top of durable storage; an offline receiver fetches
// the message later through the chat history endpoint.
type Relay struct {
	store        MessageStore
	presence     *Presence
	peers        PeerDirectory
	storeTimeout time.Duration
}

func NewRelay(store MessageStore, presence *Presence, peers PeerDirectory, storeTimeout time.Duration) *Relay {
	return &Relay{
		store:        store,
		presence:     presence,
		peers:        peers,
		storeTimeout: storeTimeout,
	}
}

// HandleSend processes a single sendMessage event from sender. Every
// failure is reported to the sender only; one failed send never affects
// other connections or later sends.
func (r *Relay) HandleSend(ctx context.Context, sender Emitter, req *models.SendMessageRequest) {
	if req.ChatID == 0 || req.SenderID == 0 || req.Message == "" {
		r.emitError(sender, "chat_id, sender_id and message are required")
		return
	}

	// Persist first. A message that failed to store is never delivered.
	storeCtx, cancel := context.WithTimeout(ctx, r.storeTimeout)
	defer cancel()

	messageID, err := r.store.InsertMessage(storeCtx, req.ChatID, req.SenderID, req.Message, models.MessageSent)
	if err != nil {
		logger.Error("Failed to persist message for chat %d: %v", req.ChatID, err)
		r.emitError(sender, "failed to save message")
		return
	}
	createdAt := time.Now()

	// Resolve the receiver as the other participant of the chat. The
	// message is already durable at this point, so a resolution failure
	// is reported distinctly from a validation failure.
	professionalID, participantID, err := r.store.GetChatParticipants(storeCtx, req.ChatID)
	if err != nil {
		logger.Error("Failed to resolve chat %d: %v", req.ChatID, err)
		r.emitError(sender, "failed to resolve message receiver")
		return
	}

	var receiverID int
	switch req.SenderID {
	case professionalID:
		receiverID = participantID
	case participantID:
		receiverID = professionalID
	default:
		r.emitError(sender, "sender is not a participant of this chat")
		return
	}

	// Push to the receiver if they are online. Offline is not an error.
	if connID, online := r.presence.Lookup(receiverID); online {
		if peer, ok := r.peers.Peer(connID); ok {
			delivery := ReceivedMessage{
				ID:         messageID,
				ChatID:     req.ChatID,
				SenderID:   req.SenderID,
				ReceiverID: receiverID,
				Message:    req.Message,
				CreatedAt:  createdAt,
			}
			if err := peer.Emit(EventReceiveMessage, delivery); err != nil {
				logger.Warn("Live push to user %d failed: %v", receiverID, err)
			}
		}
	}

	// The ack always goes to the invoking connection, whether or not the
	// sender ever joined.
	ack := models.Message{
		ID:        messageID,
		ChatID:    req.ChatID,
		SenderID:  req.SenderID,
		Message:   req.Message,
		Status:    models.MessageSent,
		CreatedAt: createdAt,
	}
	if err := sender.Emit(EventMessageSent, ack); err != nil {
		logger.Warn("Ack to sender %d failed: %v", req.SenderID, err)
	}
}

func (r *Relay) emitError(sender Emitter, msg string) {
	if err := sender.Emit(EventError, ErrorEvent{Message: msg}); err != nil {
		logger.Warn("Failed to emit error event: %v", err)
	}
}
