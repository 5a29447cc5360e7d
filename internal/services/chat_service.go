package services

import (
	"context"
	"fmt"
	"time"

	"rehab-app/internal/database"
	"rehab-app/internal/models"
	"rehab-app/internal/realtime"
	"rehab-app/pkg/logger"
)

// ChatService is the request/response side of messaging. Live delivery
// goes through the realtime relay; this service covers chat setup,
// history fetch (the fallback path for offline receivers) and read
// status updates.
type ChatService struct {
	db       database.Database
	presence *realtime.Presence
	hub      *realtime.Hub
}

func NewChatService(db database.Database, presence *realtime.Presence, hub *realtime.Hub) *ChatService {
	return &ChatService{db: db, presence: presence, hub: hub}
}

func (s *ChatService) GetOrCreateChat(ctx context.Context, req *models.CreateChatRequest) (int, error) {
	if req.ProfessionalID == 0 || req.ParticipantID == 0 {
		return 0, fmt.Errorf("professional_id and participant_id are required")
	}
	if req.ProfessionalID == req.ParticipantID {
		return 0, fmt.Errorf("a chat needs two distinct participants")
	}

	return s.db.GetOrCreateChat(ctx, req.ProfessionalID, req.ParticipantID)
}

func (s *ChatService) ListUserChats(ctx context.Context, userID int) ([]*models.Chat, error) {
	return s.db.ListUserChats(ctx, userID)
}

func (s *ChatService) GetChatHistory(ctx context.Context, chatID int) ([]*models.Message, error) {
	return s.db.GetChatHistory(ctx, chatID)
}

// SendMessage is the REST submission path. It persists the message and
// pushes it to the receiver if they hold a live connection, mirroring
// the realtime relay's behavior.
func (s *ChatService) SendMessage(ctx context.Context, req *models.SendMessageRequest) (*models.Message, error) {
	if req.ChatID == 0 || req.SenderID == 0 || req.Message == "" {
		return nil, fmt.Errorf("chat_id, sender_id and message are required")
	}

	messageID, err := s.db.InsertMessage(ctx, req.ChatID, req.SenderID, req.Message, models.MessageSent)
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}
	createdAt := time.Now()

	professionalID, participantID, err := s.db.GetChatParticipants(ctx, req.ChatID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve chat %d: %w", req.ChatID, err)
	}

	var receiverID int
	switch req.SenderID {
	case professionalID:
		receiverID = participantID
	case participantID:
		receiverID = professionalID
	default:
		return nil, fmt.Errorf("sender is not a participant of this chat")
	}

	if connID, online := s.presence.Lookup(receiverID); online {
		if peer, ok := s.hub.Peer(connID); ok {
			err := peer.Emit(realtime.EventReceiveMessage, realtime.ReceivedMessage{
				ID:         messageID,
				ChatID:     req.ChatID,
				SenderID:   req.SenderID,
				ReceiverID: receiverID,
				Message:    req.Message,
				CreatedAt:  createdAt,
			})
			if err != nil {
				logger.Warn("Live push to user %d failed: %v", receiverID, err)
			}
		}
	}

	return &models.Message{
		ID:        messageID,
		ChatID:    req.ChatID,
		SenderID:  req.SenderID,
		Message:   req.Message,
		Status:    models.MessageSent,
		CreatedAt: createdAt,
	}, nil
}

func (s *ChatService) UpdateMessageStatus(ctx context.Context, req *models.UpdateMessageStatusRequest) error {
	if req.Status != models.MessageSent && req.Status != models.MessageRead {
		return fmt.Errorf("invalid message status: %s", req.Status)
	}

	return s.db.UpdateMessageStatus(ctx, req.MessageID, req.Status)
}

func (s *ChatService) ListChatUsers(ctx context.Context, excludeUserID int) ([]*models.ChatUser, error) {
	return s.db.ListChatUsers(ctx, excludeUserID)
}
