package models

import "time"

// Message delivery statuses.
const (
	MessageSent = "sent"
	MessageRead = "read"
)

// Chat is a durable two-party conversation between a professional and a
// participant. The realtime relay derives the receiver of a message as
// the participant who is not the sender.
type Chat struct {
	ID             int `json:"id"`
	ProfessionalID int `json:"professional_id"`
	ParticipantID  int `json:"participant_id"`

	ProfessionalName string    `json:"professional_name,omitempty"`
	ParticipantName  string    `json:"participant_name,omitempty"`
	LastMessage      string    `json:"last_message,omitempty"`
	LastMessageTime  time.Time `json:"last_message_time,omitempty"`
}

type Message struct {
	ID         int       `json:"messageId"`
	ChatID     int       `json:"chat_id"`
	SenderID   int       `json:"sender_id"`
	SenderName string    `json:"sender_name,omitempty"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateChatRequest struct {
	ProfessionalID int `json:"professional_id"`
	ParticipantID  int `json:"participant_id"`
}

type SendMessageRequest struct {
	ChatID   int    `json:"chat_id"`
	SenderID int    `json:"sender_id"`
	Message  string `json:"message"`
}

type UpdateMessageStatusRequest struct {
	MessageID int    `json:"messageId"`
	Status    string `json:"status"`
}

// ChatUser is a user entry in the chat contact list.
type ChatUser struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
