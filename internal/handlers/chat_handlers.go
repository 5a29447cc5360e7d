package handlers

import (
	"encoding/json"
	"net/http"

	"rehab-app/internal/models"
	"rehab-app/internal/services"
	"rehab-app/pkg/logger"
)

type ChatHandlers struct {
	chatService *services.ChatService
}

func NewChatHandlers(chatService *services.ChatService) *ChatHandlers {
	return &ChatHandlers{
		chatService: chatService,
	}
}

func (h *ChatHandlers) GetOrCreateChat(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	chatID, err := h.chatService.GetOrCreateChat(r.Context(), &req)
	if err != nil {
		logger.Error("Get or create chat error: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"chat_id": chatID})
}

func (h *ChatHandlers) ListUserChats(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, 3)
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	chats, err := h.chatService.ListUserChats(r.Context(), userID)
	if err != nil {
		logger.Error("List user chats error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, chats)
}

// GetChatHistory is the offline fallback path: all persisted messages
// for a chat, ascending by creation time.
func (h *ChatHandlers) GetChatHistory(w http.ResponseWriter, r *http.Request) {
	chatID, err := pathID(r, 2)
	if err != nil {
		http.Error(w, "invalid chat ID", http.StatusBadRequest)
		return
	}

	messages, err := h.chatService.GetChatHistory(r.Context(), chatID)
	if err != nil {
		logger.Error("Chat history error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

func (h *ChatHandlers) ListChatUsers(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, 3)
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	users, err := h.chatService.ListChatUsers(r.Context(), userID)
	if err != nil {
		logger.Error("List chat users error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *ChatHandlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	message, err := h.chatService.SendMessage(r.Context(), &req)
	if err != nil {
		logger.Error("Send message error: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, message)
}

func (h *ChatHandlers) UpdateMessageStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateMessageStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.chatService.UpdateMessageStatus(r.Context(), &req); err != nil {
		logger.Error("Update message status error: %v", err)
		http.Error(w, err.Error(), storeErrorStatus(err))
		return
	}

	writeMessage(w, http.StatusOK, "message status updated")
}
