package services

import (
	"context"
	"testing"

	"rehab-app/internal/database"
	"rehab-app/internal/models"
	"rehab-app/internal/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatDB struct {
	database.Database
	nextMessageID int
	inserted      []models.Message
	professional  int
	participant   int
}

func (f *fakeChatDB) InsertMessage(ctx context.Context, chatID, senderID int, text, status string) (int, error) {
	f.nextMessageID++
	f.inserted = append(f.inserted, models.Message{
		ID: f.nextMessageID, ChatID: chatID, SenderID: senderID, Message: text, Status: status,
	})
	return f.nextMessageID, nil
}

func (f *fakeChatDB) GetChatParticipants(ctx context.Context, chatID int) (int, int, error) {
	if f.professional == 0 {
		return 0, 0, database.ErrNotFound
	}
	return f.professional, f.participant, nil
}

func newTestChatService(db *fakeChatDB) *ChatService {
	presence := realtime.NewPresence()
	return NewChatService(db, presence, realtime.NewHub(presence))
}

func TestSendMessageValidation(t *testing.T) {
	svc := newTestChatService(&fakeChatDB{})

	_, err := svc.SendMessage(context.Background(), &models.SendMessageRequest{SenderID: 7, Message: "hi"})
	assert.Error(t, err)

	_, err = svc.SendMessage(context.Background(), &models.SendMessageRequest{ChatID: 1, SenderID: 7})
	assert.Error(t, err)
}

func TestSendMessagePersistsWithSentStatus(t *testing.T) {
	db := &fakeChatDB{professional: 7, participant: 9}
	svc := newTestChatService(db)

	msg, err := svc.SendMessage(context.Background(), &models.SendMessageRequest{
		ChatID: 42, SenderID: 9, Message: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, models.MessageSent, msg.Status)
	require.Len(t, db.inserted, 1)
	assert.Equal(t, 9, db.inserted[0].SenderID)
}

func TestSendMessageRejectsOutsider(t *testing.T) {
	db := &fakeChatDB{professional: 7, participant: 9}
	svc := newTestChatService(db)

	_, err := svc.SendMessage(context.Background(), &models.SendMessageRequest{
		ChatID: 42, SenderID: 5, Message: "hello",
	})
	assert.Error(t, err)
}

func TestGetOrCreateChatValidation(t *testing.T) {
	svc := newTestChatService(&fakeChatDB{})

	_, err := svc.GetOrCreateChat(context.Background(), &models.CreateChatRequest{ProfessionalID: 7})
	assert.Error(t, err)

	_, err = svc.GetOrCreateChat(context.Background(), &models.CreateChatRequest{ProfessionalID: 7, ParticipantID: 7})
	assert.Error(t, err)
}

func TestUpdateMessageStatusRejectsUnknownStatus(t *testing.T) {
	svc := newTestChatService(&fakeChatDB{})

	err := svc.UpdateMessageStatus(context.Background(), &models.UpdateMessageStatusRequest{
		MessageID: 1, Status: "archived",
	})
	assert.Error(t, err)
}
