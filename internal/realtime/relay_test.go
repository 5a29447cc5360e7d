package realtime

import (
	"context"
	"errors"
	"testing"
	"time"

	"rehab-app/internal/database"
	"rehab-app/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	nextID       int
	inserted     []models.Message
	insertErr    error
	professional int
	participant  int
	resolveErr   error
}

func (s *fakeStore) InsertMessage(ctx context.Context, chatID, senderID int, text, status string) (int, error) {
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	s.nextID++
	s.inserted = append(s.inserted, models.Message{
		ID:       s.nextID,
		ChatID:   chatID,
		SenderID: senderID,
		Message:  text,
		Status:   status,
	})
	return s.nextID, nil
}

func (s *fakeStore) GetChatParticipants(ctx context.Context, chatID int) (int, int, error) {
	if s.resolveErr != nil {
		return 0, 0, s.resolveErr
	}
	return s.professional, s.participant, nil
}

type recordedEvent struct {
	event string
	data  interface{}
}

type fakeEmitter struct {
	events []recordedEvent
}

func (e *fakeEmitter) Emit(event string, data interface{}) error {
	e.events = append(e.events, recordedEvent{event: event, data: data})
	return nil
}

func (e *fakeEmitter) byName(event string) []recordedEvent {
	var out []recordedEvent
	for _, ev := range e.events {
		if ev.event == event {
			out = append(out, ev)
		}
	}
	return out
}

type fakePeers map[string]Emitter

func (p fakePeers) Peer(connID string) (Emitter, bool) {
	e, ok := p[connID]
	return e, ok
}

func newTestRelay(store *fakeStore, presence *Presence, peers fakePeers) *Relay {
	return NewRelay(store, presence, peers, time.Second)
}

func TestHandleSendAlwaysAcksSender(t *testing.T) {
	store := &fakeStore{professional: 7, participant: 9}
	presence := NewPresence()
	sender := &fakeEmitter{}

	relay := newTestRelay(store, presence, fakePeers{})
	relay.HandleSend(context.Background(), sender, &models.SendMessageRequest{
		ChatID: 42, SenderID: 7, Message: "Hello",
	})

	acks := sender.byName(EventMessageSent)
	require.Len(t, acks, 1)
	ack := acks[0].data.(models.Message)
	assert.Equal(t, 1, ack.ID)
	assert.Equal(t, 42, ack.ChatID)
	assert.Equal(t, 7, ack.SenderID)
	assert.Equal(t, "Hello", ack.Message)
	assert.Equal(t, models.MessageSent, ack.Status)
}

func TestHandleSendPushesToOnlineReceiver(t *testing.T) {
	store := &fakeStore{professional: 7, participant: 9}
	presence := NewPresence()
	presence.Register(9, "sockA")

	sender := &fakeEmitter{}
	receiver := &fakeEmitter{}
	peers := fakePeers{"sockA": receiver}

	relay := newTestRelay(store, presence, peers)
	relay.HandleSend(context.Background(), sender, &models.SendMessageRequest{
		ChatID: 42, SenderID: 7, Message: "Hello",
	})

	pushes := receiver.byName(EventReceiveMessage)
	require.Len(t, pushes, 1)
	push := pushes[0].data.(ReceivedMessage)
	assert.Equal(t, 1, push.ID)
	assert.Equal(t, 9, push.ReceiverID)
	assert.Equal(t, 7, push.SenderID)
	assert.Equal(t, "Hello", push.Message)

	// Sender still gets exactly one ack even without ever joining.
	assert.Len(t, sender.byName(EventMessageSent), 1)
}

func TestHandleSendOfflineReceiverIsNotAnError(t *testing.T) {
	store := &fakeStore{professional: 7, participant: 9}
	presence := NewPresence()
	sender := &fakeEmitter{}

	relay := newTestRelay(store, presence, fakePeers{})
	relay.HandleSend(context.Background(), sender, &models.SendMessageRequest{
		ChatID: 42, SenderID: 9, Message: "anyone there?",
	})

	assert.Empty(t, sender.byName(EventError))
	assert.Len(t, sender.byName(EventMessageSent), 1)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, models.MessageSent, store.inserted[0].Status)
}

func TestHandleSendValidationFailsFast(t *testing.T) {
	tests := []struct {
		name string
		req  models.SendMessageRequest
	}{
		{"missing chat", models.SendMessageRequest{SenderID: 7, Message: "hi"}},
		{"missing sender", models.SendMessageRequest{ChatID: 42, Message: "hi"}},
		{"empty message", models.SendMessageRequest{ChatID: 42, SenderID: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{professional: 7, participant: 9}
			sender := &fakeEmitter{}

			relay := newTestRelay(store, NewPresence(), fakePeers{})
			relay.HandleSend(context.Background(), sender, &tt.req)

			assert.Len(t, sender.byName(EventError), 1)
			assert.Empty(t, sender.byName(EventMessageSent))
			assert.Empty(t, store.inserted, "no store write on validation failure")
		})
	}
}

func TestHandleSendPersistenceFailureAbortsDelivery(t *testing.T) {
	store := &fakeStore{insertErr: errors.New("connection refused"), professional: 7, participant: 9}
	presence := NewPresence()
	presence.Register(9, "sockA")
	receiver := &fakeEmitter{}
	sender := &fakeEmitter{}

	relay := newTestRelay(store, presence, fakePeers{"sockA": receiver})
	relay.HandleSend(context.Background(), sender, &models.SendMessageRequest{
		ChatID: 42, SenderID: 7, Message: "Hello",
	})

	assert.Len(t, sender.byName(EventError), 1)
	assert.Empty(t, sender.byName(EventMessageSent))
	assert.Empty(t, receiver.events)
}

func TestHandleSendResolutionFailureKeepsMessageStored(t *testing.T) {
	store := &fakeStore{resolveErr: database.ErrNotFound}
	sender := &fakeEmitter{}

	relay := newTestRelay(store, NewPresence(), fakePeers{})
	relay.HandleSend(context.Background(), sender, &models.SendMessageRequest{
		ChatID: 42, SenderID: 7, Message: "Hello",
	})

	// Persistence happened before resolution, so the message survives
	// even though the sender is told about the failure.
	require.Len(t, store.inserted, 1)
	assert.Len(t, sender.byName(EventError), 1)
	assert.Empty(t, sender.byName(EventMessageSent))
}

func TestHandleSendRejectsNonParticipantSender(t *testing.T) {
	store := &fakeStore{professional: 7, participant: 9}
	sender := &fakeEmitter{}

	relay := newTestRelay(store, NewPresence(), fakePeers{})
	relay.HandleSend(context.Background(), sender, &models.SendMessageRequest{
		ChatID: 42, SenderID: 5, Message: "Hello",
	})

	assert.Len(t, sender.byName(EventError), 1)
	assert.Empty(t, sender.byName(EventMessageSent))
}

func TestHandleSendChatScenario(t *testing.T) {
	// Chat 42 pairs professional 7 with participant 9. User 9 is online
	// as "sockA"; user 7 sends without ever joining.
	store := &fakeStore{professional: 7, participant: 9}
	presence := NewPresence()
	presence.Register(9, "sockA")

	receiver := &fakeEmitter{}
	sender := &fakeEmitter{}

	relay := newTestRelay(store, presence, fakePeers{"sockA": receiver})
	relay.HandleSend(context.Background(), sender, &models.SendMessageRequest{
		ChatID: 42, SenderID: 7, Message: "Hello",
	})

	require.Len(t, store.inserted, 1)
	assert.Equal(t, 7, store.inserted[0].SenderID)

	pushes := receiver.byName(EventReceiveMessage)
	require.Len(t, pushes, 1)
	assert.Equal(t, 9, pushes[0].data.(ReceivedMessage).ReceiverID)

	acks := sender.byName(EventMessageSent)
	require.Len(t, acks, 1)
	assert.Equal(t, pushes[0].data.(ReceivedMessage).ID, acks[0].data.(models.Message).ID)
}

func TestFailedSendDoesNotAffectLaterSends(t *testing.T) {
	store := &fakeStore{professional: 7, participant: 9}
	sender := &fakeEmitter{}
	relay := newTestRelay(store, NewPresence(), fakePeers{})

	relay.HandleSend(context.Background(), sender, &models.SendMessageRequest{})
	relay.HandleSend(context.Background(), sender, &models.SendMessageRequest{
		ChatID: 42, SenderID: 7, Message: "second try",
	})

	assert.Len(t, sender.byName(EventError), 1)
	assert.Len(t, sender.byName(EventMessageSent), 1)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "second try", store.inserted[0].Message)
}
