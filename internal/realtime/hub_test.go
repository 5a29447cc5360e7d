package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainEvent(t *testing.T, c *Conn) Envelope {
	t.Helper()
	select {
	case raw := <-c.send:
		var env Envelope
		require.NoError(t, json.Unmarshal(raw, &env))
		return env
	default:
		t.Fatal("no event queued on connection")
		return Envelope{}
	}
}

func TestDispatchJoinRegistersPresence(t *testing.T) {
	presence := NewPresence()
	hub := NewHub(presence)
	hub.Route(EventJoin, JoinHandler(presence))

	conn := newConn(hub, nil)
	hub.conns[conn.id] = conn

	hub.dispatch(context.Background(), conn, []byte(`{"event":"join","data":{"userId":9}}`))

	connID, ok := presence.Lookup(9)
	require.True(t, ok)
	assert.Equal(t, conn.ID(), connID)
}

func TestDispatchJoinWithoutUserID(t *testing.T) {
	presence := NewPresence()
	hub := NewHub(presence)
	hub.Route(EventJoin, JoinHandler(presence))

	conn := newConn(hub, nil)
	hub.dispatch(context.Background(), conn, []byte(`{"event":"join","data":{}}`))

	env := drainEvent(t, conn)
	assert.Equal(t, EventError, env.Event)
	assert.Equal(t, 0, presence.OnlineCount())
}

func TestDispatchUnknownEvent(t *testing.T) {
	hub := NewHub(NewPresence())
	conn := newConn(hub, nil)

	hub.dispatch(context.Background(), conn, []byte(`{"event":"typing","data":{}}`))

	env := drainEvent(t, conn)
	assert.Equal(t, EventError, env.Event)
}

func TestDispatchMalformedFrame(t *testing.T) {
	hub := NewHub(NewPresence())
	conn := newConn(hub, nil)

	hub.dispatch(context.Background(), conn, []byte(`not json`))

	env := drainEvent(t, conn)
	assert.Equal(t, EventError, env.Event)
}

func TestDropUnregistersPresence(t *testing.T) {
	presence := NewPresence()
	hub := NewHub(presence)

	conn := newConn(hub, nil)
	hub.conns[conn.id] = conn
	presence.Register(9, conn.id)

	hub.drop(conn)

	_, ok := presence.Lookup(9)
	assert.False(t, ok)
	assert.Equal(t, 0, hub.ConnectionCount())

	// A second drop for the same connection is harmless.
	hub.drop(conn)
}

func TestEmitAfterDropFails(t *testing.T) {
	presence := NewPresence()
	hub := NewHub(presence)

	conn := newConn(hub, nil)
	hub.conns[conn.id] = conn
	presence.Register(9, conn.id)

	// A relay can resolve the peer just before its read pump tears the
	// connection down. The late emit must fail cleanly, not panic.
	peer, ok := hub.Peer(conn.id)
	require.True(t, ok)

	hub.drop(conn)

	err := peer.Emit(EventReceiveMessage, ErrorEvent{Message: "late"})
	assert.Error(t, err)
}

func TestDeliveryRacingDisconnect(t *testing.T) {
	hub := NewHub(NewPresence())

	conn := newConn(hub, nil)
	hub.conns[conn.id] = conn

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			conn.Emit(EventReceiveMessage, ErrorEvent{Message: "race"})
		}
	}()
	go func() {
		defer wg.Done()
		hub.drop(conn)
	}()
	wg.Wait()

	assert.Error(t, conn.Emit(EventReceiveMessage, ErrorEvent{Message: "after"}))
}

func TestSendHandlerForwardsToRelay(t *testing.T) {
	presence := NewPresence()
	hub := NewHub(presence)
	store := &fakeStore{professional: 7, participant: 9}
	relay := NewRelay(store, presence, hub, time.Second)
	hub.Route(EventSendMessage, SendHandler(relay))

	conn := newConn(hub, nil)
	hub.conns[conn.id] = conn

	hub.dispatch(context.Background(), conn, []byte(`{"event":"sendMessage","data":{"chat_id":42,"sender_id":7,"message":"hi"}}`))

	require.Len(t, store.inserted, 1)
	env := drainEvent(t, conn)
	assert.Equal(t, EventMessageSent, env.Event)
}
