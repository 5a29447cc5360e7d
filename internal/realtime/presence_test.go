package realtime

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterLastWriterWins(t *testing.T) {
	p := NewPresence()

	p.Register(1, "connA")
	p.Register(1, "connB")

	connID, ok := p.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "connB", connID)
	assert.Equal(t, 1, p.OnlineCount())
}

func TestUnregisterRemovesBinding(t *testing.T) {
	p := NewPresence()

	p.Register(1, "connA")
	p.Unregister("connA")

	_, ok := p.Lookup(1)
	assert.False(t, ok)
	assert.Equal(t, 0, p.OnlineCount())
}

func TestUnregisterUnknownConnectionIsNoOp(t *testing.T) {
	p := NewPresence()

	p.Register(1, "connA")
	p.Unregister("never-joined")

	connID, ok := p.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "connA", connID)
}

func TestStaleDisconnectKeepsNewBinding(t *testing.T) {
	p := NewPresence()

	// Re-join on a new connection, then the old connection's disconnect
	// arrives late. The new binding must survive.
	p.Register(1, "connA")
	p.Register(1, "connB")
	p.Unregister("connA")

	connID, ok := p.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "connB", connID)
}

func TestLookupOfflineUser(t *testing.T) {
	p := NewPresence()

	_, ok := p.Lookup(99)
	assert.False(t, ok)
}

func TestConcurrentRegisterLookupUnregister(t *testing.T) {
	p := NewPresence()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		userID := i
		wg.Add(3)
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				p.Register(userID, fmt.Sprintf("conn-%d-%d", userID, n))
			}
		}()
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				p.Lookup(userID)
				p.OnlineCount()
			}
		}()
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				p.Unregister(fmt.Sprintf("conn-%d-%d", userID, n))
			}
		}()
	}
	wg.Wait()

	// Every user ends up either offline or bound to its latest connection.
	for i := 0; i < 16; i++ {
		if connID, ok := p.Lookup(i); ok {
			assert.Equal(t, fmt.Sprintf("conn-%d-99", i), connID)
		}
	}
}
