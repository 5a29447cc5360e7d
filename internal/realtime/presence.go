package realtime

import "sync"

// Presence tracks which users currently have a live realtime connection.
// A user has at most one live connection at any instant; a later Register
// for the same user replaces the earlier binding.
type Presence struct {
	mu     sync.RWMutex
	byUser map[int]string
	byConn map[string]int
}

func NewPresence() *Presence {
	return &Presence{
		byUser: make(map[int]string),
		byConn: make(map[string]int),
	}
}

// Register binds userID to connID, replacing any prior binding for the
// user. If the user was bound to an older connection, that stale reverse
// entry is dropped so a late disconnect of the old connection cannot
// remove the new binding.
func (p *Presence) Register(userID int, connID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if old, ok := p.byUser[userID]; ok && old != connID {
		delete(p.byConn, old)
	}
	p.byUser[userID] = connID
	p.byConn[connID] = userID
}

// Lookup returns the connection currently bound to userID. The second
// return is false when the user is offline.
func (p *Presence) Lookup(userID int) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	connID, ok := p.byUser[userID]
	return connID, ok
}

// Unregister removes the binding whose connection is connID. It is a
// no-op for connections that never joined.
func (p *Presence) Unregister(connID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	userID, ok := p.byConn[connID]
	if !ok {
		return
	}
	delete(p.byConn, connID)
	// Only drop the forward entry if it still points at this connection;
	// the user may have re-joined on a newer one.
	if p.byUser[userID] == connID {
		delete(p.byUser, userID)
	}
}

// OnlineCount reports the number of users with a live connection.
func (p *Presence) OnlineCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.byUser)
}
