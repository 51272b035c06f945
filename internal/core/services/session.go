package services

import (
	"container/list"
	"sync"

	"github.com/google/uuid"
)

// DefaultSessionCapacity bounds the session cache. The original design
// kept an unbounded process-wide map; capping it avoids growth across
// long-lived REPL sessions.
const DefaultSessionCapacity = 256

// SessionCache maps conversation ids to stable correlation tokens used to
// group a logical exchange with the model transport. Lookup-or-create is
// atomic per key, so two concurrent requests for the same conversation get
// the same token. When the cache is full the least recently used entry is
// evicted.
type SessionCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List
}

type sessionEntry struct {
	convID string
	token  string
}

// NewSessionCache creates a session cache with the given capacity.
// Non-positive capacities fall back to DefaultSessionCapacity.
func NewSessionCache(capacity int) *SessionCache {
	if capacity <= 0 {
		capacity = DefaultSessionCapacity
	}
	return &SessionCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Token returns the correlation token for a conversation, creating one on
// first use.
func (c *SessionCache) Token(convID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[convID]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*sessionEntry).token
	}

	token := uuid.NewString()
	c.entries[convID] = c.order.PushFront(&sessionEntry{convID: convID, token: token})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*sessionEntry).convID)
	}
	return token
}

// Len returns the number of cached sessions.
func (c *SessionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
