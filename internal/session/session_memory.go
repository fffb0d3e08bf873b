package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	sess    Session
	expires time.Time
}

// MemoryStore keeps sessions in process. Used when REDIS_ADDR is empty and
// in tests.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if m.ttl > 0 && m.now().After(e.expires) {
		delete(m.entries, id)
		return Session{}, ErrSessionNotFound
	}

	// sliding expiry, same as the redis store
	e.expires = m.now().Add(m.ttl)
	m.entries[id] = e
	return e.sess, nil
}

func (m *MemoryStore) Save(_ context.Context, sess Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[sess.ID] = memoryEntry{sess: sess, expires: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, id)
	return nil
}
