package store

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process session store. Expired sessions are dropped
// lazily on access and swept on writes.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

type memoryEntry struct {
	sess      *Session
	expiresAt time.Time
}

// NewMemory creates a memory store with the given retention window.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Put saves a session under its key.
func (m *Memory) Put(_ context.Context, sess *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, entry := range m.sessions {
		if now.After(entry.expiresAt) {
			delete(m.sessions, key)
		}
	}

	m.sessions[sess.Key] = memoryEntry{
		sess:      sess,
		expiresAt: now.Add(m.ttl),
	}
	return nil
}

// Get returns the session for a key, or ErrNotFound.
func (m *Memory) Get(_ context.Context, key string) (*Session, error) {
	m.mu.RLock()
	entry, ok := m.sessions[key]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.sessions, key)
		m.mu.Unlock()
		return nil, ErrNotFound
	}
	return entry.sess, nil
}

// Delete removes a session.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.sessions, key)
	m.mu.Unlock()
	return nil
}

// Close releases store resources.
func (m *Memory) Close() error {
	return nil
}

// Len returns the number of live sessions.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	now := m.now()
	for _, entry := range m.sessions {
		if !now.After(entry.expiresAt) {
			n++
		}
	}
	return n
}
