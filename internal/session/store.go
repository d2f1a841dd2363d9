// Package session owns server-side session state: opaque ids bound to
// identity snapshots with a fixed expiry window.
package session

import (
	"sync"
	"time"

	"github.com/ospreyai/osprey/internal/domain"
)

// Store is the associative storage behind a Manager. Implementations must be
// safe for concurrent use.
type Store interface {
	// Put stores s under s.ID, replacing any existing entry.
	Put(s domain.Session) error
	// Get returns the session for id, or domain.ErrSessionNotFound.
	Get(id string) (domain.Session, error)
	// Delete removes id. Deleting an unknown id is not an error.
	Delete(id string) error
	// DeleteExpired removes all sessions expired at now and returns how many were removed.
	DeleteExpired(now time.Time) (int, error)
	// Len returns the number of stored sessions.
	Len() int
}

// MemoryStore is a mutex-guarded in-process Store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]domain.Session),
	}
}

func (m *MemoryStore) Put(s domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *MemoryStore) Get(id string) (domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return s, nil
}

func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) DeleteExpired(now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
