package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ospreyai/osprey/internal/domain"
)

// idBytes is the amount of randomness in a session id.
const idBytes = 32

// Manager issues, resolves and destroys sessions. Expiry is a fixed window
// from creation; resolving a session never extends it.
type Manager struct {
	store   Store
	ttl     time.Duration
	now     func() time.Time
	entropy io.Reader
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithEntropy overrides the random source used for session ids.
func WithEntropy(r io.Reader) Option {
	return func(m *Manager) { m.entropy = r }
}

// NewManager creates a new Manager backed by store.
func NewManager(store Store, ttl time.Duration, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		ttl:     ttl,
		now:     time.Now,
		entropy: rand.Reader,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TTL returns the session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create stores a new session for identity and returns it.
func (m *Manager) Create(identity domain.Identity) (domain.Session, error) {
	id, err := m.newID()
	if err != nil {
		return domain.Session{}, err
	}

	now := m.now()
	s := domain.Session{
		ID:        id,
		Identity:  identity,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Put(s); err != nil {
		return domain.Session{}, fmt.Errorf("store session: %w", err)
	}
	return s, nil
}

// Resolve returns the identity for id. The second result is false when the
// session is unknown or expired. Expired sessions are removed.
func (m *Manager) Resolve(id string) (domain.Identity, bool) {
	if id == "" {
		return domain.Identity{}, false
	}

	s, err := m.store.Get(id)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			slog.Error("session lookup failed", "error", err)
		}
		return domain.Identity{}, false
	}

	if s.Expired(m.now()) {
		if err := m.store.Delete(id); err != nil {
			slog.Error("failed to delete expired session", "error", err)
		}
		return domain.Identity{}, false
	}

	return s.Identity, true
}

// Destroy removes the session. Destroying an unknown id succeeds.
func (m *Manager) Destroy(id string) error {
	if id == "" {
		return nil
	}
	if err := m.store.Delete(id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Sweep removes every expired session and returns how many were removed.
func (m *Manager) Sweep() (int, error) {
	n, err := m.store.DeleteExpired(m.now())
	if err != nil {
		return n, fmt.Errorf("sweep sessions: %w", err)
	}
	return n, nil
}

// Active returns the number of stored sessions, expired or not.
func (m *Manager) Active() int {
	return m.store.Len()
}

func (m *Manager) newID() (string, error) {
	b := make([]byte, idBytes)
	if _, err := io.ReadFull(m.entropy, b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
