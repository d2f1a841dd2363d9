package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ospreyai/osprey/internal/domain"
)

// CredentialVerifier checks a username/password pair against stored accounts.
type CredentialVerifier interface {
	Authenticate(username, password string) (domain.Identity, error)
}

// SessionManager is the session lifecycle used by AuthService.
type SessionManager interface {
	Create(identity domain.Identity) (domain.Session, error)
	Resolve(id string) (domain.Identity, bool)
	Destroy(id string) error
}

// AuthService handles login, logout and session resolution.
type AuthService struct {
	credentials CredentialVerifier
	sessions    SessionManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(credentials CredentialVerifier, sessions SessionManager) *AuthService {
	return &AuthService{
		credentials: credentials,
		sessions:    sessions,
	}
}

// Login verifies the credentials and opens a session holding a copy of the
// account identity. No session is created on failure.
func (s *AuthService) Login(username, password string) (domain.Session, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return domain.Session{}, domain.NewValidationError("Username and password required")
	}

	identity, err := s.credentials.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return domain.Session{}, err
		}
		return domain.Session{}, fmt.Errorf("authenticate: %w", err)
	}

	session, err := s.sessions.Create(identity)
	if err != nil {
		return domain.Session{}, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// Logout destroys the session. It is idempotent.
func (s *AuthService) Logout(sessionID string) error {
	return s.sessions.Destroy(sessionID)
}

// Resolve returns the identity bound to sessionID.
func (s *AuthService) Resolve(sessionID string) (domain.Identity, bool) {
	return s.sessions.Resolve(sessionID)
}
