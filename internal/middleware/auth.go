package middleware

import (
	"context"
	"net/http"

	"github.com/ospreyai/osprey/internal/domain"
	"github.com/ospreyai/osprey/internal/service"
)

type contextKey string

const (
	// ContextKeyIdentity is the key for storing the session identity in request context.
	ContextKeyIdentity contextKey = "identity"
)

// SessionResolver maps a session id to its identity.
type SessionResolver interface {
	Resolve(id string) (domain.Identity, bool)
}

// AuthMiddleware resolves session cookies and gates handlers on them.
type AuthMiddleware struct {
	sessions SessionResolver
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(sessions SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

// Authenticate attaches the session identity to the request context when the
// cookie resolves. Requests without a valid session pass through unchanged.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := IdentityFromContext(r.Context()); err == nil {
			next.ServeHTTP(w, r)
			return
		}

		identity, ok := m.sessions.Resolve(SessionID(r))
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyIdentity, &identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuthenticated rejects requests without a valid session with 401.
func (m *AuthMiddleware) RequireAuthenticated(next http.Handler) http.Handler {
	return m.guard(service.CheckAuthenticated, next)
}

// RequireAdmin rejects requests without a valid session with 401 and
// non-admin sessions with 403.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.guard(service.CheckAdmin, next)
}

func (m *AuthMiddleware) guard(check func(*domain.Identity) error, next http.Handler) http.Handler {
	return m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, _ := IdentityFromContext(r.Context())
		if err := check(identity); err != nil {
			writeError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// IdentityFromContext retrieves the authenticated identity from request context.
func IdentityFromContext(ctx context.Context) (*domain.Identity, error) {
	identity, ok := ctx.Value(ContextKeyIdentity).(*domain.Identity)
	if !ok || identity == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return identity, nil
}
