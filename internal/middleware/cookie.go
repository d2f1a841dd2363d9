package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/ospreyai/osprey/internal/domain"
)

// SessionCookieName is the cookie carrying the opaque session id.
const SessionCookieName = "osprey_session"

// SessionID returns the session id carried by r, or "".
func SessionID(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetSessionCookie issues the cookie for s. The cookie is Secure when
// forceSecure is set or the request arrived over TLS.
func SetSessionCookie(w http.ResponseWriter, r *http.Request, s domain.Session, forceSecure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Expires:  s.ExpiresAt,
		MaxAge:   int(s.ExpiresAt.Sub(s.CreatedAt).Seconds()),
		HttpOnly: true,
		Secure:   forceSecure || isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(w http.ResponseWriter, r *http.Request, forceSecure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   forceSecure || isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// isSecureRequest checks if the request came over HTTPS, directly or via a reverse proxy.
func isSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
