package middleware

import (
	"net/http"
	"time"

	"github.com/phrazzld/wonderwords/internal/api/shared"
	"github.com/phrazzld/wonderwords/internal/platform/logger"
	"github.com/phrazzld/wonderwords/internal/session"
)

// SessionMiddleware attaches the browser session's word history to every
// request, issuing a session cookie when the browser has none.
type SessionMiddleware struct {
	manager    *session.Manager
	cookieName string
	ttl        time.Duration
}

// NewSessionMiddleware creates a new SessionMiddleware with the given dependencies.
func NewSessionMiddleware(manager *session.Manager, cookieName string, ttl time.Duration) *SessionMiddleware {
	return &SessionMiddleware{
		manager:    manager,
		cookieName: cookieName,
		ttl:        ttl,
	}
}

// Attach resolves the session cookie and adds the session ID and history to
// the request context. The cookie is re-issued on every request so its
// lifetime slides along with the server-side session.
func (m *SessionMiddleware) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if cookie, err := r.Cookie(m.cookieName); err == nil && session.ValidID(cookie.Value) {
			sessionID = cookie.Value
		}
		if sessionID == "" {
			sessionID = session.NewID()
			logger.FromContext(r.Context()).Debug("issued new session",
				"session_id", sessionID)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     m.cookieName,
			Value:    sessionID,
			Path:     "/",
			MaxAge:   int(m.ttl.Seconds()),
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})

		history := m.manager.History(sessionID)
		ctx := shared.WithSession(r.Context(), sessionID, history)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
