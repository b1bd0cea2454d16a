package rest

import (
	"context"
	"net/http"

	"domain-market-web/internal/auth"
)

// Custom context key type to avoid collisions.
type contextKey string

const bearerTokenKey = contextKey("bearerToken")

// AuthMiddleware resolves the X-Session-ID header into the bearer token the
// admin handlers attach to backend mutations. The backend re-checks the
// token on every call; this middleware only keeps unauthenticated traffic
// off the admin routes.
type AuthMiddleware struct {
	sessions *auth.SessionManager
}

func NewAuthMiddleware(sessions *auth.SessionManager) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get("X-Session-ID")
		if sessionID == "" {
			WriteJSONError(w, http.StatusUnauthorized, "X-Session-ID header is missing")
			return
		}

		token, err := m.sessions.BearerToken(sessionID)
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "Session is unknown or was cleared")
			return
		}

		ctx := context.WithValue(r.Context(), bearerTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerTokenFromContext pulls the token placed by Authenticate. The bool is
// false on routes that skipped the middleware.
func bearerTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerTokenKey).(string)
	return token, ok
}
