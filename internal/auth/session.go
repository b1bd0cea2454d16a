package auth

import (
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrTokenMismatch - the submitted admin token does not match the
	// configured one.
	ErrTokenMismatch = errors.New("admin token mismatch")
	// ErrNoSession - the presented session id is unknown or was cleared.
	ErrNoSession = errors.New("no such session")
)

// SessionState tracks where a session is in its lifecycle:
// absent (no session id presented) -> pending entry (token submitted and
// being compared) -> verified -> cleared.
type SessionState string

const (
	StatePending  SessionState = "pending"
	StateVerified SessionState = "verified"
	StateCleared  SessionState = "cleared"
)

// Session binds an opaque session id to the bearer token used on admin
// calls. Only verified sessions yield a token.
type Session struct {
	ID        string
	State     SessionState
	CreatedAt time.Time

	token string
}

// SessionManager gates the admin surface. The token comparison happens here,
// in the frontend, and is NOT a security boundary — the backend rejects bad
// bearer tokens on every admin call regardless. The manager exists so the
// token lives in one explicit place with a lifecycle instead of a global.
type SessionManager struct {
	expectedToken string

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionManager(expectedToken string) *SessionManager {
	return &SessionManager{
		expectedToken: expectedToken,
		sessions:      make(map[string]*Session),
	}
}

// Login compares the submitted token against the configured one and, on
// match, mints a verified session. A mismatch leaves no session behind.
func (m *SessionManager) Login(token string) (*Session, error) {
	session := &Session{
		ID:        uuid.NewString(),
		State:     StatePending,
		CreatedAt: time.Now(),
		token:     token,
	}

	if m.expectedToken == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(m.expectedToken)) != 1 {
		return nil, ErrTokenMismatch
	}
	session.State = StateVerified

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return session, nil
}

// BearerToken resolves a session id into the token attached to backend
// mutations.
func (m *SessionManager) BearerToken(sessionID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionID]
	if !ok || session.State != StateVerified {
		return "", ErrNoSession
	}
	return session.token, nil
}

// Logout clears the session. Clearing an unknown id is a no-op: the caller
// wanted it gone and it is.
func (m *SessionManager) Logout(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[sessionID]; ok {
		session.State = StateCleared
		delete(m.sessions, sessionID)
	}
}
