package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
)

// Session is the identity snapshot taken at login. Handlers consult it for
// authorization; the profile endpoint re-reads the user row instead.
type Session struct {
	UserID    string
	Email     string
	FirstName string
	LastName  string
	IsAdmin   bool
}

// SessionStore maps opaque bearer tokens to sessions. Tokens never expire;
// logout is the only way one is removed. Constructed once at process start.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Session),
	}
}

// Create registers a session and returns its token.
func (s *SessionStore) Create(session Session) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	return token, nil
}

func (s *SessionStore) Get(token string) (Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	return session, ok
}

func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
