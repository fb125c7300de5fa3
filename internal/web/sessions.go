package web

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const sessionTTL = 24 * time.Hour

// SessionStore tracks signed-in sessions. It is constructed at server start
// and torn down with it; nothing here is process-global.
type SessionStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{tokens: make(map[string]time.Time)}
}

// Create mints a session token valid for sessionTTL.
func (s *SessionStore) Create() (token string, expires time.Time) {
	token = uuid.New().String()
	expires = time.Now().Add(sessionTTL)
	s.mu.Lock()
	s.tokens[token] = expires
	s.mu.Unlock()
	return token, expires
}

// Valid reports whether the token names a live session, dropping it if it
// has expired.
func (s *SessionStore) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.tokens, token)
		return false
	}
	return true
}

// Revoke signs the token out.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
