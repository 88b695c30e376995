package session

import (
	"errors"
	"sync"
)

// ErrNotAuthenticated is returned when an operation requires an active
// session and none exists.
var ErrNotAuthenticated = errors.New("session: not authenticated")

// Identity is the non-owning reference to the currently authenticated user.
type Identity struct {
	UserID   string
	Username string
}

// Session holds at most one active identity for the lifetime of a process.
// It is an explicit value handed to whoever presents the application, never a
// package-level singleton.
type Session struct {
	mu      sync.Mutex
	active  bool
	current Identity
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// Establish records the authenticated user, replacing any prior session.
func (s *Session) Establish(userID, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = true
	s.current = Identity{UserID: userID, Username: username}
}

// Clear empties the session.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
	s.current = Identity{}
}

// Current returns the active identity, if any.
func (s *Session) Current() (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.active
}
